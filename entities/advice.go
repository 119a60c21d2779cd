package entities

import "time"

type CropAdviceRequest struct {
	Query    string `json:"query"`
	CropType string `json:"crop_type,omitempty"`
	Location string `json:"location,omitempty"`
	Language string `json:"language,omitempty"` // defaults to English
}

type CropAdviceRecord struct {
	ID        string    `json:"id"`
	Query     string    `json:"query"`
	Advice    string    `json:"advice"`
	Timestamp time.Time `json:"timestamp"`
}

type PestDetectionRequest struct {
	ImageBase64 string `json:"image_base64"`
	CropType    string `json:"crop_type,omitempty"`
}

// PestDetectionRecord keeps only the analysis text. The uploaded image is
// accepted but never persisted.
type PestDetectionRecord struct {
	ID              string    `json:"id"`
	DetectionResult string    `json:"detection_result"`
	Recommendations string    `json:"recommendations"`
	Timestamp       time.Time `json:"timestamp"`
}
