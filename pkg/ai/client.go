// pkg/ai/client.go

package ai

import "context"

type AdviceQuery struct {
	Query    string
	CropType string
	Location string
	Language string
}

type Client interface {
	// GetAdvice forwards a farmer question to the model and returns its raw text.
	GetAdvice(ctx context.Context, q AdviceQuery) (string, error)

	// DetectPest asks for pest/disease guidance for the declared crop type.
	// The uploaded image never reaches the model; only the crop type shapes
	// the prompt.
	DetectPest(ctx context.Context, cropType string) (string, error)
}
