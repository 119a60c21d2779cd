package entities

import "time"

type PriceTrend string

const (
	TrendUp     PriceTrend = "up"
	TrendDown   PriceTrend = "down"
	TrendStable PriceTrend = "stable"
)

type DemandLevel string

const (
	DemandHigh   DemandLevel = "high"
	DemandMedium DemandLevel = "medium"
	DemandLow    DemandLevel = "low"
)

type QualityGrade string

const (
	GradeA QualityGrade = "A"
	GradeB QualityGrade = "B"
	GradeC QualityGrade = "C"
)

type AlertType string

const (
	AlertPriceSpike      AlertType = "price_spike"
	AlertHighDemand      AlertType = "high_demand"
	AlertBestSellingTime AlertType = "best_selling_time"
)

type AlertPriority string

const (
	PriorityHigh   AlertPriority = "high"
	PriorityMedium AlertPriority = "medium"
	PriorityLow    AlertPriority = "low"
)

// MarketPrice is upserted keyed by (crop_name, mandi_name); every other
// entity in the store is append-only.
type MarketPrice struct {
	ID           string       `json:"id"`
	CropName     string       `json:"crop_name"`
	MandiName    string       `json:"mandi_name"`
	Location     string       `json:"location"`
	CurrentPrice float64      `json:"current_price"`
	Trend        PriceTrend   `json:"trend"`
	DemandLevel  DemandLevel  `json:"demand_level"`
	QualityGrade QualityGrade `json:"quality_grade"`
	LastUpdated  time.Time    `json:"last_updated"`
}

type MarketAlert struct {
	ID           string        `json:"id"`
	FarmerID     string        `json:"farmer_id"`
	CropName     string        `json:"crop_name"`
	AlertType    AlertType     `json:"alert_type"`
	Message      string        `json:"message"`
	Priority     AlertPriority `json:"priority"`
	MandiName    string        `json:"mandi_name"`
	PriceOffered float64       `json:"price_offered"`
	ValidUntil   time.Time     `json:"valid_until"`
	CreatedAt    time.Time     `json:"created_at"`
}
