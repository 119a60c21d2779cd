package entities

import "time"

type WeatherRisk string

const (
	RiskLow    WeatherRisk = "Low"
	RiskMedium WeatherRisk = "Medium"
	RiskHigh   WeatherRisk = "High"
)

type CropCalendarEntry struct {
	ID                     string      `json:"id"`
	CropName               string      `json:"crop_name"`
	FarmerID               string      `json:"farmer_id"`
	SowingDate             time.Time   `json:"sowing_date"`
	HarvestingDate         time.Time   `json:"harvesting_date"`
	ExpectedYield          float64     `json:"expected_yield"`
	MarketDemandScore      float64     `json:"market_demand_score"`
	RecommendedSellingDate time.Time   `json:"recommended_selling_date"`
	EstimatedPrice         float64     `json:"estimated_price"`
	WeatherRisk            WeatherRisk `json:"weather_risk"`
	CreatedAt              time.Time   `json:"created_at"`
}
