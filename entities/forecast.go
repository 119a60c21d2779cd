package entities

// CropRecommendation and DemandForecast are response-only shapes; neither is
// ever written to the store.

type CropRecommendation struct {
	CropName              string   `json:"crop_name"`
	ConfidenceScore       float64  `json:"confidence_score"`
	ExpectedProfitPerAcre float64  `json:"expected_profit_per_acre"`
	MarketDemandForecast  string   `json:"market_demand_forecast"`
	SowingWindow          string   `json:"sowing_window"`
	HarvestWindow         string   `json:"harvest_window"`
	KeyBenefits           []string `json:"key_benefits"`
	Risks                 []string `json:"risks"`
}

type RecommendationResponse struct {
	Recommendations []CropRecommendation `json:"recommendations"`
	AIAnalysis      string               `json:"ai_analysis"`
}

type DemandForecast struct {
	CropName        string   `json:"crop_name"`
	CurrentDemand   string   `json:"current_demand"`
	Forecast3Months string   `json:"forecast_3_months"`
	Forecast6Months string   `json:"forecast_6_months"`
	PriceTrend      string   `json:"price_trend"`
	MarketFactors   []string `json:"market_factors"`
}
