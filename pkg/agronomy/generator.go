package agronomy

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"cropadvisor/entities"
)

// Mandis is the fixed set of market names prices are quoted for.
var Mandis = []struct {
	Name     string
	Location string
}{
	{"Ludhiana Mandi", "Ludhiana, Punjab"},
	{"Khanna Mandi", "Khanna, Punjab"},
	{"Karnal Mandi", "Karnal, Haryana"},
	{"Hisar Mandi", "Hisar, Haryana"},
}

var (
	trends     = []entities.PriceTrend{entities.TrendUp, entities.TrendDown, entities.TrendStable}
	demands    = []entities.DemandLevel{entities.DemandHigh, entities.DemandMedium, entities.DemandLow}
	grades     = []entities.QualityGrade{entities.GradeA, entities.GradeB, entities.GradeC}
	risks      = []entities.WeatherRisk{entities.RiskLow, entities.RiskMedium, entities.RiskHigh}
	alertTypes = []entities.AlertType{entities.AlertPriceSpike, entities.AlertHighDemand, entities.AlertBestSellingTime}
	priorities = []entities.AlertPriority{entities.PriorityHigh, entities.PriorityMedium, entities.PriorityLow}

	demandForecasts = []string{"increasing", "stable", "decreasing"}
	demandNow       = []string{"High", "Medium", "Low"}
	recForecasts    = []string{"High", "Growing", "Stable"}
	marketFactors   = []string{
		"Festival season demand",
		"Active government procurement",
		"Strong export enquiries",
		"Good monsoon outlook",
		"Cold-storage capacity shortfall",
		"New processing units nearby",
	}
)

// Generator produces synthetic market data from the crop table. Values are
// re-randomized on every call with no continuity between calls. The RNG is
// injected so tests can fix the seed; Now is overridable the same way.
type Generator struct {
	table *Table
	mu    sync.Mutex
	rng   *rand.Rand
	Now   func() time.Time
}

func NewGenerator(table *Table, rng *rand.Rand) *Generator {
	return &Generator{table: table, rng: rng, Now: time.Now}
}

func (g *Generator) Table() *Table { return g.table }

// MarketPrices quotes every crop at every mandi: len(crops) x len(Mandis)
// records, prices within ±15% of the crop's base price.
func (g *Generator) MarketPrices() []entities.MarketPrice {
	now := g.Now().UTC().Truncate(time.Microsecond)
	out := make([]entities.MarketPrice, 0, len(g.table.Crops())*len(Mandis))
	for _, crop := range g.table.Crops() {
		for _, m := range Mandis {
			out = append(out, entities.MarketPrice{
				ID:           uuid.NewString(),
				CropName:     crop.Name,
				MandiName:    m.Name,
				Location:     m.Location,
				CurrentPrice: math.Round(crop.BasePrice * g.uniform(0.85, 1.15)),
				Trend:        pick(g, trends),
				DemandLevel:  pick(g, demands),
				QualityGrade: pick(g, grades),
				LastUpdated:  now,
			})
		}
	}
	return out
}

// CalendarProjection is the deterministic part of a calendar entry.
type CalendarProjection struct {
	SowingDate     time.Time
	HarvestDate    time.Time
	ExpectedYield  float64
	EstimatedPrice float64
}

// OptimalCalendar projects the next cycle for a crop. The first configured
// sowing month is used as-is (year-rolled into the future when day 15 has
// already passed); it is not the nearest upcoming month.
func (g *Generator) OptimalCalendar(cropName string) (CalendarProjection, bool) {
	crop, ok := g.table.Lookup(cropName)
	if !ok {
		return CalendarProjection{}, false
	}
	now := g.Now().UTC().Truncate(time.Microsecond)
	sowing := time.Date(now.Year(), crop.SowingMonths[0], 15, 0, 0, 0, 0, time.UTC)
	if !sowing.After(now) {
		sowing = sowing.AddDate(1, 0, 0)
	}
	return CalendarProjection{
		SowingDate:     sowing,
		HarvestDate:    sowing.AddDate(0, 0, crop.GrowingDays),
		ExpectedYield:  crop.AvgYield,
		EstimatedPrice: math.Round(crop.BasePrice * g.uniform(0.95, 1.25)),
	}, true
}

// CalendarEntry builds a full calendar record for a farmer, layering the
// randomized demand score, weather risk, and selling window on top of the
// projection.
func (g *Generator) CalendarEntry(farmerID, cropName string) (*entities.CropCalendarEntry, bool) {
	proj, ok := g.OptimalCalendar(cropName)
	if !ok {
		return nil, false
	}
	crop, _ := g.table.Lookup(cropName)
	return &entities.CropCalendarEntry{
		ID:                     uuid.NewString(),
		CropName:               crop.Name,
		FarmerID:               farmerID,
		SowingDate:             proj.SowingDate,
		HarvestingDate:         proj.HarvestDate,
		ExpectedYield:          proj.ExpectedYield,
		MarketDemandScore:      g.uniform(0.5, 1.0),
		RecommendedSellingDate: proj.HarvestDate.AddDate(0, 0, 5+g.intn(11)),
		EstimatedPrice:         proj.EstimatedPrice,
		WeatherRisk:            pick(g, risks),
		CreatedAt:              g.Now().UTC().Truncate(time.Microsecond),
	}, true
}

// AlertsFor generates one fresh alert per primary crop. Alerts are never
// deduplicated against earlier ones.
func (g *Generator) AlertsFor(farmer *entities.FarmerProfile) []entities.MarketAlert {
	now := g.Now().UTC().Truncate(time.Microsecond)
	out := make([]entities.MarketAlert, 0, len(farmer.PrimaryCrops))
	for _, cropName := range farmer.PrimaryCrops {
		base := 2000.0
		name := cropName
		if crop, ok := g.table.Lookup(cropName); ok {
			base = crop.BasePrice
			name = crop.Name
		}
		mandi := Mandis[g.intn(len(Mandis))]
		kind := pick(g, alertTypes)
		price := math.Round(base * g.uniform(1.05, 1.30))
		out = append(out, entities.MarketAlert{
			ID:           uuid.NewString(),
			FarmerID:     farmer.ID,
			CropName:     name,
			AlertType:    kind,
			Message:      alertMessage(kind, name, mandi.Name, price),
			Priority:     pick(g, priorities),
			MandiName:    mandi.Name,
			PriceOffered: price,
			ValidUntil:   now.AddDate(0, 0, 2+g.intn(4)),
			CreatedAt:    now,
		})
	}
	return out
}

func alertMessage(kind entities.AlertType, crop, mandi string, price float64) string {
	switch kind {
	case entities.AlertPriceSpike:
		return fmt.Sprintf("%s prices have spiked at %s - ₹%.0f/quintal on offer", crop, mandi, price)
	case entities.AlertHighDemand:
		return fmt.Sprintf("Buyers at %s are actively looking for %s right now", mandi, crop)
	default:
		return fmt.Sprintf("Next few days are a good window to sell %s at %s", crop, mandi)
	}
}

// DemandForecasts projects every crop in the table. Nothing here is modeled;
// it is categorical sampling for the demo dashboard.
func (g *Generator) DemandForecasts() []entities.DemandForecast {
	out := make([]entities.DemandForecast, 0, len(g.table.Crops()))
	for _, crop := range g.table.Crops() {
		out = append(out, entities.DemandForecast{
			CropName:        crop.Name,
			CurrentDemand:   pick(g, demandNow),
			Forecast3Months: pick(g, demandForecasts),
			Forecast6Months: pick(g, demandForecasts),
			PriceTrend:      string(pick(g, trends)),
			MarketFactors:   g.sampleFactors(2 + g.intn(2)),
		})
	}
	return out
}

// Recommendations returns the first n table crops with randomized confidence
// and profit figures. Ordering is positional, not a ranking.
func (g *Generator) Recommendations(n int) []entities.CropRecommendation {
	crops := g.table.First(n)
	out := make([]entities.CropRecommendation, 0, len(crops))
	for _, crop := range crops {
		out = append(out, entities.CropRecommendation{
			CropName:              crop.Name,
			ConfidenceScore:       math.Round(g.uniform(0.70, 0.95)*100) / 100,
			ExpectedProfitPerAcre: math.Round(crop.AvgYield * crop.BasePrice * g.uniform(0.25, 0.45)),
			MarketDemandForecast:  pick(g, recForecasts),
			SowingWindow:          WindowLabel(crop.SowingMonths),
			HarvestWindow:         WindowLabel(crop.HarvestMonths),
			KeyBenefits:           crop.KeyBenefits,
			Risks:                 crop.Risks,
		})
	}
	return out
}

func (g *Generator) sampleFactors(n int) []string {
	perm := g.perm(len(marketFactors))
	out := make([]string, 0, n)
	for _, i := range perm[:n] {
		out = append(out, marketFactors[i])
	}
	return out
}

func (g *Generator) uniform(lo, hi float64) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return lo + g.rng.Float64()*(hi-lo)
}

func (g *Generator) intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(n)
}

func (g *Generator) perm(n int) []int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Perm(n)
}

func pick[T any](g *Generator, opts []T) T {
	return opts[g.intn(len(opts))]
}
