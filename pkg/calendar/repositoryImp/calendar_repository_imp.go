package repositoryImp

import (
	"context"

	"cropadvisor/entities"
	"cropadvisor/pkg/apperr"
	"cropadvisor/pkg/store"
)

const collection = "crop_calendar"

type CalendarRepo struct {
	store store.Store
}

func New(s store.Store) *CalendarRepo { return &CalendarRepo{store: s} }

func (r *CalendarRepo) Save(ctx context.Context, e *entities.CropCalendarEntry) error {
	doc := map[string]any{
		"id":                       e.ID,
		"crop_name":                e.CropName,
		"farmer_id":                e.FarmerID,
		"sowing_date":              store.EncodeTime(e.SowingDate),
		"harvesting_date":          store.EncodeTime(e.HarvestingDate),
		"expected_yield":           e.ExpectedYield,
		"market_demand_score":      e.MarketDemandScore,
		"recommended_selling_date": store.EncodeTime(e.RecommendedSellingDate),
		"estimated_price":          e.EstimatedPrice,
		"weather_risk":             string(e.WeatherRisk),
		"created_at":               store.EncodeTime(e.CreatedAt),
	}
	if err := r.store.Insert(ctx, collection, doc); err != nil {
		return apperr.Storage("save calendar entry", err)
	}
	return nil
}

func (r *CalendarRepo) ByFarmer(ctx context.Context, farmerID string) ([]entities.CropCalendarEntry, error) {
	docs, err := r.store.Find(ctx, collection,
		map[string]any{"farmer_id": farmerID},
		&store.Sort{Field: "created_at", Desc: true}, 0)
	if err != nil {
		return nil, apperr.Storage("load crop calendar", err)
	}
	out := make([]entities.CropCalendarEntry, 0, len(docs))
	for _, d := range docs {
		e, err := fromDoc(d)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, nil
}

func fromDoc(d map[string]any) (*entities.CropCalendarEntry, error) {
	var e entities.CropCalendarEntry
	var err error
	if e.SowingDate, err = store.DecodeTime(d["sowing_date"]); err != nil {
		return nil, apperr.Storage("decode calendar entry", err)
	}
	if e.HarvestingDate, err = store.DecodeTime(d["harvesting_date"]); err != nil {
		return nil, apperr.Storage("decode calendar entry", err)
	}
	if e.RecommendedSellingDate, err = store.DecodeTime(d["recommended_selling_date"]); err != nil {
		return nil, apperr.Storage("decode calendar entry", err)
	}
	if e.CreatedAt, err = store.DecodeTime(d["created_at"]); err != nil {
		return nil, apperr.Storage("decode calendar entry", err)
	}
	e.ID = store.AsString(d["id"])
	e.CropName = store.AsString(d["crop_name"])
	e.FarmerID = store.AsString(d["farmer_id"])
	e.ExpectedYield = store.AsFloat(d["expected_yield"])
	e.MarketDemandScore = store.AsFloat(d["market_demand_score"])
	e.EstimatedPrice = store.AsFloat(d["estimated_price"])
	e.WeatherRisk = entities.WeatherRisk(store.AsString(d["weather_risk"]))
	return &e, nil
}
