package repositoryImp

import (
	"context"

	"cropadvisor/entities"
	"cropadvisor/pkg/apperr"
	"cropadvisor/pkg/store"
)

const (
	priceCollection = "market_prices"
	alertCollection = "market_alerts"
)

type MarketRepo struct {
	store store.Store
}

func New(s store.Store) *MarketRepo { return &MarketRepo{store: s} }

func (r *MarketRepo) UpsertPrice(ctx context.Context, p *entities.MarketPrice) error {
	key := map[string]any{"crop_name": p.CropName, "mandi_name": p.MandiName}
	doc := map[string]any{
		"id":            p.ID,
		"crop_name":     p.CropName,
		"mandi_name":    p.MandiName,
		"location":      p.Location,
		"current_price": p.CurrentPrice,
		"trend":         string(p.Trend),
		"demand_level":  string(p.DemandLevel),
		"quality_grade": string(p.QualityGrade),
		"last_updated":  store.EncodeTime(p.LastUpdated),
	}
	if err := r.store.Upsert(ctx, priceCollection, key, doc); err != nil {
		return apperr.Storage("upsert market price", err)
	}
	return nil
}

func (r *MarketRepo) SaveAlert(ctx context.Context, a *entities.MarketAlert) error {
	doc := map[string]any{
		"id":            a.ID,
		"farmer_id":     a.FarmerID,
		"crop_name":     a.CropName,
		"alert_type":    string(a.AlertType),
		"message":       a.Message,
		"priority":      string(a.Priority),
		"mandi_name":    a.MandiName,
		"price_offered": a.PriceOffered,
		"valid_until":   store.EncodeTime(a.ValidUntil),
		"created_at":    store.EncodeTime(a.CreatedAt),
	}
	if err := r.store.Insert(ctx, alertCollection, doc); err != nil {
		return apperr.Storage("save market alert", err)
	}
	return nil
}
