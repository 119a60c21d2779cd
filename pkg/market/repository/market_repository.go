package repository

import (
	"context"

	"cropadvisor/entities"
)

type MarketRepository interface {
	// UpsertPrice replaces the quote keyed by (crop_name, mandi_name).
	UpsertPrice(ctx context.Context, p *entities.MarketPrice) error
	SaveAlert(ctx context.Context, a *entities.MarketAlert) error
}
