package serviceImp

import (
	"context"

	"cropadvisor/entities"
	"cropadvisor/pkg/agronomy"
	farmerrepo "cropadvisor/pkg/farmer/repository"
	"cropadvisor/pkg/market/repository"
)

type MarketSvc struct {
	gen     *agronomy.Generator
	repo    repository.MarketRepository
	farmers farmerrepo.FarmerRepository
}

func New(gen *agronomy.Generator, repo repository.MarketRepository, farmers farmerrepo.FarmerRepository) *MarketSvc {
	return &MarketSvc{gen: gen, repo: repo, farmers: farmers}
}

// Prices regenerates every quote and upserts each one. A failure mid-loop
// aborts the request and leaves the earlier upserts in place.
func (s *MarketSvc) Prices(ctx context.Context) ([]entities.MarketPrice, error) {
	prices := s.gen.MarketPrices()
	for i := range prices {
		if err := s.repo.UpsertPrice(ctx, &prices[i]); err != nil {
			return nil, err
		}
	}
	return prices, nil
}

// Alerts generates a fresh batch for the farmer's crops and appends it to the
// store; earlier alerts are never deduplicated.
func (s *MarketSvc) Alerts(ctx context.Context, farmerID string) ([]entities.MarketAlert, error) {
	farmer, err := s.farmers.FindByID(ctx, farmerID)
	if err != nil {
		return nil, err
	}
	alerts := s.gen.AlertsFor(farmer)
	for i := range alerts {
		if err := s.repo.SaveAlert(ctx, &alerts[i]); err != nil {
			return nil, err
		}
	}
	return alerts, nil
}

func (s *MarketSvc) Forecast() []entities.DemandForecast {
	return s.gen.DemandForecasts()
}
