package repository

import (
	"context"

	"cropadvisor/entities"
)

type FarmerRepository interface {
	Create(ctx context.Context, p *entities.FarmerProfile) error
	List(ctx context.Context, limit int64) ([]entities.FarmerProfile, error)
	// FindByID fails with a Farmer-not-found error when the id is unknown.
	FindByID(ctx context.Context, id string) (*entities.FarmerProfile, error)
}
