package repository

import (
	"context"

	"cropadvisor/entities"
)

type CalendarRepository interface {
	Save(ctx context.Context, e *entities.CropCalendarEntry) error
	ByFarmer(ctx context.Context, farmerID string) ([]entities.CropCalendarEntry, error)
}
