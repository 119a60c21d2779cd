package repository

import (
	"context"

	"cropadvisor/entities"
)

type AdviceRepository interface {
	SaveAdvice(ctx context.Context, rec *entities.CropAdviceRecord) error
	SavePestDetection(ctx context.Context, rec *entities.PestDetectionRecord) error
	// RecentAdvice returns up to limit records, newest first.
	RecentAdvice(ctx context.Context, limit int64) ([]entities.CropAdviceRecord, error)
}
