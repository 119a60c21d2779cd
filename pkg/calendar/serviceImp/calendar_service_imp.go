package serviceImp

import (
	"context"

	"cropadvisor/entities"
	"cropadvisor/pkg/agronomy"
	"cropadvisor/pkg/apperr"
	"cropadvisor/pkg/calendar/repository"
	farmerrepo "cropadvisor/pkg/farmer/repository"
)

type CalendarSvc struct {
	gen     *agronomy.Generator
	repo    repository.CalendarRepository
	farmers farmerrepo.FarmerRepository
}

func New(gen *agronomy.Generator, repo repository.CalendarRepository, farmers farmerrepo.FarmerRepository) *CalendarSvc {
	return &CalendarSvc{gen: gen, repo: repo, farmers: farmers}
}

// Create projects the next cycle for the crop and appends it to the farmer's
// calendar. The farmer must exist; nothing is written when the lookup fails.
func (s *CalendarSvc) Create(ctx context.Context, farmerID, cropName string) (*entities.CropCalendarEntry, error) {
	if _, err := s.farmers.FindByID(ctx, farmerID); err != nil {
		return nil, err
	}
	entry, ok := s.gen.CalendarEntry(farmerID, cropName)
	if !ok {
		return nil, apperr.NotFoundf("Unsupported crop: %s", cropName)
	}
	if err := s.repo.Save(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *CalendarSvc) List(ctx context.Context, farmerID string) ([]entities.CropCalendarEntry, error) {
	return s.repo.ByFarmer(ctx, farmerID)
}
