package controllerImp

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"cropadvisor/entities"
	"cropadvisor/pkg/apperr"
	"cropadvisor/pkg/farmer/repository"
	"cropadvisor/pkg/logger"
)

const listLimit = 1000

type FarmerCtrl struct {
	repo repository.FarmerRepository
	log  *logger.Logger
}

func New(repo repository.FarmerRepository, log *logger.Logger) *FarmerCtrl {
	return &FarmerCtrl{repo: repo, log: log}
}

func (h *FarmerCtrl) Create(c echo.Context) error {
	var req entities.FarmerProfileCreate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"detail": "invalid request body"})
	}
	if req.Name == "" || req.Location == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"detail": "name and location are required"})
	}

	profile := &entities.FarmerProfile{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Location:     req.Location,
		FarmSize:     req.FarmSize,
		PrimaryCrops: req.PrimaryCrops,
		Phone:        req.Phone,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}
	if err := h.repo.Create(c.Request().Context(), profile); err != nil {
		return apperr.Respond(c, h.log, "Failed to create profile", err)
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *FarmerCtrl) List(c echo.Context) error {
	out, err := h.repo.List(c.Request().Context(), listLimit)
	if err != nil {
		return apperr.Respond(c, h.log, "Failed to get profiles", err)
	}
	return c.JSON(http.StatusOK, out)
}
