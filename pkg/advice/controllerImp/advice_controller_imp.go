package controllerImp

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"cropadvisor/entities"
	"cropadvisor/pkg/advice/repository"
	"cropadvisor/pkg/ai"
	"cropadvisor/pkg/apperr"
	"cropadvisor/pkg/logger"
)

const historyLimit = 100

type AdviceCtrl struct {
	llm  ai.Client
	repo repository.AdviceRepository
	log  *logger.Logger
}

func New(llm ai.Client, repo repository.AdviceRepository, log *logger.Logger) *AdviceCtrl {
	return &AdviceCtrl{llm: llm, repo: repo, log: log}
}

func (h *AdviceCtrl) GetAdvice(c echo.Context) error {
	var req entities.CropAdviceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"detail": "invalid request body"})
	}
	if req.Query == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"detail": "query is required"})
	}
	if req.Language == "" {
		req.Language = "English"
	}

	ctx := c.Request().Context()
	advice, err := h.llm.GetAdvice(ctx, ai.AdviceQuery{
		Query:    req.Query,
		CropType: req.CropType,
		Location: req.Location,
		Language: req.Language,
	})
	if err != nil {
		return apperr.Respond(c, h.log, "Failed to get crop advice", err)
	}

	rec := &entities.CropAdviceRecord{
		ID:        uuid.NewString(),
		Query:     req.Query,
		Advice:    advice,
		Timestamp: time.Now().UTC().Truncate(time.Microsecond),
	}
	if err := h.repo.SaveAdvice(ctx, rec); err != nil {
		return apperr.Respond(c, h.log, "Failed to get crop advice", err)
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *AdviceCtrl) DetectPest(c echo.Context) error {
	var req entities.PestDetectionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"detail": "invalid request body"})
	}
	if req.ImageBase64 == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"detail": "image_base64 is required"})
	}

	ctx := c.Request().Context()
	guidance, err := h.llm.DetectPest(ctx, req.CropType)
	if err != nil {
		return apperr.Respond(c, h.log, "Failed to analyze image", err)
	}

	rec := &entities.PestDetectionRecord{
		ID:              uuid.NewString(),
		DetectionResult: "Image analysis completed",
		Recommendations: guidance,
		Timestamp:       time.Now().UTC().Truncate(time.Microsecond),
	}
	if err := h.repo.SavePestDetection(ctx, rec); err != nil {
		return apperr.Respond(c, h.log, "Failed to analyze image", err)
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *AdviceCtrl) History(c echo.Context) error {
	out, err := h.repo.RecentAdvice(c.Request().Context(), historyLimit)
	if err != nil {
		return apperr.Respond(c, h.log, "Failed to get advice history", err)
	}
	return c.JSON(http.StatusOK, out)
}
