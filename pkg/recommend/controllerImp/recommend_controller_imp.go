package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cropadvisor/pkg/apperr"
	"cropadvisor/pkg/logger"
	"cropadvisor/pkg/recommend/serviceImp"
)

type RecommendCtrl struct {
	svc *serviceImp.RecommendSvc
	log *logger.Logger
}

func New(svc *serviceImp.RecommendSvc, log *logger.Logger) *RecommendCtrl {
	return &RecommendCtrl{svc: svc, log: log}
}

func (h *RecommendCtrl) Recommend(c echo.Context) error {
	out, err := h.svc.Recommend(c.Request().Context(), c.Param("farmer_id"))
	if err != nil {
		return apperr.Respond(c, h.log, "Failed to get crop recommendations", err)
	}
	return c.JSON(http.StatusOK, out)
}
