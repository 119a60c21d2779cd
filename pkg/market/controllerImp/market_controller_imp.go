package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cropadvisor/pkg/apperr"
	"cropadvisor/pkg/logger"
	"cropadvisor/pkg/market/serviceImp"
)

type MarketCtrl struct {
	svc *serviceImp.MarketSvc
	log *logger.Logger
}

func New(svc *serviceImp.MarketSvc, log *logger.Logger) *MarketCtrl {
	return &MarketCtrl{svc: svc, log: log}
}

func (h *MarketCtrl) Prices(c echo.Context) error {
	out, err := h.svc.Prices(c.Request().Context())
	if err != nil {
		return apperr.Respond(c, h.log, "Failed to get market prices", err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MarketCtrl) Alerts(c echo.Context) error {
	out, err := h.svc.Alerts(c.Request().Context(), c.Param("farmer_id"))
	if err != nil {
		return apperr.Respond(c, h.log, "Failed to get market alerts", err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MarketCtrl) Forecast(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Forecast())
}
