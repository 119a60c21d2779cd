package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cropadvisor/pkg/apperr"
	"cropadvisor/pkg/calendar/serviceImp"
	"cropadvisor/pkg/logger"
)

type CalendarCtrl struct {
	svc *serviceImp.CalendarSvc
	log *logger.Logger
}

func New(svc *serviceImp.CalendarSvc, log *logger.Logger) *CalendarCtrl {
	return &CalendarCtrl{svc: svc, log: log}
}

// Create reads farmer_id and crop_name from the query string, matching the
// historical wire format of the endpoint.
func (h *CalendarCtrl) Create(c echo.Context) error {
	farmerID := c.QueryParam("farmer_id")
	cropName := c.QueryParam("crop_name")
	if farmerID == "" || cropName == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"detail": "farmer_id and crop_name are required"})
	}
	entry, err := h.svc.Create(c.Request().Context(), farmerID, cropName)
	if err != nil {
		return apperr.Respond(c, h.log, "Failed to create calendar entry", err)
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *CalendarCtrl) List(c echo.Context) error {
	out, err := h.svc.List(c.Request().Context(), c.Param("farmer_id"))
	if err != nil {
		return apperr.Respond(c, h.log, "Failed to get crop calendar", err)
	}
	return c.JSON(http.StatusOK, out)
}
