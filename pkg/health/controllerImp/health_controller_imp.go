package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cropadvisor/pkg/store"
)

type HealthCtrl struct {
	store store.Store
}

func New(s store.Store) *HealthCtrl { return &HealthCtrl{store: s} }

func (h *HealthCtrl) Root(c echo.Context) error {
	database := "connected"
	if err := h.store.Ping(c.Request().Context()); err != nil {
		database = "unreachable"
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message":  "Smart Crop Advisory System API",
		"database": database,
	})
}
