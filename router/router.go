package router

import (
	"github.com/labstack/echo/v4"
)

// New wires every endpoint under the /api prefix. Controllers come in as
// small interfaces so tests can mount fakes.
func New(
	e *echo.Echo,
	healthCtrl interface{ Root(echo.Context) error },
	adviceCtrl interface {
		GetAdvice(echo.Context) error
		DetectPest(echo.Context) error
		History(echo.Context) error
	},
	farmerCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
	},
	calendarCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
	},
	marketCtrl interface {
		Prices(echo.Context) error
		Alerts(echo.Context) error
		Forecast(echo.Context) error
	},
	recommendCtrl interface{ Recommend(echo.Context) error },
) *echo.Echo {
	api := e.Group("/api")

	api.GET("/", healthCtrl.Root)

	api.POST("/crop-advice", adviceCtrl.GetAdvice)
	api.POST("/pest-detection", adviceCtrl.DetectPest)
	api.GET("/advice-history", adviceCtrl.History)

	api.POST("/farmer-profile", farmerCtrl.Create)
	api.GET("/farmer-profiles", farmerCtrl.List)

	api.POST("/crop-calendar", calendarCtrl.Create)
	api.GET("/crop-calendar/:farmer_id", calendarCtrl.List)

	api.GET("/market-prices", marketCtrl.Prices)
	api.GET("/market-alerts/:farmer_id", marketCtrl.Alerts)
	api.GET("/demand-forecast", marketCtrl.Forecast)

	api.GET("/crop-recommendations/:farmer_id", recommendCtrl.Recommend)

	return e
}
