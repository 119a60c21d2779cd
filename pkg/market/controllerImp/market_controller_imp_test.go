package controllerImp

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropadvisor/entities"
	"cropadvisor/pkg/agronomy"
	farmerRepoImp "cropadvisor/pkg/farmer/repositoryImp"
	"cropadvisor/pkg/logger"
	mktRepoImp "cropadvisor/pkg/market/repositoryImp"
	"cropadvisor/pkg/market/serviceImp"
	"cropadvisor/pkg/store"
)

func newCtrl(t *testing.T) *MarketCtrl {
	t.Helper()
	st, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close(context.Background()) })

	gen := agronomy.NewGenerator(agronomy.DefaultTable(), rand.New(rand.NewSource(1)))
	svc := serviceImp.New(gen, mktRepoImp.New(st), farmerRepoImp.New(st))
	return New(svc, logger.NewNop())
}

func TestAlertsUnknownFarmerReturns404(t *testing.T) {
	ctrl := newCtrl(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/market-alerts/unknown-id", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("farmer_id")
	c.SetParamValues("unknown-id")

	require.NoError(t, ctrl.Alerts(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Farmer not found", body["detail"])
}

func TestPricesEndpoint(t *testing.T) {
	ctrl := newCtrl(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/market-prices", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, ctrl.Prices(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var out []entities.MarketPrice
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out, len(agronomy.DefaultTable().Crops())*len(agronomy.Mandis))
}

func TestForecastEndpoint(t *testing.T) {
	ctrl := newCtrl(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/demand-forecast", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, ctrl.Forecast(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var out []entities.DemandForecast
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out, len(agronomy.DefaultTable().Crops()))
}
