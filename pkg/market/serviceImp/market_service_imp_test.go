package serviceImp

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropadvisor/entities"
	"cropadvisor/pkg/agronomy"
	"cropadvisor/pkg/apperr"
	farmerRepoImp "cropadvisor/pkg/farmer/repositoryImp"
	mktRepoImp "cropadvisor/pkg/market/repositoryImp"
	"cropadvisor/pkg/store"
)

func newSvc(t *testing.T) (*MarketSvc, store.Store, *farmerRepoImp.FarmerRepo) {
	t.Helper()
	st, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close(context.Background()) })

	gen := agronomy.NewGenerator(agronomy.DefaultTable(), rand.New(rand.NewSource(1)))
	farmerRepo := farmerRepoImp.New(st)
	return New(gen, mktRepoImp.New(st), farmerRepo), st, farmerRepo
}

func TestPricesUpsertKeepsOneRowPerCropMandi(t *testing.T) {
	svc, st, _ := newSvc(t)
	ctx := context.Background()

	want := len(agronomy.DefaultTable().Crops()) * len(agronomy.Mandis)

	first, err := svc.Prices(ctx)
	require.NoError(t, err)
	require.Len(t, first, want)

	// a second refresh rewrites quotes in place instead of appending
	second, err := svc.Prices(ctx)
	require.NoError(t, err)
	require.Len(t, second, want)

	stored, err := st.Find(ctx, "market_prices", nil, nil, 0)
	require.NoError(t, err)
	assert.Len(t, stored, want)
}

func TestAlertsUnknownFarmer(t *testing.T) {
	svc, st, _ := newSvc(t)
	ctx := context.Background()

	_, err := svc.Alerts(ctx, "no-such-farmer")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "Farmer not found", err.Error())

	stored, err := st.Find(ctx, "market_alerts", nil, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestAlertsAppendPerCall(t *testing.T) {
	svc, st, farmers := newSvc(t)
	ctx := context.Background()

	require.NoError(t, farmers.Create(ctx, &entities.FarmerProfile{
		ID:           "farmer-1",
		Name:         "Ravi",
		Location:     "Ludhiana",
		FarmSize:     "5 acres",
		PrimaryCrops: []string{"Rice", "Wheat"},
		CreatedAt:    time.Now().UTC(),
	}))

	batch, err := svc.Alerts(ctx, "farmer-1")
	require.NoError(t, err)
	require.Len(t, batch, 2)

	// a second call appends rather than deduplicating
	_, err = svc.Alerts(ctx, "farmer-1")
	require.NoError(t, err)

	stored, err := st.Find(ctx, "market_alerts", map[string]any{"farmer_id": "farmer-1"}, nil, 0)
	require.NoError(t, err)
	assert.Len(t, stored, 4)
}

func TestForecastIsTransient(t *testing.T) {
	svc, st, _ := newSvc(t)

	out := svc.Forecast()
	assert.Len(t, out, len(agronomy.DefaultTable().Crops()))

	stored, err := st.Find(context.Background(), "demand_forecast", nil, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, stored)
}
