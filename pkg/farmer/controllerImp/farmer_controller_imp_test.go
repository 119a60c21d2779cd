package controllerImp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropadvisor/entities"
	"cropadvisor/pkg/farmer/repositoryImp"
	"cropadvisor/pkg/logger"
	"cropadvisor/pkg/store"
)

func newCtrl(t *testing.T) (*FarmerCtrl, *repositoryImp.FarmerRepo) {
	t.Helper()
	st, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close(context.Background()) })
	repo := repositoryImp.New(st)
	return New(repo, logger.NewNop()), repo
}

func doJSON(h echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h(e.NewContext(req, rec))
	return rec
}

func TestCreateThenListRoundTrip(t *testing.T) {
	ctrl, _ := newCtrl(t)

	rec := doJSON(ctrl.Create, http.MethodPost, "/api/farmer-profile",
		`{"name":"Ravi","location":"Ludhiana","farm_size":"5 acres","primary_crops":["Rice","Wheat"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var created entities.FarmerProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	rec = doJSON(ctrl.List, http.MethodGet, "/api/farmer-profiles", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []entities.FarmerProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
	assert.Equal(t, "Ravi", listed[0].Name)
	assert.Equal(t, "Ludhiana", listed[0].Location)
	assert.Equal(t, "5 acres", listed[0].FarmSize)
	assert.Equal(t, []string{"Rice", "Wheat"}, listed[0].PrimaryCrops)
	assert.True(t, listed[0].CreatedAt.Equal(created.CreatedAt))
}

func TestCreateValidation(t *testing.T) {
	ctrl, _ := newCtrl(t)
	rec := doJSON(ctrl.Create, http.MethodPost, "/api/farmer-profile", `{"name":"Ravi"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFindByIDUnknownFarmer(t *testing.T) {
	_, repo := newCtrl(t)
	_, err := repo.FindByID(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.Equal(t, "Farmer not found", err.Error())
}
