package controllerImp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropadvisor/entities"
	"cropadvisor/pkg/advice/repositoryImp"
	"cropadvisor/pkg/ai"
	"cropadvisor/pkg/apperr"
	"cropadvisor/pkg/logger"
	"cropadvisor/pkg/store"
)

type failingLLM struct{}

func (failingLLM) GetAdvice(context.Context, ai.AdviceQuery) (string, error) {
	return "", apperr.Upstream("LLM call failed", context.DeadlineExceeded)
}
func (failingLLM) DetectPest(context.Context, string) (string, error) {
	return "", apperr.Config("LLM API key not configured")
}

func newCtrl(t *testing.T, llm ai.Client) (*AdviceCtrl, *repositoryImp.AdviceRepo) {
	t.Helper()
	st, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close(context.Background()) })
	repo := repositoryImp.New(st)
	return New(llm, repo, logger.NewNop()), repo
}

func doJSON(h echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h(e.NewContext(req, rec))
	return rec
}

func TestGetAdvicePersistsRecord(t *testing.T) {
	ctrl, repo := newCtrl(t, ai.NewMock())

	rec := doJSON(ctrl.GetAdvice, http.MethodPost, "/api/crop-advice",
		`{"query":"leaf curl on cotton","crop_type":"Cotton","location":"Hisar"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var out entities.CropAdviceRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "leaf curl on cotton", out.Query)
	assert.NotEmpty(t, out.Advice)
	assert.False(t, out.Timestamp.IsZero())

	saved, err := repo.RecentAdvice(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, out.ID, saved[0].ID)
	assert.True(t, saved[0].Timestamp.Equal(out.Timestamp))
}

func TestGetAdviceValidation(t *testing.T) {
	ctrl, _ := newCtrl(t, ai.NewMock())
	rec := doJSON(ctrl.GetAdvice, http.MethodPost, "/api/crop-advice", `{"query":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "query is required")
}

func TestGetAdviceUpstreamFailure(t *testing.T) {
	ctrl, repo := newCtrl(t, failingLLM{})
	rec := doJSON(ctrl.GetAdvice, http.MethodPost, "/api/crop-advice", `{"query":"anything"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to get crop advice")

	// nothing persisted on failure
	saved, err := repo.RecentAdvice(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestDetectPestFixedResultText(t *testing.T) {
	ctrl, _ := newCtrl(t, ai.NewMock())
	rec := doJSON(ctrl.DetectPest, http.MethodPost, "/api/pest-detection",
		`{"image_base64":"aGVsbG8=","crop_type":"Rice"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var out entities.PestDetectionRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "Image analysis completed", out.DetectionResult)
	assert.NotEmpty(t, out.Recommendations)
}

func TestDetectPestRequiresImage(t *testing.T) {
	ctrl, _ := newCtrl(t, ai.NewMock())
	rec := doJSON(ctrl.DetectPest, http.MethodPost, "/api/pest-detection", `{"crop_type":"Rice"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHistoryNewestFirstWithUniqueIDs(t *testing.T) {
	ctrl, _ := newCtrl(t, ai.NewMock())

	for i := 0; i < 3; i++ {
		rec := doJSON(ctrl.GetAdvice, http.MethodPost, "/api/crop-advice", `{"query":"q"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		time.Sleep(2 * time.Millisecond) // distinct timestamps
	}

	rec := doJSON(ctrl.History, http.MethodGet, "/api/advice-history", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out []entities.CropAdviceRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 3)

	seen := map[string]bool{}
	for i, r := range out {
		assert.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true
		if i > 0 {
			assert.False(t, out[i-1].Timestamp.Before(r.Timestamp), "history not descending")
		}
	}
}
