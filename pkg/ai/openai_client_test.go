package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropadvisor/pkg/apperr"
)

func TestMissingKeyIsConfigurationError(t *testing.T) {
	c := NewOpenAI("https://api.openai.com", "", "gpt-4o-mini")
	_, err := c.GetAdvice(context.Background(), AdviceQuery{Query: "hi"})
	require.Error(t, err)

	var e *apperr.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, apperr.KindConfig, e.Kind)
	assert.Equal(t, "LLM API key not configured", err.Error())
}

func TestGetAdviceSendsPromptAndSession(t *testing.T) {
	var got struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		User string `json:"user"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": "  sow in November  "}},
			},
		})
	}))
	defer srv.Close()

	c := NewOpenAI(srv.URL, "test-key", "gpt-4o-mini")
	out, err := c.GetAdvice(context.Background(), AdviceQuery{
		Query:    "when to sow wheat",
		Location: "Karnal",
	})
	require.NoError(t, err)
	assert.Equal(t, "sow in November", out)

	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.Equal(t, "crop_advisory_session", got.User)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Contains(t, got.Messages[0].Content, "agricultural advisor")
	assert.Contains(t, got.Messages[1].Content, "when to sow wheat")
	assert.Contains(t, got.Messages[1].Content, "Karnal")
	assert.Contains(t, got.Messages[1].Content, "Crop Type: Not specified")
}

func TestDetectPestPromptUsesCropType(t *testing.T) {
	var prompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		prompt = body.Messages[1].Content
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": "check for bollworm"}},
			},
		})
	}))
	defer srv.Close()

	c := NewOpenAI(srv.URL, "test-key", "gpt-4o-mini")
	out, err := c.DetectPest(context.Background(), "Cotton")
	require.NoError(t, err)
	assert.Equal(t, "check for bollworm", out)
	assert.Contains(t, prompt, "image of their Cotton")
	assert.Contains(t, prompt, "pest/disease identification")
}

func TestUpstreamErrorsAreClassified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewOpenAI(srv.URL, "test-key", "gpt-4o-mini")
	_, err := c.GetAdvice(context.Background(), AdviceQuery{Query: "hi"})
	require.Error(t, err)

	var e *apperr.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, apperr.KindUpstream, e.Kind)
}

func TestEmptyChoicesIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	c := NewOpenAI(srv.URL, "test-key", "gpt-4o-mini")
	_, err := c.GetAdvice(context.Background(), AdviceQuery{Query: "hi"})
	require.Error(t, err)

	var e *apperr.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, apperr.KindUpstream, e.Kind)
}
