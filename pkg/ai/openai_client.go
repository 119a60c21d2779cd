// pkg/ai/openai_client.go

package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"cropadvisor/pkg/apperr"
)

const sessionID = "crop_advisory_session"

const systemPersona = `You are an expert agricultural advisor specialized in crop management, pest control, soil health, and sustainable farming practices for the Punjab/Haryana region.

Provide practical, actionable advice for farmers including:
- Crop-specific recommendations
- Pest and disease management
- Soil health and fertilizer guidance
- Weather-based farming tips
- Sustainable farming practices
- Market timing suggestions

Always be supportive, use simple language, and consider the farmer's location and crop type when giving advice.
If asked in a local language, respond in that language.`

type openAI struct {
	endpoint string
	key      string
	model    string
	httpc    *http.Client
}

func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{endpoint: endpoint, key: key, model: model, httpc: &http.Client{}}
}

func (c *openAI) GetAdvice(ctx context.Context, q AdviceQuery) (string, error) {
	lang := q.Language
	if lang == "" {
		lang = "English"
	}
	prompt := fmt.Sprintf(`Farmer Question: %s
Crop Type: %s
Location: %s
Language: %s

Please provide specific, actionable advice for this farmer's situation.`,
		q.Query, orNotSpecified(q.CropType), orNotSpecified(q.Location), lang)
	return c.complete(ctx, prompt)
}

func (c *openAI) DetectPest(ctx context.Context, cropType string) (string, error) {
	crop := cropType
	if crop == "" {
		crop = "crop"
	}
	prompt := fmt.Sprintf(`A farmer has uploaded an image of their %s that they suspect has pest or disease issues.

Based on common pest and disease patterns for %s, provide:
1. Likely pest/disease identification
2. Immediate treatment recommendations
3. Prevention strategies
4. When to seek professional help

Note: This is based on the crop type and common issues. For accurate diagnosis, recommend consulting with local agricultural extension services.`,
		crop, orCrops(cropType))
	return c.complete(ctx, prompt)
}

func (c *openAI) complete(ctx context.Context, prompt string) (string, error) {
	if c.key == "" {
		return "", apperr.Config("LLM API key not configured")
	}

	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPersona},
			{"role": "user", "content": prompt},
		},
		"temperature": 0.2,
		// Stable session identifier so provider-side conversational memory,
		// if any, persists across calls.
		"user": sessionID,
	}
	b, _ := json.Marshal(reqBody)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", apperr.Upstream("build LLM request", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", apperr.Upstream("LLM call failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apperr.Upstream("LLM call failed", fmt.Errorf("status %d", resp.StatusCode))
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", apperr.Upstream("decode LLM response", err)
	}
	if len(out.Choices) == 0 {
		return "", apperr.Upstream("LLM call failed", fmt.Errorf("no choices"))
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return "", apperr.Upstream("LLM call failed", fmt.Errorf("empty completion"))
	}
	return content, nil
}

func orNotSpecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}

func orCrops(cropType string) string {
	if cropType == "" {
		return "crops"
	}
	return cropType
}
