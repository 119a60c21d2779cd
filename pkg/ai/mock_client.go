// pkg/ai/mock_client.go

package ai

import (
	"context"
	"fmt"
)

type mockClient struct{}

// NewMock returns a canned-response client for tests and offline runs.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) GetAdvice(_ context.Context, q AdviceQuery) (string, error) {
	return fmt.Sprintf("Mock advice for %q", q.Query), nil
}

func (m *mockClient) DetectPest(_ context.Context, cropType string) (string, error) {
	if cropType == "" {
		cropType = "crop"
	}
	return fmt.Sprintf("Mock pest guidance for %s", cropType), nil
}
