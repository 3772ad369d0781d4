package testutil

import (
	"context"
	"fmt"

	"github.com/vdavid/number-learning-app-sub000/internal/hints"
)

// MockHintProvider mocks a pronunciation hint provider
type MockHintProvider struct {
	Hints        map[int64]string
	Errors       map[int64]error
	ProviderName string
	Calls        []string
}

// FetchHint mocks fetching a hint
func (m *MockHintProvider) FetchHint(ctx context.Context, req hints.Request) (string, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("Hint: %d (%s)", req.Number, req.Words))

	if err, ok := m.Errors[req.Number]; ok {
		return "", err
	}

	if hint, ok := m.Hints[req.Number]; ok {
		return hint, nil
	}

	// Default mock hint
	return fmt.Sprintf("mock hint for %d", req.Number), nil
}

// Name returns the mock provider name
func (m *MockHintProvider) Name() string {
	if m.ProviderName != "" {
		return m.ProviderName
	}
	return "mock"
}

// IsAvailable always reports the mock as configured
func (m *MockHintProvider) IsAvailable() error {
	return nil
}
