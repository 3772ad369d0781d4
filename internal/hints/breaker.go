package hints

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerProvider wraps a Provider with a circuit breaker. After three
// consecutive upstream failures the circuit opens for thirty seconds and
// calls fail fast, so batch deck generation does not crawl through a dead
// API one timeout at a time.
type BreakerProvider struct {
	inner   Provider
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerProvider wraps provider in a circuit breaker
func NewBreakerProvider(provider Provider) *BreakerProvider {
	settings := gobreaker.Settings{
		Name:        provider.Name(),
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	}

	return &BreakerProvider{
		inner:   provider,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// FetchHint fetches a hint through the circuit breaker
func (p *BreakerProvider) FetchHint(ctx context.Context, req Request) (string, error) {
	hint, err := p.breaker.Execute(func() (interface{}, error) {
		return p.inner.FetchHint(ctx, req)
	})
	if err != nil {
		return "", err
	}
	return hint.(string), nil
}

// Name returns the wrapped provider name
func (p *BreakerProvider) Name() string {
	return p.inner.Name()
}

// IsAvailable checks the wrapped provider
func (p *BreakerProvider) IsAvailable() error {
	return p.inner.IsAvailable()
}
