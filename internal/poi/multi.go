package poi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// MultiProvider tries each registered provider in fallback order and returns
// the first non-empty result. Later providers are consulted only when an
// earlier one errors or comes back empty.
type MultiProvider struct {
	registry *Registry
	log      *slog.Logger
}

// NewMultiProvider wraps a Registry with fallback semantics.
func NewMultiProvider(registry *Registry, log *slog.Logger) *MultiProvider {
	return &MultiProvider{registry: registry, log: log}
}

// Activities fans across providers in order. On total failure the errors of
// every attempted provider are joined so the caller's log line shows the
// whole story, not just the last attempt.
func (m *MultiProvider) Activities(ctx context.Context, city string, durationDays, limit int) ([]Activity, error) {
	var errs []error
	for _, p := range m.registry.All() {
		activities, err := p.Activities(ctx, city, durationDays, limit)
		if err != nil {
			m.log.WarnContext(ctx, "poi provider failed",
				"provider", p.Name(),
				"city", city,
				"error", err,
			)
			errs = append(errs, err)
			continue
		}
		return activities, nil
	}
	if len(errs) == 0 {
		return nil, fmt.Errorf("poi.MultiProvider.Activities: no providers configured")
	}
	return nil, fmt.Errorf("poi.MultiProvider.Activities: all providers failed: %w", errors.Join(errs...))
}
