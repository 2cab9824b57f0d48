// Package poi fetches point-of-interest suggestions for a city from
// third-party providers (Yelp, Foursquare, or a TripAdvisor page scrape).
//
// Providers are opaque, potentially-failing remote collaborators: no result
// caching, no backpressure. Transient HTTP failures are retried with a short
// fibonacci backoff; anything else propagates to the caller as an error.
package poi

import (
	"context"
	"errors"
	"fmt"
)

// Activity is one place/activity suggestion returned by a provider.
// Only Name is guaranteed; every other field is best-effort provider metadata.
type Activity struct {
	Name     string   `json:"name"`
	Category string   `json:"category,omitempty"`
	Rating   *float64 `json:"rating,omitempty"`
	Address  string   `json:"address,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	URL      string   `json:"url,omitempty"`
	ImageURL string   `json:"image_url,omitempty"`
	Price    string   `json:"price,omitempty"`
}

// Provider is a single POI source.
type Provider interface {
	// Name returns the provider identifier used in API requests ("yelp").
	Name() string

	// Activities returns up to limit suggestions for a city.
	// durationDays is advisory — providers may use it to bias results
	// (e.g. longer trips favor sights over restaurants) or ignore it.
	Activities(ctx context.Context, city string, durationDays, limit int) ([]Activity, error)
}

// ErrNoResults is returned when a provider answered successfully but had no
// suggestions for the city. MultiProvider treats it as a soft failure and
// moves on to the next provider.
var ErrNoResults = errors.New("no results")

// ErrUnknownProvider is returned by Registry.Get for a provider name that
// has not been registered.
var ErrUnknownProvider = errors.New("unknown provider")

// Registry holds the configured providers, addressable by name for the
// explicit ?provider= lookup endpoint and as an ordered list for fallback.
type Registry struct {
	order []Provider
	byKey map[string]Provider
}

// NewRegistry builds a Registry from providers in fallback order.
func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{byKey: make(map[string]Provider, len(providers))}
	for _, p := range providers {
		r.order = append(r.order, p)
		r.byKey[p.Name()] = p
	}
	return r
}

// Get returns the provider registered under name.
func (r *Registry) Get(name string) (Provider, error) {
	p, ok := r.byKey[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}
	return p, nil
}

// All returns the providers in fallback order.
func (r *Registry) All() []Provider {
	return r.order
}
