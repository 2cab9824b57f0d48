package poi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider is a test double for Provider with function fields.
type fakeProvider struct {
	name       string
	activities func(ctx context.Context, city string, durationDays, limit int) ([]Activity, error)
}

func (f *fakeProvider) Name() string { return f.name }
func (f *fakeProvider) Activities(ctx context.Context, city string, durationDays, limit int) ([]Activity, error) {
	return f.activities(ctx, city, durationDays, limit)
}

var _ Provider = (*fakeProvider)(nil)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func okProvider(name string, result ...Activity) *fakeProvider {
	return &fakeProvider{
		name: name,
		activities: func(context.Context, string, int, int) ([]Activity, error) {
			return result, nil
		},
	}
}

func failingProvider(name string, err error) *fakeProvider {
	return &fakeProvider{
		name: name,
		activities: func(context.Context, string, int, int) ([]Activity, error) {
			return nil, err
		},
	}
}

func TestMultiProvider_FirstProviderWins(t *testing.T) {
	second := &fakeProvider{
		name: "second",
		activities: func(context.Context, string, int, int) ([]Activity, error) {
			t.Fatal("second provider must not be consulted when the first succeeds")
			return nil, nil
		},
	}
	m := NewMultiProvider(NewRegistry(okProvider("first", Activity{Name: "Opera House"}), second), discard())

	got, err := m.Activities(context.Background(), "Sydney", 3, 6)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Opera House", got[0].Name)
}

func TestMultiProvider_FallsBackOnError(t *testing.T) {
	m := NewMultiProvider(NewRegistry(
		failingProvider("first", fmt.Errorf("boom")),
		okProvider("second", Activity{Name: "Shrine of Remembrance"}),
	), discard())

	got, err := m.Activities(context.Background(), "Melbourne", 2, 4)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Shrine of Remembrance", got[0].Name)
}

func TestMultiProvider_AllFail_JoinsErrors(t *testing.T) {
	errFirst := fmt.Errorf("yelp: %w", ErrNoResults)
	errSecond := errors.New("foursquare: status 503")
	m := NewMultiProvider(NewRegistry(
		failingProvider("first", errFirst),
		failingProvider("second", errSecond),
	), discard())

	_, err := m.Activities(context.Background(), "Perth", 1, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoResults)
	assert.ErrorContains(t, err, "status 503")
}

func TestRegistry_Get(t *testing.T) {
	r := NewRegistry(okProvider("yelp"), okProvider("foursquare"))

	p, err := r.Get("foursquare")
	require.NoError(t, err)
	assert.Equal(t, "foursquare", p.Name())

	_, err = r.Get("amadeus")
	assert.ErrorIs(t, err, ErrUnknownProvider)
}
