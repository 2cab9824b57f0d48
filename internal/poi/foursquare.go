package poi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const foursquareSearchURL = "https://api.foursquare.com/v3/places/search"

// Foursquare queries the Foursquare Places search API.
type Foursquare struct {
	apiKey  string
	baseURL string
	client  httpDoer
}

// NewFoursquare constructs a Foursquare provider with the given Places API key.
func NewFoursquare(apiKey string) *Foursquare {
	return &Foursquare{apiKey: apiKey, baseURL: foursquareSearchURL, client: defaultClient}
}

func (f *Foursquare) Name() string { return "foursquare" }

// foursquareResponse mirrors the subset of the Places search response we read.
// Foursquare rates places 0–10; Yelp rates 0–5. The raw value is passed
// through unscaled — the response documents which provider it came from.
type foursquareResponse struct {
	Results []struct {
		Name       string `json:"name"`
		Tel        string `json:"tel"`
		Website    string `json:"website"`
		Rating     *float64 `json:"rating"`
		Categories []struct {
			Name string `json:"name"`
		} `json:"categories"`
		Location struct {
			FormattedAddress string `json:"formatted_address"`
		} `json:"location"`
	} `json:"results"`
}

// Activities searches Foursquare for attractions near the city.
func (f *Foursquare) Activities(ctx context.Context, city string, durationDays, limit int) ([]Activity, error) {
	var decoded foursquareResponse
	err := fetchJSON(ctx, f.client, func(ctx context.Context) (*http.Request, error) {
		q := url.Values{}
		q.Set("near", city)
		q.Set("limit", strconv.Itoa(limit))
		q.Set("sort", "RATING")

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"?"+q.Encode(), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", f.apiKey)
		req.Header.Set("Accept", "application/json")
		return req, nil
	}, &decoded)
	if err != nil {
		return nil, fmt.Errorf("poi.Foursquare.Activities: %w", err)
	}

	activities := make([]Activity, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		a := Activity{
			Name:    r.Name,
			Rating:  r.Rating,
			Phone:   r.Tel,
			URL:     r.Website,
			Address: r.Location.FormattedAddress,
		}
		if len(r.Categories) > 0 {
			a.Category = r.Categories[0].Name
		}
		activities = append(activities, a)
	}
	if len(activities) == 0 {
		return nil, fmt.Errorf("poi.Foursquare.Activities: %w", ErrNoResults)
	}
	return activities, nil
}
