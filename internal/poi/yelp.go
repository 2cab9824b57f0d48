package poi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const yelpSearchURL = "https://api.yelp.com/v3/businesses/search"

// Yelp queries the Yelp Fusion business search API.
type Yelp struct {
	apiKey  string
	baseURL string
	client  httpDoer
}

// NewYelp constructs a Yelp provider with the given Fusion API key.
func NewYelp(apiKey string) *Yelp {
	return &Yelp{apiKey: apiKey, baseURL: yelpSearchURL, client: defaultClient}
}

func (y *Yelp) Name() string { return "yelp" }

// yelpResponse mirrors the subset of the Fusion search response we read.
type yelpResponse struct {
	Businesses []struct {
		Name       string   `json:"name"`
		Rating     *float64 `json:"rating"`
		Price      string   `json:"price"`
		URL        string   `json:"url"`
		ImageURL   string   `json:"image_url"`
		Phone      string   `json:"display_phone"`
		Categories []struct {
			Alias string `json:"alias"`
			Title string `json:"title"`
		} `json:"categories"`
		Location struct {
			DisplayAddress []string `json:"display_address"`
		} `json:"location"`
	} `json:"businesses"`
}

// Activities searches Yelp for things to do in the city.
// Trips of three days or more bias the search toward sights over food, since
// food results dominate Yelp's default ranking.
func (y *Yelp) Activities(ctx context.Context, city string, durationDays, limit int) ([]Activity, error) {
	var decoded yelpResponse
	err := fetchJSON(ctx, y.client, func(ctx context.Context) (*http.Request, error) {
		q := url.Values{}
		q.Set("location", city)
		q.Set("limit", strconv.Itoa(limit))
		q.Set("sort_by", "rating")
		if durationDays >= 3 {
			q.Set("categories", "tours,landmarks,museums,restaurants")
		} else {
			q.Set("categories", "restaurants,bars,landmarks")
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, y.baseURL+"?"+q.Encode(), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+y.apiKey)
		return req, nil
	}, &decoded)
	if err != nil {
		return nil, fmt.Errorf("poi.Yelp.Activities: %w", err)
	}

	activities := make([]Activity, 0, len(decoded.Businesses))
	for _, b := range decoded.Businesses {
		a := Activity{
			Name:     b.Name,
			Rating:   b.Rating,
			Price:    b.Price,
			URL:      b.URL,
			ImageURL: b.ImageURL,
			Phone:    b.Phone,
		}
		if len(b.Categories) > 0 {
			a.Category = b.Categories[0].Title
		}
		if len(b.Location.DisplayAddress) > 0 {
			a.Address = strings.Join(b.Location.DisplayAddress, ", ")
		}
		activities = append(activities, a)
	}
	if len(activities) == 0 {
		return nil, fmt.Errorf("poi.Yelp.Activities: %w", ErrNoResults)
	}
	return activities, nil
}
