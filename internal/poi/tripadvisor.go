package poi

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const tripadvisorSearchURL = "https://www.tripadvisor.com/Search"

// TripAdvisor scrapes the TripAdvisor attraction search page. It exists as a
// keyless fallback for deployments without Yelp/Foursquare credentials, so
// the planner endpoint still returns something useful out of the box.
//
// Scraped data is sparse: name, link, and sometimes a category line. No
// ratings or addresses — the markup for those changes too often to chase.
type TripAdvisor struct {
	baseURL string
	client  httpDoer
}

// NewTripAdvisor constructs the scraping provider.
func NewTripAdvisor() *TripAdvisor {
	return &TripAdvisor{baseURL: tripadvisorSearchURL, client: defaultClient}
}

func (p *TripAdvisor) Name() string { return "tripadvisor" }

// listingTitleNoise strips review counts and trailing ellipsis fragments that
// leak into scraped result titles.
var listingTitleNoise = regexp.MustCompile(`\s*\(\d[\d,]*\)\s*$`)

// Activities fetches the search results page for "things to do in <city>"
// and extracts the result listings.
func (p *TripAdvisor) Activities(ctx context.Context, city string, durationDays, limit int) ([]Activity, error) {
	body, err := doWithRetry(ctx, p.client, func(ctx context.Context) (*http.Request, error) {
		q := url.Values{}
		q.Set("q", "things to do in "+city)
		q.Set("searchSessionId", "")

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+q.Encode(), nil)
		if err != nil {
			return nil, err
		}
		// A browser-ish UA; the default Go UA gets an interstitial page.
		req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36")
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("poi.TripAdvisor.Activities: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("poi.TripAdvisor.Activities: parse html: %w", err)
	}

	var activities []Activity
	doc.Find("div.result-title").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		name := cleanListingTitle(sel.Text())
		if name == "" {
			return true
		}

		a := Activity{Name: name, Category: "sightseeing"}
		if href, ok := sel.Closest("div.result").Find("a").Attr("href"); ok {
			a.URL = absoluteTripAdvisorURL(href)
		}
		activities = append(activities, a)
		return len(activities) < limit
	})
	if len(activities) == 0 {
		return nil, fmt.Errorf("poi.TripAdvisor.Activities: %w", ErrNoResults)
	}
	return activities, nil
}

// cleanListingTitle collapses whitespace and drops trailing review counts,
// e.g. "Royal Botanic Gardens (12,345)" → "Royal Botanic Gardens".
func cleanListingTitle(raw string) string {
	title := strings.Join(strings.Fields(raw), " ")
	return strings.TrimSpace(listingTitleNoise.ReplaceAllString(title, ""))
}

func absoluteTripAdvisorURL(href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	return "https://www.tripadvisor.com" + href
}
