package poi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
)

// httpDoer is the slice of *http.Client the providers need.
// Tests substitute a stub to exercise retry and decode paths without a network.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// defaultClient is shared by all providers. The timeout bounds a single
// attempt; retries multiply it by at most maxAttempts.
var defaultClient = &http.Client{Timeout: 10 * time.Second}

const maxRetries = 3

// doWithRetry performs the request, retrying on HTTP 429 and 5xx responses
// with fibonacci backoff. The response body is fully read and returned so
// retries never leak a half-consumed connection.
func doWithRetry(ctx context.Context, client httpDoer, build func(ctx context.Context) (*http.Request, error)) ([]byte, error) {
	var body []byte

	backoff := retry.WithMaxRetries(maxRetries, retry.NewFibonacci(200*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := build(ctx)
		if err != nil {
			return err
		}

		resp, err := client.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return retry.RetryableError(err)
		}

		switch {
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return retry.RetryableError(fmt.Errorf("status %d", resp.StatusCode))
		case resp.StatusCode != http.StatusOK:
			return fmt.Errorf("status %d: %s", resp.StatusCode, truncate(b, 200))
		}

		body = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}

// fetchJSON performs the request with retry and decodes the body into out.
func fetchJSON(ctx context.Context, client httpDoer, build func(ctx context.Context) (*http.Request, error), out any) error {
	body, err := doWithRetry(ctx, client, build)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
