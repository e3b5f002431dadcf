package scrip

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// FetchError reports a download that failed after exhausting retries. It
// wraps the error of the last attempt.
type FetchError struct {
	URL      string
	Attempts int
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: giving up after %d attempts: %v", e.URL, e.Attempts, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// StatusError reports a non-success HTTP response.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// FetchMaster downloads the scrip master and returns the body as UTF-8 text.
//
// Every failure, transport or HTTP status alike, is retried with a fixed
// delay between attempts; the upstream is known to serve transient 4xx
// responses, so no failure class is exempt. Exhausted retries surface as a
// *FetchError carrying the last underlying error.
func (c *Client) FetchMaster(ctx context.Context) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		if attempt > 1 {
			c.logger.Warn("retrying scrip master download",
				"attempt", attempt,
				"url", c.url,
				"error", lastErr,
			)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(c.retryDelay):
			}
		}

		text, err := c.download(ctx)
		if err == nil {
			return text, nil
		}
		lastErr = err
	}

	return "", &FetchError{URL: c.url, Attempts: c.maxRetries, Err: lastErr}
}

// download performs a single GET of the document.
func (c *Client) download(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{StatusCode: resp.StatusCode}
	}

	return string(body), nil
}
