package engine

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/time/rate"
)

// fetchLimiter throttles outgoing LinkedIn requests. LinkedIn rate-limits
// aggressively; one concurrent analysis should never trip it.
var fetchLimiter = rate.NewLimiter(rate.Limit(1), 2)

func initFetchLimiter() {
	rps := cfg.FetchRPS
	if rps <= 0 {
		rps = 1
	}
	fetchLimiter = rate.NewLimiter(rate.Limit(rps), 2)
}

// FetchPage fetches a LinkedIn page using BrowserClient (Chrome TLS fingerprint)
// when available, falling back to standard net/http client.
// LinkedIn blocks non-browser TLS fingerprints, so BrowserClient is strongly preferred.
func FetchPage(ctx context.Context, targetURL string) ([]byte, error) {
	IncrFetchRequests()

	if err := fetchLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()

	maxBytes := cfg.MaxFetchBytes
	if maxBytes <= 0 {
		maxBytes = 512 * 1024
	}

	// Prefer BrowserClient — LinkedIn detects non-browser TLS fingerprints
	if cfg.BrowserClient != nil {
		headers := ChromeHeaders()
		headers["accept"] = "text/html,application/xhtml+xml,application/xml;q=0.9"
		headers["referer"] = "https://www.linkedin.com/"

		data, err := RetryDo(ctx, DefaultRetryConfig, func() ([]byte, error) {
			d, _, s, e := cfg.BrowserClient.Do("GET", targetURL, headers, nil)
			if e != nil {
				return nil, e
			}
			if s != 200 {
				return nil, fmt.Errorf("linkedin status %d", s)
			}
			return d, nil
		})
		if err != nil {
			IncrFetchErrors()
			return nil, err
		}
		if int64(len(data)) > maxBytes {
			data = data[:maxBytes]
		}
		return data, nil
	}

	// Fallback: standard HTTP client
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", UserAgentChrome)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := RetryHTTP(ctx, DefaultRetryConfig, func() (*http.Response, error) {
		return cfg.HTTPClient.Do(req)
	})
	if err != nil {
		IncrFetchErrors()
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		IncrFetchErrors()
		return nil, fmt.Errorf("linkedin status %d", resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxBytes))
}
