// Package source loads transcript payloads from local files or HTTP
// endpoints. Transcription backends commonly serve the analytics JSON over
// plain GET, so transient server errors are retried with backoff.
package source

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"callgrader-go/internal/logger"
)

var httpClient = &http.Client{Timeout: 12 * time.Second}

// IsURL reports whether the location is an http(s) endpoint rather than a
// local path.
func IsURL(location string) bool {
	l := strings.ToLower(location)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}

// Read returns the payload bytes behind a local path or an http(s) URL.
func Read(location string) ([]byte, error) {
	if IsURL(location) {
		return fetch(location)
	}
	data, err := os.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	return data, nil
}

func fetch(url string) ([]byte, error) {
	log := logger.New().ForComponent("source").WithField("url", url)

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 12 * time.Second

	var body []byte
	var lastErr error
	op := func() error {
		resp, err := httpClient.Get(url)
		if err != nil {
			lastErr = err
			return err
		}
		defer resp.Body.Close()
		b, _ := io.ReadAll(resp.Body)
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("server error: status %d", resp.StatusCode)
			return lastErr
		}
		if resp.StatusCode >= 300 {
			// Client errors will not heal on retry.
			lastErr = fmt.Errorf("fetch failed: status %d", resp.StatusCode)
			return backoff.Permanent(lastErr)
		}
		body = b
		return nil
	}
	if err := backoff.Retry(op, bo); err != nil {
		log.WithError(lastErr).Warn("payload fetch failed")
		return nil, fmt.Errorf("fetch payload: %w", lastErr)
	}
	log.WithField("bytes", len(body)).Debug("payload fetched")
	return body, nil
}
