// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the scholarly clients.
package httputil

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// GetAfterDelay waits for delay and then issues a single GET request to url.
//
// The wait is unconditional and happens on every call; there is no per-host
// bookkeeping and no retry. If ctx ends during the wait the function returns
// ctx.Err() without sending anything. The caller closes the response body.
func GetAfterDelay(ctx context.Context, client *http.Client, url, userAgent string, delay time.Duration) (*http.Response, error) {
	if delay > 0 {
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	if client == nil {
		client = http.DefaultClient
	}
	return client.Do(req)
}
