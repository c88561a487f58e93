// Package source fetches raw notice rows from the institution's upstream
// publishing channels: a Google Sheets CSV export, an RSS/Atom feed or an
// HTML notice board.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Item is one upstream notice row before normalization.
type Item struct {
	Title       string
	Date        string
	Description string
}

type Source interface {
	// Name identifies the source kind in logs and stored snapshots.
	Name() string
	Fetch(ctx context.Context) ([]Item, error)
}

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: HTTP %d", e.URL, e.StatusCode)
}

func get(ctx context.Context, client *http.Client, url, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		resp.Body.Close()
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}
	return resp, nil
}
