// Package site implements the notice loading of the public page: one read
// request per page load, resolved exactly once into the page state.
package site

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"cgtsc/website/internal/config"
	"cgtsc/website/internal/model"
)

// NoticesPath is appended to the configured backend base URL.
const NoticesPath = "/api/notices"

const maxBodySize = 1 << 20

var ErrNoticeFetch = errors.New("notice fetch failed")

// Fetch stages reported by NoticeFetchError.
const (
	StageRequest = "request"
	StageStatus  = "status"
	StageDecode  = "decode"
)

// NoticeFetchError covers every way the notice request can fail.
type NoticeFetchError struct {
	Stage  string
	Status int
	Err    error
}

func (e *NoticeFetchError) Error() string {
	switch {
	case e.Stage == StageStatus:
		return fmt.Sprintf("notice fetch: unexpected status %d", e.Status)
	case e.Err != nil:
		return fmt.Sprintf("notice fetch: %s: %v", e.Stage, e.Err)
	default:
		return "notice fetch: " + e.Stage
	}
}

func (e *NoticeFetchError) Unwrap() error {
	return e.Err
}

func (e *NoticeFetchError) Is(target error) bool {
	return target == ErrNoticeFetch
}

// NoticeLoader is what a page needs to resolve its notices.
type NoticeLoader interface {
	Load(ctx context.Context) ([]model.Notice, error)
}

// Loader reads notices from the backend's notice endpoint.
type Loader struct {
	url    string
	client *http.Client
}

func NewLoader(baseURL string, client *http.Client) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Loader{
		url:    strings.TrimRight(baseURL, "/") + NoticesPath,
		client: client,
	}
}

// Load issues a single GET and returns the notices in server order.
// It never retries.
func (l *Loader) Load(ctx context.Context) ([]model.Notice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, &NoticeFetchError{Stage: StageRequest, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", config.SiteUserAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, &NoticeFetchError{Stage: StageRequest, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, &NoticeFetchError{Stage: StageStatus, Status: resp.StatusCode}
	}

	var notices []model.Notice
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&notices); err != nil {
		return nil, &NoticeFetchError{Stage: StageDecode, Status: resp.StatusCode, Err: err}
	}
	if notices == nil {
		return nil, &NoticeFetchError{Stage: StageDecode, Status: resp.StatusCode, Err: errors.New("body is not an array")}
	}
	for i, n := range notices {
		if n.Title == "" || n.Date.IsZero() {
			return nil, &NoticeFetchError{Stage: StageDecode, Status: resp.StatusCode, Err: fmt.Errorf("notice %d: title and date are required", i)}
		}
	}
	return notices, nil
}
