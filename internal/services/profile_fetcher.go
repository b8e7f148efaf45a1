// Package services provides the profile sources behind directory.ProfileSource.
package services

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/ortelius/userdir-backend/directory"
	"github.com/ortelius/userdir-backend/model"
)

// maxPayloadBytes bounds the profile payload read from the endpoint
const maxPayloadBytes = 32 << 20

// HTTPProfileFetcher implements directory.ProfileSource with one GET per fetch
type HTTPProfileFetcher struct {
	URL    string
	Client *http.Client
}

// NewHTTPProfileFetcher creates a fetcher with a per-request timeout
func NewHTTPProfileFetcher(url string, timeout time.Duration) *HTTPProfileFetcher {
	return &HTTPProfileFetcher{
		URL: url,
		Client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   timeout,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:          10,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
	}
}

// FetchProfiles retrieves and decodes the profile list. Transport failures and
// non-2xx answers wrap directory.ErrSourceUnavailable.
func (f *HTTPProfileFetcher) FetchProfiles(ctx context.Context) ([]model.RawProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", directory.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: GET %s returned %d", directory.ErrSourceUnavailable, f.URL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", directory.ErrSourceUnavailable, err)
	}

	return directory.DecodeProfiles(body)
}

// FileProfileFetcher implements directory.ProfileSource over a JSON file on disk
type FileProfileFetcher struct {
	Path string
}

// FetchProfiles reads and decodes the file
func (f *FileProfileFetcher) FetchProfiles(_ context.Context) ([]model.RawProfile, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Path, err)
	}
	return directory.DecodeProfiles(data)
}

// Ensure compile-time interface check
var (
	_ directory.ProfileSource = (*HTTPProfileFetcher)(nil)
	_ directory.ProfileSource = (*FileProfileFetcher)(nil)
)
