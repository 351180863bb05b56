package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Fetcher downloads dataset files from the remote origin. One Fetcher
// holds one HTTP session for the duration of a download phase; Close
// releases it.
type Fetcher struct {
	baseURL string
	client  *http.Client
}

// NewFetcher acquires an HTTP session against the given origin.
func NewFetcher(baseURL string) *Fetcher {
	return &Fetcher{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// Fetch retrieves one dataset file. Any transport failure or non-2xx
// status fails the fetch; there is no retry at this layer.
func (f *Fetcher) Fetch(ctx context.Context, fileName string) ([]byte, error) {
	url := f.baseURL + "/" + fileName

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{File: fileName, Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{File: fileName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{File: fileName, Err: fmt.Errorf("unexpected status %s from %s", resp.Status, url)}
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{File: fileName, Err: err}
	}

	return content, nil
}

// Close releases the fetcher's HTTP session.
func (f *Fetcher) Close() {
	f.client.CloseIdleConnections()
}
