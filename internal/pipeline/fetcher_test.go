package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFetcherFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/title.ratings.tsv.gz", r.URL.Path)
		w.Write([]byte("payload"))
	}))
	defer server.Close()

	fetcher := NewFetcher(server.URL)
	defer fetcher.Close()

	content, err := fetcher.Fetch(context.Background(), "title.ratings.tsv.gz")
	require.NoError(t, err)
	require.Equal(t, []byte("payload"), content)
}

func TestFetcherFetchNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	fetcher := NewFetcher(server.URL)
	defer fetcher.Close()

	_, err := fetcher.Fetch(context.Background(), "title.ratings.tsv.gz")

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, "title.ratings.tsv.gz", fetchErr.File)
	require.Contains(t, fetchErr.Error(), "404")
}

func TestFetcherFetchOriginDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	fetcher := NewFetcher(server.URL)
	defer fetcher.Close()

	_, err := fetcher.Fetch(context.Background(), "title.ratings.tsv.gz")

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, "title.ratings.tsv.gz", fetchErr.File)
}
