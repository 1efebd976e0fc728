package dataset

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// Fetcher downloads raw image bytes with retries. Remote galaxy archives are
// flaky enough that a plain http.Get loses samples on transient failures.
type Fetcher struct {
	client *retryablehttp.Client
}

func NewFetcher() *Fetcher {
	client := retryablehttp.NewClient()
	client.RetryMax = 5
	client.HTTPClient.Timeout = 30 * time.Second
	client.RetryWaitMin = 500 * time.Millisecond
	client.RetryWaitMax = 20 * time.Second
	client.Logger = nil

	return &Fetcher{client: client}
}

// FetchBytes downloads the resource at url.
func (f *Fetcher) FetchBytes(url string) ([]byte, error) {
	req, err := retryablehttp.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dataset: create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dataset: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("dataset: fetch %s returned status %d", url, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
