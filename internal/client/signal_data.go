package client

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// storageURLScheme prefixes payload references pointing into the backend
// storage service.
const storageURLScheme = "cltl-storage:"

// SignalDataClient fetches raw signal payloads from the backend storage
// service. It satisfies the storage.SignalDataLoader interface.
type SignalDataClient struct {
	client *resty.Client
}

// NewSignalDataClient creates a payload client for the backend storage
// service at baseURL.
func NewSignalDataClient(baseURL string, timeout time.Duration) *SignalDataClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	// raw bodies are streamed to disk by the caller, not parsed
	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetDoNotParseResponse(true)

	return &SignalDataClient{client: cli}
}

// Fetch streams the payload behind url. Storage-scheme references
// ("cltl-storage:<path>") are resolved against the backend base URL;
// absolute URLs are fetched as-is. The caller closes the returned reader.
func (c *SignalDataClient) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	path := url
	if strings.HasPrefix(url, storageURLScheme) {
		path = "/" + strings.TrimLeft(strings.TrimPrefix(url, storageURLScheme), "/")
	}

	resp, err := c.client.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("fetch signal data %q: %w", url, err)
	}

	if resp.StatusCode() >= 400 {
		body := resp.RawBody()
		if body != nil {
			_ = body.Close()
		}
		return nil, fmt.Errorf("fetch signal data %q: status %d", url, resp.StatusCode())
	}

	return resp.RawBody(), nil
}
