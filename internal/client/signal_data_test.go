package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payloadServer(t *testing.T, payloads map[string]string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, ok := payloads[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(server.Close)

	return server
}

func fetchAll(t *testing.T, cli *SignalDataClient, url string) string {
	t.Helper()

	body, err := cli.Fetch(context.Background(), url)
	require.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)

	return string(data)
}

// ── SignalDataClient ──

// TestFetch_StorageScheme verifies cltl-storage references resolve against
// the backend base URL.
func TestFetch_StorageScheme(t *testing.T) {
	server := payloadServer(t, map[string]string{"/audio/sig_1.wav": "RIFF-audio-bytes"})
	cli := NewSignalDataClient(server.URL, time.Second)

	data := fetchAll(t, cli, "cltl-storage:audio/sig_1.wav")

	assert.Equal(t, "RIFF-audio-bytes", data)
}

// TestFetch_StorageSchemeLeadingSlash verifies references with a leading
// slash map to the same path.
func TestFetch_StorageSchemeLeadingSlash(t *testing.T) {
	server := payloadServer(t, map[string]string{"/audio/sig_1.wav": "RIFF-audio-bytes"})
	cli := NewSignalDataClient(server.URL, time.Second)

	data := fetchAll(t, cli, "cltl-storage:/audio/sig_1.wav")

	assert.Equal(t, "RIFF-audio-bytes", data)
}

// TestFetch_NotFound verifies a 404 surfaces as an error with the url and
// status.
func TestFetch_NotFound(t *testing.T) {
	server := payloadServer(t, nil)
	cli := NewSignalDataClient(server.URL, time.Second)

	_, err := cli.Fetch(context.Background(), "cltl-storage:audio/missing.wav")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "audio/missing.wav")
	assert.Contains(t, err.Error(), "404")
}

// TestFetch_AbsoluteURL verifies full URLs bypass the storage scheme
// mapping.
func TestFetch_AbsoluteURL(t *testing.T) {
	server := payloadServer(t, map[string]string{"/image/sig_2.png": "PNG-bytes"})
	cli := NewSignalDataClient(server.URL, time.Second)

	data := fetchAll(t, cli, server.URL+"/image/sig_2.png")

	assert.Equal(t, "PNG-bytes", data)
}
