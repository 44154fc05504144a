package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenarioServer fakes the emissor-data REST surface with a fixed set of
// known elements.
func scenarioServer(t *testing.T, currentID string, elements map[string]string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /emissor/scenario/current/id", func(w http.ResponseWriter, r *http.Request) {
		if currentID == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(currentID))
	})
	mux.HandleFunc("GET /emissor/{id}/scenario/id", func(w http.ResponseWriter, r *http.Request) {
		scenarioID, ok := elements[r.PathValue("id")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(scenarioID))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

// ── EmissorDataClient ──

// TestCurrentScenarioID verifies the current scenario lookup.
func TestCurrentScenarioID(t *testing.T) {
	server := scenarioServer(t, "sc_1", nil)
	cli := NewEmissorDataClient(server.URL+"/emissor", time.Second, nil)

	id, err := cli.CurrentScenarioID(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "sc_1", id)
}

// TestCurrentScenarioID_NoScenario verifies 404 maps to an empty id without
// an error.
func TestCurrentScenarioID_NoScenario(t *testing.T) {
	server := scenarioServer(t, "", nil)
	cli := NewEmissorDataClient(server.URL+"/emissor", time.Second, nil)

	id, err := cli.CurrentScenarioID(context.Background())

	require.NoError(t, err)
	assert.Empty(t, id)
}

// TestCurrentScenarioID_ServerError verifies 5xx responses surface as
// lookup errors.
func TestCurrentScenarioID_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)
	cli := NewEmissorDataClient(server.URL+"/emissor", time.Second, nil)

	_, err := cli.CurrentScenarioID(context.Background())

	require.ErrorIs(t, err, ErrScenarioLookup)
}

// TestScenarioForID verifies element-to-scenario resolution.
func TestScenarioForID(t *testing.T) {
	server := scenarioServer(t, "sc_2", map[string]string{"men_1": "sc_1"})
	cli := NewEmissorDataClient(server.URL+"/emissor", time.Second, nil)

	id, err := cli.ScenarioForID(context.Background(), "men_1", false)

	require.NoError(t, err)
	assert.Equal(t, "sc_1", id)
}

// TestScenarioForID_UnknownWithoutFallback verifies an unknown element is
// an error when fallback is off.
func TestScenarioForID_UnknownWithoutFallback(t *testing.T) {
	server := scenarioServer(t, "sc_2", nil)
	cli := NewEmissorDataClient(server.URL+"/emissor", time.Second, nil)

	_, err := cli.ScenarioForID(context.Background(), "nope", false)

	require.ErrorIs(t, err, ErrScenarioLookup)
	assert.Contains(t, err.Error(), "nope")
}

// TestScenarioForID_FallsBackToCurrent verifies the current scenario id is
// returned for unknown elements when fallback is on.
func TestScenarioForID_FallsBackToCurrent(t *testing.T) {
	server := scenarioServer(t, "sc_2", nil)
	cli := NewEmissorDataClient(server.URL+"/emissor", time.Second, nil)

	id, err := cli.ScenarioForID(context.Background(), "nope", true)

	require.NoError(t, err)
	assert.Equal(t, "sc_2", id)
}

// TestScenarioForID_FallbackWithoutCurrent verifies fallback yields an
// empty id when no scenario is active either.
func TestScenarioForID_FallbackWithoutCurrent(t *testing.T) {
	server := scenarioServer(t, "", nil)
	cli := NewEmissorDataClient(server.URL+"/emissor", time.Second, nil)

	id, err := cli.ScenarioForID(context.Background(), "nope", true)

	require.NoError(t, err)
	assert.Empty(t, id)
}
