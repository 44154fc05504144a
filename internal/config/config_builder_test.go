package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leolani/emissor-data/internal/logger"
)

// ── newInputBuilder ───────────────────────────────────────────────────────────

// TestNewInputBuilder_InitialState verifies that a freshly created builder
// has no error and an empty inputs slice.
func TestNewInputBuilder_InitialState(t *testing.T) {
	b := newInputBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.inputs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no inputs returns a
// zero-value Input.
func TestBuild_EmptyBuilder(t *testing.T) {
	in, err := newInputBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &Input{}, in)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil input.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newInputBuilder()
	b.err = assert.AnError

	in, err := b.build()
	assert.Nil(t, in)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleInputs verifies that fields from multiple inputs
// are merged into a single result.
func TestBuild_MergesMultipleInputs(t *testing.T) {
	b := newInputBuilder()
	b.inputs = append(b.inputs,
		&Input{ProjectRoot: "/repo"},
		&Input{GitRemote: "https://github.com/other"},
	)

	in, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/repo", in.ProjectRoot)
	assert.Equal(t, "https://github.com/other", in.GitRemote)
}

// TestBuild_EarlierSourceWins verifies the precedence order: for a field
// set by two sources, the earlier one is retained.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newInputBuilder()
	b.inputs = append(b.inputs,
		&Input{ProjectRoot: "/explicit"},
		&Input{ProjectRoot: "/flags", GitRemote: "https://github.com/flags"},
	)

	in, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/explicit", in.ProjectRoot)
	assert.Equal(t, "https://github.com/flags", in.GitRemote)
}

// ── sources ───────────────────────────────────────────────────────────────────

// TestWithExplicit_NilIsSkipped verifies that a nil explicit input adds
// nothing.
func TestWithExplicit_NilIsSkipped(t *testing.T) {
	b := newInputBuilder().withExplicit(nil)
	assert.Empty(t, b.inputs)
}

// TestWithFlags_ParsesArguments verifies flag parsing into an Input.
func TestWithFlags_ParsesArguments(t *testing.T) {
	b := newInputBuilder().withFlags([]string{
		"-root", "/repo",
		"-remote", "https://github.com/other",
		"-deps", "/repo/a,/repo/b",
		"-a", "localhost:8087",
		"-request-timeout", "45s",
		"-topics", "cltl.topic.scenario, cltl.topic.mention",
		"-index", "sqlite",
		"-index-dsn", "/tmp/index.db",
	})

	in, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "/repo", in.ProjectRoot)
	assert.Equal(t, "https://github.com/other", in.GitRemote)
	assert.Equal(t, []string{"/repo/a", "/repo/b"}, in.ProjectDependencies)
	assert.Equal(t, "localhost:8087", in.ServerAddress)
	assert.Equal(t, "45s", in.RequestTimeout)
	assert.Equal(t, []string{"cltl.topic.scenario", "cltl.topic.mention"}, in.EventTopics)
	assert.Equal(t, "sqlite", in.IndexBackend)
	assert.Equal(t, "/tmp/index.db", in.IndexDSN)
}

// TestWithFlags_InvalidFlagFails verifies that an unknown flag surfaces as
// a builder error.
func TestWithFlags_InvalidFlagFails(t *testing.T) {
	_, err := newInputBuilder().withFlags([]string{"-no-such-flag"}).build()

	require.Error(t, err)
}

// ── getServiceConfig ──────────────────────────────────────────────────────────

// TestGetServiceConfig_Defaults verifies the end-to-end path from sources
// through module loading to the validated typed view.
func TestGetServiceConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := getServiceConfig(nil, nil, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, ".", cfg.ProjectRoot)
	assert.Equal(t, []string{"./cltl-requirements", "./cltl-combot", "./emissor"}, cfg.ProjectDependencies)
	assert.Equal(t, "https://github.com/leolani", cfg.GitRemote)
	assert.Equal(t, "./data/emissor", cfg.DataPath)
	assert.Equal(t, "0.0.0.0:8087", cfg.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, IndexBackendMemory, cfg.IndexBackend)
	assert.NotEmpty(t, cfg.EventTopics)
}

// TestGetServiceConfig_ExplicitBeatsFlagsAndEnv verifies the source
// priority order.
func TestGetServiceConfig_ExplicitBeatsFlagsAndEnv(t *testing.T) {
	setEnvVars(t, map[string]string{"GIT_REMOTE": "https://github.com/env"})

	cfg, err := getServiceConfig(
		&Input{GitRemote: "https://github.com/explicit"},
		[]string{"-remote", "https://github.com/flags"},
		logger.Nop(),
	)

	require.NoError(t, err)
	assert.Equal(t, "https://github.com/explicit", cfg.GitRemote)
}

// TestGetServiceConfig_FlagsBeatEnv verifies that flag values win over
// environment values.
func TestGetServiceConfig_FlagsBeatEnv(t *testing.T) {
	setEnvVars(t, map[string]string{"GIT_REMOTE": "https://github.com/env"})

	cfg, err := getServiceConfig(nil, []string{"-remote", "https://github.com/flags"}, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "https://github.com/flags", cfg.GitRemote)
}

// TestGetServiceConfig_InvalidTimeoutFails verifies that a malformed
// timeout aborts config loading.
func TestGetServiceConfig_InvalidTimeoutFails(t *testing.T) {
	clearEnvVars(t)

	_, err := getServiceConfig(&Input{RequestTimeout: "not-a-duration"}, nil, logger.Nop())

	require.ErrorIs(t, err, ErrInvalidServerConfig)
}

// TestGetServiceConfig_UnknownIndexBackendFails verifies validation of the
// index backend selection.
func TestGetServiceConfig_UnknownIndexBackendFails(t *testing.T) {
	clearEnvVars(t)

	_, err := getServiceConfig(&Input{IndexBackend: "postgres"}, nil, logger.Nop())

	require.ErrorIs(t, err, ErrInvalidIndexConfig)
}
