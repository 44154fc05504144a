package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leolani/emissor-data/models"
)

// TestScenarioStorage_SaveLoadScenario verifies the scenario document
// roundtrip through the on-disk layout.
func TestScenarioStorage_SaveLoadScenario(t *testing.T) {
	// Arrange
	s := NewScenarioStorage(t.TempDir())
	scenario := models.NewScenario("sc_1", 0, nil, "", map[models.Modality]string{models.ModalityImage: "./image"})

	// Act
	require.NoError(t, s.CreateScenario(scenario))
	actual, err := s.LoadScenario("sc_1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "sc_1", actual.ID)
	assert.Equal(t, "sc_1", actual.Ruler.ContainerID)
	assert.Equal(t, int64(0), actual.Ruler.Start)
	assert.Nil(t, actual.Ruler.End)
	assert.Equal(t, "", actual.Context)
	assert.Equal(t, map[models.Modality]string{models.ModalityImage: "./image"}, actual.Signals)
}

// TestScenarioStorage_LoadScenario_Missing verifies the not-found error for
// unknown scenario ids.
func TestScenarioStorage_LoadScenario_Missing(t *testing.T) {
	s := NewScenarioStorage(t.TempDir())

	_, err := s.LoadScenario("nope")

	require.ErrorIs(t, err, ErrScenarioNotFound)
}

// TestScenarioStorage_SaveLoadSignals verifies the per-modality signal file
// roundtrip.
func TestScenarioStorage_SaveLoadSignals(t *testing.T) {
	s := NewScenarioStorage(t.TempDir())
	scenario := models.NewScenario("sc_1", 0, nil, "", nil)
	require.NoError(t, s.CreateScenario(scenario))

	signal := models.NewAudioSignal("sc_1", "sig_1", 0, nil, "", 16000, 2)
	require.NoError(t, s.SaveSignals("sc_1", models.ModalityAudio, []models.Signal{signal}))

	loaded, err := s.LoadSignals("sc_1", models.ModalityAudio)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "sig_1", loaded[0].ID)
	assert.Equal(t, [4]int{0, 0, 16000, 2}, loaded[0].Ruler.Bounds)
}

// TestScenarioStorage_LoadSignals_MissingFile verifies that a missing
// modality file yields an empty list, not an error.
func TestScenarioStorage_LoadSignals_MissingFile(t *testing.T) {
	s := NewScenarioStorage(t.TempDir())

	signals, err := s.LoadSignals("sc_1", models.ModalityText)

	require.NoError(t, err)
	assert.Empty(t, signals)
}

// TestScenarioStorage_ScenarioDir verifies the directory layout.
func TestScenarioStorage_ScenarioDir(t *testing.T) {
	base := t.TempDir()
	s := NewScenarioStorage(base)

	assert.Equal(t, base, s.BasePath())
	assert.Equal(t, filepath.Join(base, "sc_1"), s.ScenarioDir("sc_1"))
}
