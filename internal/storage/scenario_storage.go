// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Leolani Contributors

package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/leolani/emissor-data/models"
)

// ScenarioStorage reads and writes the on-disk scenario layout:
//
//	<base>/<scenario_id>/<scenario_id>.json   the scenario document
//	<base>/<scenario_id>/<modality>.json      the signals of one modality
//	<base>/<scenario_id>/<relative path>      copied signal payloads
type ScenarioStorage struct {
	basePath string
}

// NewScenarioStorage creates storage rooted at basePath. The directory is
// created on first use.
func NewScenarioStorage(basePath string) *ScenarioStorage {
	return &ScenarioStorage{basePath: basePath}
}

// BasePath returns the storage root directory.
func (s *ScenarioStorage) BasePath() string {
	return s.basePath
}

// ScenarioDir returns the directory of one scenario.
func (s *ScenarioStorage) ScenarioDir(scenarioID string) string {
	return filepath.Join(s.basePath, scenarioID)
}

// CreateScenario creates the scenario directory and persists the scenario
// document.
func (s *ScenarioStorage) CreateScenario(scenario models.Scenario) error {
	if err := os.MkdirAll(s.ScenarioDir(scenario.ID), 0o755); err != nil {
		return fmt.Errorf("create scenario dir: %w", err)
	}

	return s.SaveScenario(scenario)
}

// SaveScenario writes the scenario document.
func (s *ScenarioStorage) SaveScenario(scenario models.Scenario) error {
	path := filepath.Join(s.ScenarioDir(scenario.ID), scenario.ID+".json")
	return writeJSON(path, scenario)
}

// LoadScenario reads the scenario document, or ErrScenarioNotFound.
func (s *ScenarioStorage) LoadScenario(scenarioID string) (models.Scenario, error) {
	path := filepath.Join(s.ScenarioDir(scenarioID), scenarioID+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.Scenario{}, fmt.Errorf("%w: %q", ErrScenarioNotFound, scenarioID)
		}
		return models.Scenario{}, fmt.Errorf("read scenario file: %w", err)
	}

	var scenario models.Scenario
	if err := json.Unmarshal(data, &scenario); err != nil {
		return models.Scenario{}, fmt.Errorf("decode scenario file: %w", err)
	}

	return scenario, nil
}

// SaveSignals writes the signal file of one modality.
func (s *ScenarioStorage) SaveSignals(scenarioID string, modality models.Modality, signals []models.Signal) error {
	path := filepath.Join(s.ScenarioDir(scenarioID), string(modality)+".json")
	return writeJSON(path, signals)
}

// LoadSignals reads the signal file of one modality. A missing file yields
// an empty list.
func (s *ScenarioStorage) LoadSignals(scenarioID string, modality models.Modality) ([]models.Signal, error) {
	path := filepath.Join(s.ScenarioDir(scenarioID), string(modality)+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Signal{}, nil
		}
		return nil, fmt.Errorf("read signal file: %w", err)
	}

	var signals []models.Signal
	if err := json.Unmarshal(data, &signals); err != nil {
		return nil, fmt.Errorf("decode signal file: %w", err)
	}

	return signals, nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}

	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}

	return nil
}
