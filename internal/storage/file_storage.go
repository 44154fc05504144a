// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Leolani Contributors

package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/leolani/emissor-data/internal/index"
	"github.com/leolani/emissor-data/internal/logger"
	"github.com/leolani/emissor-data/models"
)

// storageURLScheme prefixes signal payload references served by the
// backend storage service.
const storageURLScheme = "cltl-storage:"

// fileStorage is the file-backed [EmissorDataStorage]. It tracks the single
// active scenario in memory and persists it through a [ScenarioStorage] on
// Flush, which runs on scenario start, scenario stop, and on demand.
type fileStorage struct {
	storage *ScenarioStorage
	loader  SignalDataLoader
	idx     index.ElementIndex
	log     *logger.Logger

	mu       sync.RWMutex
	current  *models.Scenario
	signals  map[string]*models.Signal
	modified bool
}

// NewFileStorage creates file-backed storage persisting under storage's
// base path. loader fetches completed signal payloads; idx records element
// ids for later scenario lookups.
func NewFileStorage(storage *ScenarioStorage, loader SignalDataLoader, idx index.ElementIndex, log *logger.Logger) EmissorDataStorage {
	if log == nil {
		log = logger.Nop()
	}

	return &fileStorage{
		storage: storage,
		loader:  loader,
		idx:     idx,
		log:     log,
		signals: make(map[string]*models.Signal),
	}
}

func (f *fileStorage) StartScenario(ctx context.Context, scenario models.Scenario) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.current != nil {
		return fmt.Errorf("%w: scenario %q is active, tried to start %q",
			ErrScenarioAlreadyStarted, f.current.ID, scenario.ID)
	}

	if err := f.storage.CreateScenario(scenario); err != nil {
		return err
	}

	f.current = &scenario
	f.signals = make(map[string]*models.Signal)
	f.modified = false

	f.log.Info().Str("scenario", scenario.ID).Msg("started scenario")
	return nil
}

func (f *fileStorage) UpdateScenario(ctx context.Context, scenario models.Scenario) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.requireCurrent(scenario.ID); err != nil {
		return err
	}

	f.current.Context = scenario.Context
	f.modified = true

	return nil
}

func (f *fileStorage) StopScenario(ctx context.Context, scenario models.Scenario) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.requireCurrent(scenario.ID); err != nil {
		return err
	}

	f.current.Ruler.End = scenario.Ruler.End
	f.modified = true
	if err := f.flushLocked(); err != nil {
		return err
	}

	f.archiveInteractionLogs()

	f.log.Info().Str("scenario", f.current.ID).Msg("stopped scenario")
	f.current = nil
	f.signals = make(map[string]*models.Signal)

	return nil
}

func (f *fileStorage) AddSignal(ctx context.Context, signal models.Signal) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.current == nil {
		f.log.Warn().Str("signal", signal.ID).Msg("skipping signal for stopped scenario")
		return nil
	}

	if signal.Time.ContainerID != f.current.ID {
		return fmt.Errorf("%w: scenario %q is active, signal %q belongs to %q",
			ErrScenarioMismatch, f.current.ID, signal.ID, signal.Time.ContainerID)
	}

	if signal.Completed() {
		signal.Files = f.storeSignalFiles(ctx, signal)
	}

	if existing, ok := f.signals[signal.ID]; ok {
		existing.Merge(signal)
	} else {
		stored := signal
		f.signals[signal.ID] = &stored

		entry := index.Entry{ElementID: signal.ID, SignalID: signal.ID, ScenarioID: f.current.ID}
		if err := f.idx.Put(ctx, entry); err != nil {
			return fmt.Errorf("index signal %q: %w", signal.ID, err)
		}
		f.log.Debug().Str("signal", signal.ID).Msg("added signal to emissor file storage")
	}

	f.modified = true
	return nil
}

// storeSignalFiles copies the payloads of a completed signal into the
// scenario directory and returns their scenario-relative paths. Failures
// are logged and the relative path kept, matching at-most-once payload
// delivery from the backend.
func (f *fileStorage) storeSignalFiles(ctx context.Context, signal models.Signal) []string {
	switch signal.Modality {
	case models.ModalityText:
		return []string{}
	case models.ModalityAudio, models.ModalityImage:
	default:
		f.log.Error().Str("signal", signal.ID).Str("modality", string(signal.Modality)).
			Msg("unsupported modality, signal payload not stored")
		return nil
	}

	stored := make([]string, 0, len(signal.Files))
	for _, url := range signal.Files {
		relative := strings.TrimPrefix(url, storageURLScheme) + "." + signal.Modality.FileExtension()
		dest := filepath.Join(f.storage.ScenarioDir(f.current.ID), relative)

		if err := f.copySignalData(ctx, url, dest); err != nil {
			f.log.Error().Err(err).Str("signal", signal.ID).Str("url", url).
				Msg("failed to store signal payload")
		} else {
			f.log.Info().Str("url", url).Str("dest", dest).Msg("copied signal payload")
		}

		stored = append(stored, relative)
	}

	return stored
}

func (f *fileStorage) copySignalData(ctx context.Context, url, dest string) error {
	source, err := f.loader.Fetch(ctx, url)
	if err != nil {
		return err
	}
	defer source.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create payload dir: %w", err)
	}

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create payload file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, source); err != nil {
		return fmt.Errorf("copy payload: %w", err)
	}

	return nil
}

func (f *fileStorage) AddMention(ctx context.Context, mention models.Mention) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.addMentionLocked(ctx, mention)
}

func (f *fileStorage) AddMentions(ctx context.Context, mentions []models.Mention) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, mention := range mentions {
		if err := f.addMentionLocked(ctx, mention); err != nil {
			return err
		}
	}
	return nil
}

func (f *fileStorage) addMentionLocked(ctx context.Context, mention models.Mention) error {
	if f.current == nil {
		f.log.Warn().Str("mention", mention.ID).Msg("skipping mention for stopped scenario")
		return nil
	}

	containerID := mention.ContainerID()

	var signalID string
	if _, ok := f.signals[containerID]; ok {
		signalID = containerID
	} else if entry, err := f.idx.Resolve(ctx, containerID); err == nil {
		signalID = entry.SignalID
	} else {
		return fmt.Errorf("%w: container %q for mention %q in scenario %q",
			ErrContainerNotFound, containerID, mention.ID, f.current.ID)
	}

	signal, ok := f.signals[signalID]
	if !ok {
		return fmt.Errorf("%w: %q for mention %q", ErrSignalNotFound, signalID, mention.ID)
	}

	signal.Mentions = append(signal.Mentions, mention)

	entry := index.Entry{ElementID: mention.ID, SignalID: signalID, ScenarioID: f.current.ID}
	if err := f.idx.Put(ctx, entry); err != nil {
		return fmt.Errorf("index mention %q: %w", mention.ID, err)
	}
	f.log.Debug().Str("mention", mention.ID).Msg("added mention to emissor file storage")

	for _, annotation := range mention.Annotations {
		if annotation.ID == "" {
			continue
		}
		entry := index.Entry{ElementID: annotation.ID, SignalID: signalID, ScenarioID: f.current.ID}
		if err := f.idx.Put(ctx, entry); err != nil {
			return fmt.Errorf("index annotation %q: %w", annotation.ID, err)
		}
		f.log.Debug().Str("annotation", annotation.ID).Msg("added annotation container to index")
	}

	f.modified = true
	return nil
}

func (f *fileStorage) GetSignal(signalID string) (models.Signal, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	signal, ok := f.signals[signalID]
	if !ok {
		return models.Signal{}, fmt.Errorf("%w: %q", ErrSignalNotFound, signalID)
	}
	return *signal, nil
}

func (f *fileStorage) CurrentScenarioID() string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.current == nil {
		return ""
	}
	return f.current.ID
}

func (f *fileStorage) ScenarioForID(ctx context.Context, elementID string) (string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if signal, ok := f.signals[elementID]; ok {
		return signal.Time.ContainerID, nil
	}

	entry, err := f.idx.Resolve(ctx, elementID)
	if err != nil {
		return "", err
	}
	return entry.ScenarioID, nil
}

func (f *fileStorage) Flush(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.flushLocked()
}

func (f *fileStorage) flushLocked() error {
	if f.current == nil || !f.modified {
		return nil
	}

	if err := f.storage.SaveScenario(*f.current); err != nil {
		return err
	}

	byModality := make(map[models.Modality][]models.Signal)
	for _, signal := range f.signals {
		byModality[signal.Modality] = append(byModality[signal.Modality], *signal)
	}
	for modality, signals := range byModality {
		if err := f.storage.SaveSignals(f.current.ID, modality, signals); err != nil {
			return err
		}
	}

	f.modified = false
	f.log.Info().Str("scenario", f.current.ID).Msg("persisted scenario data")

	return nil
}

func (f *fileStorage) requireCurrent(scenarioID string) error {
	if f.current == nil {
		return fmt.Errorf("%w: %q, no scenario is active", ErrScenarioNotStarted, scenarioID)
	}
	if f.current.ID != scenarioID {
		return fmt.Errorf("%w: %q, current scenario is %q", ErrScenarioNotStarted, scenarioID, f.current.ID)
	}
	return nil
}

// archiveInteractionLogs copies the interaction logs written next to the
// scenario store (<base>/../rdf/**/brain_log_<timestamp>.trig) whose
// timestamp falls inside the stopped scenario's time window into the
// scenario's rdf directory. Archiving is best effort: failures are logged,
// the stop proceeds.
func (f *fileStorage) archiveInteractionLogs() {
	start := logTimestamp(f.current.Ruler.Start)
	end := ""
	if f.current.Ruler.End != nil {
		end = logTimestamp(*f.current.Ruler.End)
	}

	destDir := filepath.Join(f.storage.ScenarioDir(f.current.ID), "rdf")
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		f.log.Error().Err(err).Msg("failed to create rdf dir for scenario")
		return
	}
	f.log.Info().Str("path", destDir).Msg("created rdf folder for scenario")

	sourceDir := filepath.Join(f.storage.BasePath(), "..", "rdf")
	logs, err := collectInteractionLogs(sourceDir, start, end)
	if err != nil {
		f.log.Error().Err(err).Str("path", sourceDir).Msg("failed to scan interaction logs")
		return
	}

	for _, path := range logs {
		if err := copyFile(path, filepath.Join(destDir, filepath.Base(path))); err != nil {
			f.log.Error().Err(err).Str("path", path).Msg("failed to copy interaction log")
		}
	}

	f.log.Info().Int("count", len(logs)).Str("scenario", f.current.ID).Msg("copied interaction logs to scenario")
}

// collectInteractionLogs walks dir recursively and returns the brain_log
// files whose timestamp part lies in [start, end]. Timestamps compare
// lexically because they share the fixed layout of logTimestamp.
func collectInteractionLogs(dir, start, end string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var logs []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			nested, err := collectInteractionLogs(path, start, end)
			if err != nil {
				return nil, err
			}
			logs = append(logs, nested...)
			continue
		}

		name := entry.Name()
		if !strings.HasPrefix(name, "brain_log_") || !strings.HasSuffix(name, ".trig") {
			continue
		}

		ts := strings.TrimSuffix(strings.TrimPrefix(name, "brain_log_"), ".trig")
		if ts >= start && (end == "" || ts <= end) {
			logs = append(logs, path)
		}
	}

	return logs, nil
}

func logTimestamp(ms int64) string {
	return time.UnixMilli(ms).Format("2006-01-02-15-04-05")
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
