// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Leolani Contributors

package models

import "github.com/google/uuid"

// Signal is one recorded piece of raw interaction data within a scenario:
// an utterance, an audio fragment, or a captured image.
type Signal struct {
	// ID is the unique identifier of the signal.
	ID string `json:"id"`

	// Modality is the kind of data the signal carries.
	Modality Modality `json:"modality"`

	// Time places the signal on the scenario timeline.
	// Time.ContainerID is the owning scenario's id; Time.End is nil for a
	// signal that has started but not yet completed.
	Time TemporalRuler `json:"time"`

	// Ruler is the signal's own extent: the full sample/pixel range other
	// elements can segment against. Ruler.ContainerID equals ID.
	Ruler MultiIndex `json:"ruler"`

	// Text holds the payload of text signals; empty for other modalities.
	Text string `json:"text,omitempty"`

	// Files lists the signal's payload locations. On ingest these are
	// backend storage URLs; after persistence they are paths relative to
	// the scenario directory.
	Files []string `json:"files"`

	// Mentions are the annotated segments attached to this signal.
	Mentions []Mention `json:"mentions"`
}

// Completed reports whether the signal has an end timestamp and is ready
// for payload persistence.
func (s *Signal) Completed() bool {
	return s.Time.End != nil
}

// NewTextSignal creates a text signal for the given scenario. An empty id
// is replaced by a fresh UUID.
func NewTextSignal(scenarioID, id string, start int64, end *int64, text string) Signal {
	sig := newSignal(scenarioID, id, start, end, ModalityText)
	sig.Text = text
	sig.Ruler.Bounds = [4]int{0, 0, 0, len(text)}
	return sig
}

// NewAudioSignal creates an audio signal spanning the given number of
// samples and channels, referencing its raw data by backend URL.
func NewAudioSignal(scenarioID, id string, start int64, end *int64, file string, samples, channels int) Signal {
	sig := newSignal(scenarioID, id, start, end, ModalityAudio)
	sig.Ruler.Bounds = [4]int{0, 0, samples, channels}
	if file != "" {
		sig.Files = []string{file}
	}
	return sig
}

// NewImageSignal creates an image signal covering the given pixel bounds,
// referencing its raw data by backend URL.
func NewImageSignal(scenarioID, id string, start int64, end *int64, file string, bounds [4]int) Signal {
	sig := newSignal(scenarioID, id, start, end, ModalityImage)
	sig.Ruler.Bounds = bounds
	if file != "" {
		sig.Files = []string{file}
	}
	return sig
}

func newSignal(scenarioID, id string, start int64, end *int64, modality Modality) Signal {
	if id == "" {
		id = uuid.NewString()
	}

	return Signal{
		ID:       id,
		Modality: modality,
		Time:     TemporalRuler{ContainerID: scenarioID, Start: start, End: end},
		Ruler:    MultiIndex{ContainerID: id},
		Files:    []string{},
		Mentions: []Mention{},
	}
}

// Merge copies the non-zero fields of update into the signal. Used when a
// second event for the same signal id arrives, typically carrying the end
// timestamp and final extent of a signal announced earlier.
func (s *Signal) Merge(update Signal) {
	if update.Time.End != nil {
		s.Time.End = update.Time.End
	}
	if update.Time.Start != 0 {
		s.Time.Start = update.Time.Start
	}
	if update.Ruler.Bounds != ([4]int{}) {
		s.Ruler.Bounds = update.Ruler.Bounds
	}
	if update.Text != "" {
		s.Text = update.Text
	}
	if len(update.Files) > 0 {
		s.Files = update.Files
	}
	if len(update.Mentions) > 0 {
		s.Mentions = append(s.Mentions, update.Mentions...)
	}
}
