// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Leolani Contributors

package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Mention marks one or more segments of a signal and attaches annotations
// to them, e.g. a token range with a named-entity label.
type Mention struct {
	// ID is the unique identifier of the mention.
	ID string `json:"id"`

	// Segment lists the signal segments the mention refers to. The first
	// segment's ContainerID determines the owning signal.
	Segment []MultiIndex `json:"segment"`

	// Annotations are the interpretations attached to the segments.
	Annotations []Annotation `json:"annotations"`
}

// NewMention creates a mention over the given segments. An empty id is
// replaced by a fresh UUID.
func NewMention(id string, segment []MultiIndex, annotations []Annotation) Mention {
	if id == "" {
		id = uuid.NewString()
	}

	return Mention{ID: id, Segment: segment, Annotations: annotations}
}

// ContainerID returns the id of the container the mention's first segment
// points at, or empty when the mention has no segments.
func (m Mention) ContainerID() string {
	if len(m.Segment) == 0 {
		return ""
	}
	return m.Segment[0].ContainerID
}

// Annotation is one interpretation of a mentioned segment. Value is opaque
// to this service and stored verbatim.
type Annotation struct {
	// Type names the kind of annotation, e.g. "token", "emotion".
	Type string `json:"type"`

	// ID is set when the annotation value is itself a container that other
	// elements may reference; empty otherwise.
	ID string `json:"id,omitempty"`

	// Value is the annotation payload, kept as raw JSON.
	Value json.RawMessage `json:"value"`

	// Source identifies the component that produced the annotation.
	Source string `json:"source"`

	// Timestamp is the annotation creation time in milliseconds.
	Timestamp int64 `json:"timestamp"`
}
