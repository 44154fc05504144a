// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Leolani Contributors

package models

// TemporalRuler places an element on the timeline of its container.
// Start and End are unix timestamps in milliseconds; End is nil while the
// element is still open.
type TemporalRuler struct {
	// ContainerID identifies the container (usually a scenario) whose
	// timeline this ruler refers to.
	ContainerID string `json:"container_id"`

	// Start is the begin timestamp in milliseconds since the epoch.
	Start int64 `json:"start"`

	// End is the end timestamp in milliseconds, or nil while open.
	End *int64 `json:"end,omitempty"`
}

// Covers reports whether the given timestamp falls inside the ruler's
// interval. An open ruler covers everything at or after Start.
func (r TemporalRuler) Covers(ts int64) bool {
	if ts < r.Start {
		return false
	}
	return r.End == nil || ts <= *r.End
}

// MultiIndex marks a rectangular segment of a two-dimensional container,
// for example a region of an image or a sample/channel range of audio.
// Bounds are (x0, y0, x1, y1).
type MultiIndex struct {
	ContainerID string `json:"container_id"`
	Bounds      [4]int `json:"bounds"`
}
