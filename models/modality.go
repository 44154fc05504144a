// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Leolani Contributors

package models

// Modality identifies the kind of raw data a signal carries.
type Modality string

const (
	// ModalityText marks signals carrying transcribed or typed text.
	ModalityText Modality = "text"

	// ModalityAudio marks signals carrying recorded audio samples.
	ModalityAudio Modality = "audio"

	// ModalityImage marks signals carrying captured images.
	ModalityImage Modality = "image"
)

// Known returns true for the modalities this service can persist.
func (m Modality) Known() bool {
	switch m {
	case ModalityText, ModalityAudio, ModalityImage:
		return true
	}
	return false
}

// FileExtension returns the file extension used when signal payloads of
// this modality are copied into scenario storage.
func (m Modality) FileExtension() string {
	switch m {
	case ModalityAudio:
		return "wav"
	case ModalityImage:
		return "png"
	default:
		return ""
	}
}
