// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Leolani Contributors

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates in from environment variables using the caarlos0/env
// library. Fields are mapped via the `env` tags declared on [Input].
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(in *Input) error {
	if err := env.Parse(in); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
