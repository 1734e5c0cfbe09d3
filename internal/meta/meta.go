// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package meta

import (
	"context"

	"github.com/staranto/matx/internal/config"
)

// Meta are the meta-options resolved before the command runs.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
	// Profile is the config namespace under "profiles" that flag values are
	// read from before the top-level keys.
	Profile     string
	StartingDir string
	// Color is true when stderr and stdout are terminals.
	Color bool
}
