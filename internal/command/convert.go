// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strconv"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/matx/internal/cache"
	"github.com/staranto/matx/internal/driver"
	"github.com/staranto/matx/internal/output"
)

// ConvertCommandAction converts the input file named by the first argument.
// An optional second argument overrides --cache-size.
func ConvertCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v (profile=%q)", m.Args, m.Profile)

	args := cmd.Args()
	switch {
	case args.Len() == 0:
		return &UsageError{Reason: "missing input file"}
	case args.Len() > 2:
		return &UsageError{Reason: fmt.Sprintf("unexpected arguments: %v", args.Slice()[2:])}
	}

	input := args.Get(0)
	size, err := CacheSize(cmd)
	if err != nil {
		return err
	}

	opts := driver.Options{CacheSize: size}
	if cmd.Bool("keep-going") {
		opts.Policy = driver.KeepGoing
	}

	report, err := driver.ConvertFile(input, opts)

	if format := cmd.String("stats"); format != "" && (err == nil || report.Lines > 0) {
		if serr := output.Emit(cmd.Writer, format, report, m.Color); serr != nil {
			log.WithError(serr).Error("failed to emit stats")
		}
	}

	return err
}

// CacheSize returns the positional cache_size argument when present and the
// --cache-size value otherwise. Both must be positive.
func CacheSize(cmd *cli.Command) (int, error) {
	if s := cmd.Args().Get(1); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("invalid cache size %q: must be a positive integer", s)
		}
		if n <= 0 {
			return 0, fmt.Errorf("invalid cache size %q: %w", s, cache.ErrInvalidCapacity)
		}
		return n, nil
	}

	n := cmd.Int("cache-size")
	if n <= 0 {
		return 0, fmt.Errorf("invalid cache size %d: %w", n, cache.ErrInvalidCapacity)
	}
	return n, nil
}
