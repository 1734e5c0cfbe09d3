// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/staranto/matx/internal/config"
	"github.com/staranto/matx/internal/meta"
)

// UsageText is printed when the input file argument is missing.
const UsageText = "matx <input_file> [cache_size]"

// InitApp builds the root command. Help and stats go to stdout, diagnostics
// to stderr.
func InitApp(ctx context.Context, args []string, stdout, stderr io.Writer) (*cli.Command, error) {
	sd, _ := os.Getwd()

	profile := profileFromArgs(args)
	cfg, _ := config.Load()
	config.SetNamespace(profileNamespace(profile))

	m := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		Profile:     profile,
		StartingDir: sd,
		Color:       colorEnabled(stdout, stderr),
	}

	app := &cli.Command{
		Name:      "matx",
		Usage:     "recode matrix rows between binary and hexadecimal payloads",
		UsageText: UsageText,
		ArgsUsage: "<input_file> [cache_size]",
		Description: `A file ending in .x holds hexadecimal payloads and is expanded into the
same name without the suffix. Any other file holds binary payloads and is
compressed into the name with .x appended. Each line is "dimensions:payload";
the dimensions token is copied unchanged.`,
		Writer:    stdout,
		ErrWriter: stderr,
		Metadata: map[string]any{
			"meta": m,
		},
		Flags:  NewFlags(profile, cfg.Source),
		Action: ConvertCommandAction,
	}

	return app, nil
}

// profileNamespace is where a profile's keys live in matx.yaml.
func profileNamespace(profile string) string {
	if profile == "" {
		return ""
	}
	return "profiles." + profile
}

// profileFromArgs finds the --profile/-p value ahead of flag parsing so that
// config file sources can be namespaced before the flags are built.
func profileFromArgs(args []string) string {
	for i := 1; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			return os.Getenv("MATX_PROFILE")
		case a == "--profile" || a == "-p":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(a, "--profile="):
			return strings.TrimPrefix(a, "--profile=")
		case strings.HasPrefix(a, "-p="):
			return strings.TrimPrefix(a, "-p=")
		}
	}
	return os.Getenv("MATX_PROFILE")
}

// colorEnabled honors the "color" config key and otherwise colors only when
// both streams are terminals.
func colorEnabled(stdout, stderr io.Writer) bool {
	color, _ := config.GetBool("color", isTerminal(stdout) && isTerminal(stderr))
	return color
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
