// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/matx/internal/driver"
)

// NewFlags returns the flags of the root command. Values not given on the
// command line come from the env, then profiles.<profile>.<key> and <key> in
// the config file at path, then the default.
func NewFlags(profile, path string) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "cache-size",
			Aliases: []string{"n"},
			Usage:   "number of distinct lines to memoize",
			Sources: configSources(profile, path, "MATX_CACHE_SIZE", "cache_size"),
			Value:   driver.DefaultCacheSize,
			Validator: func(value int) error {
				return FlagValidators(value, PositiveIntValidator)
			},
		},
		&cli.BoolFlag{
			Name:    "keep-going",
			Aliases: []string{"k"},
			Usage:   "skip malformed lines and report them at the end instead of aborting",
			Sources: configSources(profile, path, "MATX_KEEP_GOING", "keep_going"),
		},
		&cli.StringFlag{
			Name:    "profile",
			Aliases: []string{"p"},
			Usage:   "config file profile to read defaults from",
			Sources: cli.EnvVars("MATX_PROFILE"),
		},
		&cli.StringFlag{
			Name:    "stats",
			Aliases: []string{"s"},
			Usage:   "print a run summary (text, json or yaml)",
			Sources: configSources(profile, path, "MATX_STATS", "stats"),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator, StatsValidator)
			},
		},
		&cli.BoolFlag{
			Name:        "version",
			Aliases:     []string{"v"},
			Usage:       "matx version info",
			HideDefault: true,
		},
	}
}

func configSources(profile, path, env, key string) cli.ValueSourceChain {
	chain := cli.NewValueSourceChain(cli.EnvVar(env))
	if path == "" {
		return chain
	}
	if profile != "" {
		chain.Chain = append(chain.Chain, yaml.YAML("profiles."+profile+"."+key, altsrc.StringSourcer(path)))
	}
	chain.Chain = append(chain.Chain, yaml.YAML(key, altsrc.StringSourcer(path)))
	return chain
}

