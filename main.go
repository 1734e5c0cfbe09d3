// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/staranto/matx/internal/command"
	mylog "github.com/staranto/matx/internal/log"
	"github.com/staranto/matx/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain(os.Args, os.Stdout, os.Stderr))
}

// realMain runs matx and returns the process exit code: 0 on success, 1 for a
// usage error, 2 for any other failure.
func realMain(args []string, stdout, stderr io.Writer) int {
	mylog.InitLogger()

	// Short-circuit --version/-v. Anything after "--" is an argument.
	for _, a := range args[1:] {
		if a == "--" {
			break
		}
		if a == "--version" || a == "-v" {
			fmt.Fprintln(stdout, version.Version)
			return 0
		}
	}

	app, err := command.InitApp(ctx, args, stdout, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(stderr, err)
		var usage *command.UsageError
		if errors.As(err, &usage) {
			return 1
		}
		return 2
	}

	return 0
}
