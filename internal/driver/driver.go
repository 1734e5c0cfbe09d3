// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package driver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/apex/log"

	"github.com/staranto/matx/internal/transform"
)

// Suffix marks a file holding hexadecimal payloads.
const Suffix = ".x"

// DefaultCacheSize is the cache capacity used when none is configured.
const DefaultCacheSize = 1000

// Policy decides what happens to a line that fails to convert.
type Policy int

const (
	// Abort stops the run at the first failing line.
	Abort Policy = iota
	// KeepGoing skips failing lines and reports them all at the end.
	KeepGoing
)

// Options configure ConvertFile.
type Options struct {
	CacheSize int
	Policy    Policy
	// Transform options, mainly for instrumentation.
	TransformOptions []transform.Option
}

// Report summarizes a run.
type Report struct {
	Mode         transform.Mode  `json:"mode" yaml:"mode"`
	Input        string          `json:"input,omitempty" yaml:"input,omitempty"`
	Output       string          `json:"output,omitempty" yaml:"output,omitempty"`
	Lines        int             `json:"lines" yaml:"lines"`
	Written      int             `json:"written" yaml:"written"`
	Failed       int             `json:"failed" yaml:"failed"`
	BytesIn      int64           `json:"bytes_in" yaml:"bytes_in"`
	BytesOut     int64           `json:"bytes_out" yaml:"bytes_out"`
	Cache        transform.Stats `json:"cache" yaml:"cache"`
	ElapsedMilli int64           `json:"elapsed_ms" yaml:"elapsed_ms"`
	Failures     []*LineError    `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// ModeForPath returns the direction implied by the input name and the output
// path. A name ending in ".x" is decompressed into the name without it; any
// other name is compressed into name + ".x".
func ModeForPath(input string) (transform.Mode, string) {
	if strings.HasSuffix(input, Suffix) {
		return transform.Decompress, strings.TrimSuffix(input, Suffix)
	}
	return transform.Compress, input + Suffix
}

// ConvertFile converts input into the path derived by ModeForPath. The cache
// size is validated before any file is touched. The output is flushed and
// closed on every return path.
func ConvertFile(input string, opts Options) (report Report, err error) {
	start := time.Now()
	mode, output := ModeForPath(input)

	tr, err := transform.New(mode, opts.CacheSize, opts.TransformOptions...)
	if err != nil {
		return Report{Mode: mode, Input: input, Output: output}, err
	}

	log.Debugf("convert: %s -> %s (%s, cache=%d)", input, output, mode, opts.CacheSize)

	in, err := os.Open(input)
	if err != nil {
		return Report{Mode: mode, Input: input, Output: output}, fmt.Errorf("failed to open input file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(output)
	if err != nil {
		return Report{Mode: mode, Input: input, Output: output}, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	report, err = Stream(in, out, tr, opts.Policy)
	report.Input = input
	report.Output = output
	report.ElapsedMilli = time.Since(start).Milliseconds()

	log.WithFields(log.Fields{
		"lines":  report.Lines,
		"failed": report.Failed,
		"hits":   report.Cache.Hits,
	}).Infof("converted %s", input)

	return report, err
}

// Stream reads newline-delimited lines from r, converts each with tr in order
// and writes one line per converted input line to w. Whatever was converted is
// flushed to w even when Stream returns an error.
func Stream(r io.Reader, w io.Writer, tr *transform.Transformer, policy Policy) (report Report, err error) {
	report.Mode = tr.Mode()

	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)
	defer func() {
		if ferr := bw.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("failed to write output: %w", ferr)
		}
		report.Cache = tr.Stats()
	}()

	for {
		raw, rerr := br.ReadString('\n')
		if rerr != nil && !errors.Is(rerr, io.EOF) {
			return report, fmt.Errorf("failed to read input: %w", rerr)
		}
		if raw == "" && rerr != nil {
			break
		}

		report.Lines++
		report.BytesIn += int64(len(raw))
		line := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")

		converted, terr := tr.Transform(line)
		if terr != nil {
			le := &LineError{Line: report.Lines, Input: line, Err: terr}
			report.Failed++
			if policy == Abort {
				return report, le
			}
			log.WithError(terr).Warnf("skipping line %d", report.Lines)
			report.Failures = append(report.Failures, le)
		} else {
			n, werr := bw.WriteString(converted + "\n")
			report.BytesOut += int64(n)
			if werr != nil {
				return report, fmt.Errorf("failed to write output: %w", werr)
			}
			report.Written++
		}

		if rerr != nil {
			break
		}
	}

	if len(report.Failures) > 0 {
		return report, &BatchError{Lines: report.Lines, Failures: report.Failures}
	}
	return report, nil
}
