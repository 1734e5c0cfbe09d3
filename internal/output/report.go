// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v2"

	"github.com/staranto/matx/internal/config"
	"github.com/staranto/matx/internal/driver"
)

// Formats lists the accepted values for Emit's format argument.
var Formats = []string{"text", "json", "yaml"}

// Emit writes r to w in the given format. An empty format means text.
func Emit(w io.Writer, format string, r driver.Report, color bool) error {
	switch format {
	case "json":
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		b, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = w.Write(b)
		return err
	case "", "text":
		return TableWriter(w, r, color)
	}
	return fmt.Errorf("unknown stats format %q, must be one of %v", format, Formats)
}

// TableWriter renders r as a two column table. The rows are taken from the
// JSON form of the report so that the table and the json output always list
// the same fields.
func TableWriter(w io.Writer, r driver.Report, color bool) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	rows := Flatten("", gjson.ParseBytes(raw))
	if lookups := r.Cache.Hits + r.Cache.Misses; lookups > 0 {
		ratio := float64(r.Cache.Hits) / float64(lookups) * 100
		rows = append(rows, []string{"cache.hit_ratio", fmt.Sprintf("%.1f%%", ratio)})
	}
	for _, f := range r.Failures {
		rows = append(rows, []string{"failure", f.Error()})
	}

	padding, _ := config.GetInt("padding", 2)

	headerStyle := lipgloss.NewStyle().Align(lipgloss.Left)
	cellStyle := lipgloss.NewStyle().Align(lipgloss.Left)
	if color {
		headerStyle = headerStyle.Foreground(lipgloss.Color("#f6be00"))
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := cellStyle
			if row == table.HeaderRow {
				style = headerStyle
			}
			if col > 0 {
				style = style.PaddingLeft(padding)
			}
			return style
		}).
		Headers("STAT", "VALUE").
		BorderHeader(false).
		Rows(rows...)

	_, err = fmt.Fprintln(w, t)
	return err
}

// Flatten walks a JSON object and returns one [key, value] row per scalar,
// joining nested keys with '.'. Arrays are skipped.
func Flatten(prefix string, obj gjson.Result) [][]string {
	var rows [][]string
	obj.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if prefix != "" {
			name = prefix + "." + name
		}

		switch {
		case value.IsObject():
			rows = append(rows, Flatten(name, value)...)
		case value.IsArray():
			log.Debugf("flatten: skipping array %s", name)
		default:
			rows = append(rows, []string{name, humanizeValue(name, value)})
		}
		return true
	})
	return rows
}

func humanizeValue(name string, v gjson.Result) string {
	if v.Type != gjson.Number {
		return v.String()
	}
	switch {
	case strings.HasSuffix(name, "bytes_in"), strings.HasSuffix(name, "bytes_out"):
		return humanize.Bytes(v.Uint())
	case strings.HasSuffix(name, "_ms"):
		return fmt.Sprintf("%sms", humanize.Comma(v.Int()))
	}
	return humanize.Comma(v.Int())
}
