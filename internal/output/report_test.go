// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v2"

	"github.com/staranto/matx/internal/cache"
	"github.com/staranto/matx/internal/config"
	"github.com/staranto/matx/internal/driver"
	"github.com/staranto/matx/internal/transform"
)

func sampleReport() driver.Report {
	return driver.Report{
		Mode:     transform.Compress,
		Input:    "mat.in",
		Output:   "mat.in.x",
		Lines:    1500,
		Written:  1499,
		Failed:   1,
		BytesIn:  2048000,
		BytesOut: 512000,
		Cache: transform.Stats{
			Stats:       cache.Stats{Capacity: 1000, Entries: 10, Hits: 1490, Misses: 10},
			Conversions: 10,
		},
		Failures: []*driver.LineError{
			{Line: 7, Input: "oops", Err: errors.New("boom")},
		},
	}
}

func TestEmit_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Emit(&buf, "json", sampleReport(), false))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "compress", got["mode"])
	assert.Equal(t, 1500.0, got["lines"])

	c, ok := got["cache"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 1490.0, c["hits"])
	assert.Equal(t, 10.0, c["conversions"])
}

func TestEmit_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Emit(&buf, "yaml", sampleReport(), false))

	var got map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "compress", got["mode"])
	assert.Equal(t, 1499, got["written"])

	c, ok := got["cache"].(map[interface{}]interface{})
	require.True(t, ok)
	assert.Equal(t, 1000, c["capacity"])
	assert.Equal(t, 10, c["misses"])
}

func TestEmit_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Emit(&buf, "text", sampleReport(), false))

	out := buf.String()
	assert.Contains(t, out, "STAT")
	assert.Contains(t, out, "cache.hits")
	assert.Contains(t, out, "1,490")
	assert.Contains(t, out, "2.0 MB")
	assert.Contains(t, out, "99.3%")
	assert.Contains(t, out, "line 7: boom")
}

func TestTableWriter_PaddingFromConfig(t *testing.T) {
	valueColumn := func(padding string) int {
		t.Helper()
		p := filepath.Join(t.TempDir(), "matx.yaml")
		require.NoError(t, os.WriteFile(p, []byte(padding), 0o600))
		t.Setenv("MATX_CFG", p)
		config.Config = config.Type{}
		t.Cleanup(func() { config.Config = config.Type{} })

		var buf bytes.Buffer
		require.NoError(t, TableWriter(&buf, sampleReport(), false))
		for _, line := range strings.Split(buf.String(), "\n") {
			if strings.Contains(line, "STAT") {
				return strings.Index(line, "VALUE")
			}
		}
		t.Fatal("no header row")
		return 0
	}

	tight := valueColumn("padding: 0\n")
	wide := valueColumn("padding: 6\n")
	dflt := valueColumn("stats: text\n")
	assert.Equal(t, 6, wide-tight)
	assert.Equal(t, 2, dflt-tight)
}

func TestEmit_UnknownFormat(t *testing.T) {
	err := Emit(&bytes.Buffer{}, "xml", sampleReport(), false)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown stats format")
}

func TestFlatten(t *testing.T) {
	doc := gjson.Parse(`{"a":1,"b":{"c":"x","d":{"e":2500}},"arr":[1,2],"bytes_in":1024}`)
	rows := Flatten("", doc)

	assert.Equal(t, [][]string{
		{"a", "1"},
		{"b.c", "x"},
		{"b.d.e", "2,500"},
		{"bytes_in", "1.0 kB"},
	}, rows)
}
