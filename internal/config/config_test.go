// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestConfig sets MATX_CFG to point to a test config file.
// Returns cleanup function that should be deferred.
func setupTestConfig(t *testing.T, testdataFile string) (cleanup func()) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testdataFile))
	require.NoError(t, err, "failed to get absolute path for test config")

	t.Setenv("MATX_CFG", absPath)

	// Reset the global Config to force reload
	Config = Type{}

	return func() {
		Config = Type{}
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "simple values",
			testFile: "simple.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Equal(t, 250, cfg.Data["cache_size"])
				assert.Equal(t, "text", cfg.Data["stats"])
			},
		},
		{
			name:     "nested structure",
			testFile: "nested.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				profiles, ok := cfg.Data["profiles"].(map[string]interface{})
				require.True(t, ok, "profiles should be a map")
				big, ok := profiles["big"].(map[string]interface{})
				require.True(t, ok, "big should be a map")
				assert.Equal(t, 50000, big["cache_size"])
			},
		},
		{
			name:     "empty file",
			testFile: "empty.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source, "should have a source path")
				assert.Empty(t, cfg.Data)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestConfig(t, tt.testFile)
			defer cleanup()

			cfg, err := Load()
			require.NoError(t, err)
			tt.checkFunc(t, cfg)
		})
	}
}

func TestLoad_ExplicitPath(t *testing.T) {
	t.Setenv("MATX_CFG", "")
	Config = Type{}
	defer func() { Config = Type{} }()

	cfg, err := Load(filepath.Join("testdata", "simple.yaml"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("testdata", "simple.yaml"), cfg.Source)
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("MATX_CFG", "/nonexistent/path/matx.yaml")
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_MATX_CFG_IsDirectory(t *testing.T) {
	t.Setenv("MATX_CFG", "testdata")
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "points to a directory")
}

func TestLoad_StandardLocation(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("cache_size: 7\n"), 0o600))

	t.Setenv("MATX_CFG", "")
	t.Setenv("XDG_CONFIG_HOME", dir)
	Config = Type{}
	defer func() { Config = Type{} }()

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), cfg.Source)
	assert.Equal(t, 7, cfg.Data["cache_size"])
}

func TestLoad_Malformed(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(p, []byte("a: [unterminated\n"), 0o600))
	t.Setenv("MATX_CFG", p)
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestGetString(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		key          string
		defaultValue []string
		want         string
		wantErr      bool
	}{
		{name: "simple string value", testFile: "simple.yaml", key: "stats", want: "text"},
		{name: "nested string value", testFile: "nested.yaml", key: "profiles.big.stats", want: "json"},
		{name: "missing key with default", testFile: "simple.yaml", key: "missing", defaultValue: []string{"dflt"}, want: "dflt"},
		{name: "missing key without default", testFile: "simple.yaml", key: "missing", wantErr: true},
		{name: "non-string value", testFile: "simple.yaml", key: "cache_size", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestConfig(t, tt.testFile)
			defer cleanup()

			_, _ = Load()

			got, err := GetString(tt.key, tt.defaultValue...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		key          string
		defaultValue []int
		want         int
		wantErr      bool
	}{
		{name: "int value", testFile: "simple.yaml", key: "cache_size", want: 250},
		{name: "float value converted to int", testFile: "mixed-types.yaml", key: "ratio", want: 30},
		{name: "nested int value", testFile: "nested.yaml", key: "profiles.small.cache_size", want: 16},
		{name: "missing key with default", testFile: "simple.yaml", key: "missing", defaultValue: []int{60}, want: 60},
		{name: "missing key without default", testFile: "simple.yaml", key: "missing", wantErr: true},
		{name: "non-int value", testFile: "simple.yaml", key: "stats", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestConfig(t, tt.testFile)
			defer cleanup()

			_, _ = Load()

			got, err := GetInt(tt.key, tt.defaultValue...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetBool(t *testing.T) {
	cleanup := setupTestConfig(t, "nested.yaml")
	defer cleanup()

	v, err := GetBool("keep_going")
	assert.NoError(t, err)
	assert.True(t, v)

	v, err = GetBool("missing", true)
	assert.NoError(t, err)
	assert.True(t, v)

	_, err = GetBool("cache_size")
	assert.Error(t, err)
}

func TestConfig_GetWithNamespace(t *testing.T) {
	cleanup := setupTestConfig(t, "nested.yaml")
	defer cleanup()

	_, err := Load()
	require.NoError(t, err)

	Config.Namespace = "profiles.big"
	val, err := Config.get("cache_size")
	assert.NoError(t, err)
	assert.Equal(t, 50000, val)

	// Falls back to the top level when the namespace lacks the key.
	val, err = Config.get("keep_going")
	assert.NoError(t, err)
	assert.Equal(t, true, val)

	Config.Namespace = "profiles.small"
	val, err = Config.get("cache_size")
	assert.NoError(t, err)
	assert.Equal(t, 16, val)
}

func TestSetNamespace_SurvivesReload(t *testing.T) {
	cleanup := setupTestConfig(t, "nested.yaml")
	defer cleanup()

	SetNamespace("profiles.big")
	_, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "profiles.big", Config.Namespace)

	n, err := GetInt("cache_size")
	assert.NoError(t, err)
	assert.Equal(t, 50000, n)

	s, err := GetString("stats")
	assert.NoError(t, err)
	assert.Equal(t, "json", s)

	SetNamespace("")
	n, err = GetInt("cache_size")
	assert.NoError(t, err)
	assert.Equal(t, 1000, n)
}

func TestConfig_LazyLoad(t *testing.T) {
	cleanup := setupTestConfig(t, "simple.yaml")
	defer cleanup()

	val, err := GetString("stats")
	assert.NoError(t, err)
	assert.Equal(t, "text", val)
	assert.NotEmpty(t, Config.Source, "Config should be loaded")
}
