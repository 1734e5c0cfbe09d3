// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the standard locations.
const FileName = "matx.yaml"

// Type is a loaded matx.yaml. When Namespace is set, keys are first looked up
// below it (for example "profiles.big") and then at the top level.
type Type struct {
	Source    string
	Namespace string
	Data      map[string]interface{}
}

var Config Type

func init() {
	_, _ = Load()
}

// Load reads the config file into Config. An explicit path may be given;
// otherwise MATX_CFG and then the standard locations are consulted. The
// current Namespace survives a reload.
func Load(cfgFilePath ...string) (Type, error) {
	path := ""
	if len(cfgFilePath) > 0 {
		path = cfgFilePath[0]
	}
	if path == "" {
		var err error
		if path, err = getConfigPath(); err != nil {
			return Type{}, err
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Type{}, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return Type{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	Config = Type{Source: path, Namespace: Config.Namespace, Data: data}
	return Config, nil
}

// SetNamespace scopes later lookups to ns, falling back to the top level.
func SetNamespace(ns string) {
	Config.Namespace = ns
	log.Debugf("config namespace: %q", ns)
}

// get resolves a dotted key, trying the namespaced key first.
func (cfg *Type) get(key string) (any, error) {
	if len(cfg.Data) == 0 {
		_, _ = Load(cfg.Source)
	}

	keys := []string{key}
	if cfg.Namespace != "" {
		keys = []string{cfg.Namespace + "." + key, key}
	}

	for _, k := range keys {
		if v, ok := walk(cfg.Data, strings.Split(k, ".")); ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("no valid path found among: %v", keys)
}

func walk(node any, path []string) (any, bool) {
	for _, p := range path {
		m, ok := node.(map[string]interface{})
		if !ok {
			return nil, false
		}
		if node, ok = m[p]; !ok {
			return nil, false
		}
	}
	return node, true
}

// lookup fetches key from Config and converts it with conv. A missing key
// yields the default when one is given.
func lookup[T any](key string, conv func(any) (T, bool), what string, defaultValue []T) (T, error) {
	var zero T
	if len(Config.Data) == 0 {
		_, _ = Load()
	}

	val, err := Config.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return zero, err
	}

	v, ok := conv(val)
	if !ok {
		return zero, fmt.Errorf("value at %q is not %s", key, what)
	}
	return v, nil
}

func GetString(key string, defaultValue ...string) (string, error) {
	return lookup(key, func(v any) (string, bool) {
		s, ok := v.(string)
		return s, ok
	}, "a string", defaultValue)
}

// GetInt accepts YAML ints and truncates floats.
func GetInt(key string, defaultValue ...int) (int, error) {
	return lookup(key, func(v any) (int, bool) {
		switch n := v.(type) {
		case int:
			return n, true
		case int64:
			return int(n), true
		case float64:
			return int(n), true
		}
		return 0, false
	}, "an int", defaultValue)
}

func GetBool(key string, defaultValue ...bool) (bool, error) {
	return lookup(key, func(v any) (bool, bool) {
		b, ok := v.(bool)
		return b, ok
	}, "a bool", defaultValue)
}

func getConfigPath() (string, error) {
	if p := os.Getenv("MATX_CFG"); p != "" {
		info, err := os.Stat(p)
		switch {
		case err != nil:
			return "", fmt.Errorf("config file not found: %s", p)
		case info.IsDir():
			return "", fmt.Errorf("MATX_CFG points to a directory: %s", p)
		}
		return p, nil
	}

	for _, dir := range []string{
		os.Getenv("XDG_CONFIG_HOME"),
		os.Getenv("APPDATA"),
		os.Getenv("HOME"),
	} {
		if dir == "" {
			continue
		}
		file := filepath.Join(dir, FileName)
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			log.Debugf("using config file: %s", file)
			return file, nil
		}
	}
	return "", fmt.Errorf("no config file found in standard locations")
}
