package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings is the application-level key-value store, loaded once from a YAML
// file at process start. String scalars of the form ${ENV_VAR:default} are
// substituted from the environment during load. Read-only afterwards; there
// is no hot reload.
type Settings struct {
	values map[string]any
}

var envPattern = regexp.MustCompile(`^\$\{([^:}]+):([^}]*)\}$`)

// LoadSettings reads and resolves the settings file. A missing file yields
// an empty store so deployments without one still boot.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Settings{values: map[string]any{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}

	values := map[string]any{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decode settings %s: %w", path, err)
	}

	return &Settings{values: resolveEnv(values).(map[string]any)}, nil
}

func resolveEnv(v any) any {
	switch node := v.(type) {
	case map[string]any:
		for k, child := range node {
			node[k] = resolveEnv(child)
		}
		return node
	case []any:
		for i, child := range node {
			node[i] = resolveEnv(child)
		}
		return node
	case string:
		if m := envPattern.FindStringSubmatch(node); m != nil {
			if env, ok := os.LookupEnv(m[1]); ok {
				return env
			}
			return m[2]
		}
		return node
	default:
		return node
	}
}

// Get resolves a dotted path ("data.required_columns"). Returns nil when any
// segment is missing.
func (s *Settings) Get(key string) any {
	var current any = s.values
	for _, part := range strings.Split(key, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = node[part]
		if !ok {
			return nil
		}
	}
	return current
}

func (s *Settings) GetString(key, def string) string {
	if v, ok := s.Get(key).(string); ok {
		return v
	}
	return def
}

// GetStrings returns a string list setting; non-string elements are skipped.
func (s *Settings) GetStrings(key string) []string {
	list, ok := s.Get(key).([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		if str, ok := v.(string); ok {
			out = append(out, str)
		}
	}
	return out
}
