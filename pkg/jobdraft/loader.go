package jobdraft

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a draft from the given file path.
//
// The file format is determined by extension: .yaml/.yml for YAML, .json
// for JSON. An unrecognized extension tries YAML first, then JSON. After
// parsing, defaults are applied and the draft is validated.
func Load(path string) (*Draft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("draft file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read draft file: %w", err)
	}
	return LoadFromBytes(data, path)
}

// LoadFromBytes parses and validates a draft from raw bytes. The path
// parameter is used for format detection and error messages only.
func LoadFromBytes(data []byte, path string) (*Draft, error) {
	if len(data) == 0 {
		return nil, errors.New("draft file is empty")
	}

	draft, err := parseDraft(data, path)
	if err != nil {
		return nil, err
	}

	draft.ApplyDefaults()

	if err := draft.Validate(); err != nil {
		return nil, err
	}
	return draft, nil
}

// LoadFromReader reads and validates a draft from an io.Reader.
func LoadFromReader(r io.Reader, path string) (*Draft, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read draft: %w", err)
	}
	return LoadFromBytes(data, path)
}

func parseDraft(data []byte, path string) (*Draft, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return parseJSON(data)
	case ".yaml", ".yml":
		return parseYAML(data)
	default:
		// Unknown extension: YAML first (more permissive), then JSON.
		draft, yamlErr := parseYAML(data)
		if yamlErr == nil {
			return draft, nil
		}
		if draft, jsonErr := parseJSON(data); jsonErr == nil {
			return draft, nil
		}
		return nil, fmt.Errorf("failed to parse draft (tried YAML and JSON): %w", yamlErr)
	}
}

func parseYAML(data []byte) (*Draft, error) {
	var draft Draft
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&draft); err != nil {
		return nil, fmt.Errorf("invalid YAML draft: %w", err)
	}
	return &draft, nil
}

func parseJSON(data []byte) (*Draft, error) {
	var draft Draft
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&draft); err != nil {
		return nil, fmt.Errorf("invalid JSON draft: %w", err)
	}
	return &draft, nil
}
