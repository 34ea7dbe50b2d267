package shortcuts

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.yaml.in/yaml/v3"
)

type decodeFunc func([]byte) (map[string][]Entry, error)

var errEmptyDocument = errors.New("empty document")

func decoderFor(name string) decodeFunc {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return decodeJSON
	case ".yaml", ".yml":
		return decodeYAML
	case ".toml":
		return decodeTOML
	}
	return nil
}

func decodeJSON(data []byte) (map[string][]Entry, error) {
	var doc map[string][]Entry
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errEmptyDocument
	}
	return doc, nil
}

func decodeYAML(data []byte) (map[string][]Entry, error) {
	var doc map[string][]Entry
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errEmptyDocument
	}
	return doc, nil
}

// TOML has no top-level arrays of tables without a key, so documents use
// [[App]] blocks:
//
//	[[Notepad]]
//	keys = ["Ctrl", "+", "S"]
//	action = "Save"
func decodeTOML(data []byte) (map[string][]Entry, error) {
	var doc map[string][]Entry
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errEmptyDocument
	}
	return doc, nil
}
