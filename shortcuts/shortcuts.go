// Package shortcuts loads per-application shortcut hints from a directory of
// configuration documents.
package shortcuts

import (
	"os"
	"path/filepath"
	"sort"

	"keyhint/log"
)

// DefaultApp is the fallback application identifier.
const DefaultApp = "default"

// Entry is one hint row: the keys to press and what they do.
type Entry struct {
	Keys   []string `json:"keys" yaml:"keys" toml:"keys"`
	Action string   `json:"action" yaml:"action" toml:"action"`
}

// Set maps an application identifier to its hints. It always holds DefaultApp
// and is not modified after Load returns.
type Set map[string][]Entry

// Load merges every supported document in dir. Files are visited in name
// order and later files replace earlier ones key by key. Unreadable or
// malformed files are skipped with a warning. A missing directory yields a
// set holding only an empty default list.
func Load(dir string) Set {
	set := Set{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Warnf("shortcuts folder %q not readable (%v); create it and add shortcut files", dir, err)
		set[DefaultApp] = []Entry{}
		return set
	}

	var files, skipped int
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		dec := decoderFor(e.Name())
		if dec == nil {
			continue
		}
		files++

		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warnf("reading shortcuts file %s: %v", path, err)
			skipped++
			continue
		}
		doc, err := dec(data)
		if err != nil {
			log.Warnf("decoding shortcuts file %s: %v", path, err)
			skipped++
			continue
		}
		for app, list := range doc {
			set[app] = list
		}
	}

	if set[DefaultApp] == nil {
		set[DefaultApp] = []Entry{}
	}
	log.ShortcutsLoaded(dir, len(set), files, skipped)
	return set
}

// Lookup returns the hints for app, or the default hints when app is unknown.
func Lookup(set Set, app string) []Entry {
	return set.Lookup(app)
}

func (s Set) Lookup(app string) []Entry {
	if list, ok := s[app]; ok {
		return list
	}
	return s[DefaultApp]
}

// Apps returns the application identifiers in sorted order.
func (s Set) Apps() []string {
	apps := make([]string, 0, len(s))
	for app := range s {
		apps = append(apps, app)
	}
	sort.Strings(apps)
	return apps
}
