package shortcuts

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"keyhint/log"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMissingDir(t *testing.T) {
	set := Load(filepath.Join(t.TempDir(), "nope"))
	want := Set{DefaultApp: {}}
	if !reflect.DeepEqual(set, want) {
		t.Errorf("got %#v, want %#v", set, want)
	}
}

func TestLoadNoValidFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.json", `{"Notepad": [`)
	writeFile(t, dir, "shape.json", `[1, 2, 3]`)
	writeFile(t, dir, "null.json", `null`)
	writeFile(t, dir, "notes.txt", `{"Notepad": []}`)
	if err := os.Mkdir(filepath.Join(dir, "nested.json"), 0755); err != nil {
		t.Fatal(err)
	}

	set := Load(dir)
	if len(set) != 1 {
		t.Fatalf("got keys %v, want only default", set.Apps())
	}
	if got := set[DefaultApp]; got == nil || len(got) != 0 {
		t.Errorf("default = %#v, want empty non-nil list", got)
	}
}

func TestLoadScenario(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "apps.json", `{"default": [], "Notepad": [{"keys": ["Ctrl","+","S"], "action": "Save"}]}`)

	set := Load(dir)
	want := []Entry{{Keys: []string{"Ctrl", "+", "S"}, Action: "Save"}}
	if got := set.Lookup("Notepad"); !reflect.DeepEqual(got, want) {
		t.Errorf("Notepad = %#v, want %#v", got, want)
	}
	if got := set.Lookup("UnknownApp"); len(got) != 0 {
		t.Errorf("UnknownApp = %#v, want empty default", got)
	}
}

func TestLoadLastFileWins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.json", `{"Editor": [{"keys": ["Ctrl","+","A"], "action": "first"}], "Only": []}`)
	writeFile(t, dir, "b.json", `{"Editor": [{"keys": ["Ctrl","+","B"], "action": "second"}]}`)

	set := Load(dir)
	got := set.Lookup("Editor")
	if len(got) != 1 || got[0].Action != "second" {
		t.Errorf("Editor = %#v, want entries from b.json", got)
	}
	if _, ok := set["Only"]; !ok {
		t.Error("keys unique to a.json should survive the merge")
	}
}

func TestLoadSkipsMalformedAndContinues(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "1-good.json", `{"Term": [{"keys": ["Ctrl","+","T"], "action": "New tab"}]}`)
	writeFile(t, dir, "2-bad.json", `{"Term": oops}`)
	writeFile(t, dir, "3-good.json", `{"default": [{"keys": ["F1"], "action": "Help"}]}`)

	var warnings bytes.Buffer
	log.SetDir(t.TempDir())
	log.SetConsole(&warnings)
	if err := log.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { log.Close(); log.SetConsole(nil); log.SetDir("") })

	set := Load(dir)
	if out := warnings.String(); !strings.Contains(out, "WRN") || !strings.Contains(out, "2-bad.json") {
		t.Errorf("expected a warning naming 2-bad.json, got %q", out)
	}
	if strings.Contains(warnings.String(), "1-good.json") {
		t.Errorf("good file should not be warned about: %q", warnings.String())
	}
	if got := set.Lookup("Term"); len(got) != 1 || got[0].Action != "New tab" {
		t.Errorf("Term = %#v", got)
	}
	if got := set.Lookup("missing"); len(got) != 1 || got[0].Action != "Help" {
		t.Errorf("default = %#v", got)
	}
}

func TestLoadMixedFormats(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.json", `{"Browser": [{"keys": ["Ctrl","+","T"], "action": "json"}]}`)
	writeFile(t, dir, "b.yaml", `
Browser:
  - keys: ["Ctrl", "+", "W"]
    action: yaml
Shell:
  - keys: ["Ctrl", "+", "R"]
    action: History search
`)
	writeFile(t, dir, "c.toml", `
[[Editor]]
keys = ["Ctrl", "+", "P"]
action = "Quick open"

[[Editor]]
keys = ["F2"]
action = "Rename"
`)

	set := Load(dir)
	if got := set.Lookup("Browser"); len(got) != 1 || got[0].Action != "yaml" {
		t.Errorf("Browser = %#v, want yaml entry", got)
	}
	if got := set.Lookup("Shell"); len(got) != 1 || got[0].Keys[2] != "R" {
		t.Errorf("Shell = %#v", got)
	}
	want := []Entry{
		{Keys: []string{"Ctrl", "+", "P"}, Action: "Quick open"},
		{Keys: []string{"F2"}, Action: "Rename"},
	}
	if got := set.Lookup("Editor"); !reflect.DeepEqual(got, want) {
		t.Errorf("Editor = %#v, want %#v", got, want)
	}
}

func TestLookup(t *testing.T) {
	save := []Entry{{Keys: []string{"Ctrl", "+", "S"}, Action: "Save"}}
	help := []Entry{{Keys: []string{"F1"}, Action: "Help"}}
	set := Set{DefaultApp: help, "Notepad": save}

	tests := []struct {
		app  string
		want []Entry
	}{
		{"Notepad", save},
		{"notepad", help},
		{"", help},
		{DefaultApp, help},
	}
	for _, tt := range tests {
		if got := Lookup(set, tt.app); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Lookup(%q) = %#v, want %#v", tt.app, got, tt.want)
		}
	}
}

func TestApps(t *testing.T) {
	set := Set{"b": nil, DefaultApp: nil, "a": nil}
	want := []string{"a", "b", DefaultApp}
	if got := set.Apps(); !reflect.DeepEqual(got, want) {
		t.Errorf("Apps() = %v, want %v", got, want)
	}
}
