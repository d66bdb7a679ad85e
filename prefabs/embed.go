package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// Dir holds operator copies of mode specs and behaviour scripts. A file
// there shadows the built-in one of the same name, which is what lets a
// running host pick up an edited mode without a rebuild.
var Dir = "prefabs"

// SpecsFS carries the built-in mode specs and scenarios.
//
//go:embed *.yaml
var SpecsFS embed.FS

// ScriptsFS carries the built-in tengo behaviour scripts.
//
//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Load returns a mode spec or scenario by file name.
func Load(name string) ([]byte, error) {
	return readShadowed(SpecsFS, specPath(name))
}

// LoadScript returns the source of a scripted mode. Names may be given
// with or without the scripts/ prefix.
func LoadScript(name string) ([]byte, error) {
	return readShadowed(ScriptsFS, scriptPath(name))
}

// ModTime reports when the operator copy of a spec last changed. Built-in
// specs have none.
func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(onDisk(specPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// Basename maps a changed file reported by the Watcher back to the name
// Load or LoadScript expects.
func Basename(p string) string {
	s := filepath.ToSlash(p)
	if i := strings.LastIndex(s, "/scripts/"); i >= 0 {
		return "scripts/" + s[i+len("/scripts/"):]
	}
	return path.Base(s)
}

func readShadowed(fsys embed.FS, name string) ([]byte, error) {
	if data, err := os.ReadFile(onDisk(name)); err == nil {
		return data, nil
	}
	return fsys.ReadFile(name)
}

func specPath(name string) string {
	if name == "" {
		return ""
	}
	return strings.TrimPrefix(filepath.ToSlash(name), "prefabs/")
}

func scriptPath(name string) string {
	if name == "" {
		return ""
	}
	s := filepath.ToSlash(name)
	for _, prefix := range []string{"prefabs/", "scripts/"} {
		s = strings.TrimPrefix(s, prefix)
	}
	return "scripts/" + s
}

func onDisk(name string) string {
	return filepath.Join(Dir, filepath.FromSlash(name))
}
