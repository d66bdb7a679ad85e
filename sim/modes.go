package sim

import (
	"fmt"
	"path/filepath"

	"github.com/milk9111/maidmodes/mode"
	"github.com/milk9111/maidmodes/modes"
	"github.com/milk9111/maidmodes/prefabs"
	"github.com/milk9111/maidmodes/script"
	"github.com/sirupsen/logrus"
)

// loadedMode remembers where a registered descriptor came from so a file
// change can rebuild it.
type loadedMode struct {
	file   string
	script string
}

// BuildMode turns one mode prefab into a descriptor. Built-in names get the
// compiled-in hooks with the prefab laid over them; anything else must name
// a script.
func BuildMode(file string, log logrus.FieldLogger) (*mode.Descriptor, prefabs.ModeSpec, error) {
	spec, err := prefabs.LoadModeSpec(file)
	if err != nil {
		return nil, spec, err
	}
	if spec.Scripted() {
		d, err := buildScripted(spec, log)
		return d, spec, err
	}

	var d *mode.Descriptor
	switch spec.Name {
	case modes.BasicName:
		d = modes.NewBasic()
	case modes.FencerName:
		d = modes.NewFencer()
	case modes.TorcherName:
		d = modes.NewTorcher(spec.TintColor())
	case modes.CookName:
		d = modes.NewCook()
	default:
		return nil, spec, fmt.Errorf("sim: %s: %q is not a built-in mode and names no script", file, spec.Name)
	}
	if err := spec.Apply(d); err != nil {
		return nil, spec, err
	}
	return d, spec, nil
}

func buildScripted(spec prefabs.ModeSpec, log logrus.FieldLogger) (*mode.Descriptor, error) {
	base, err := spec.Base()
	if err != nil {
		return nil, err
	}
	src, err := prefabs.LoadScript(spec.Script)
	if err != nil {
		return nil, fmt.Errorf("sim: mode %s: load script %s: %w", spec.Name, spec.Script, err)
	}
	prog, err := script.Compile(spec.Script, src)
	if err != nil {
		return nil, fmt.Errorf("sim: mode %s: %w", spec.Name, err)
	}
	return script.NewDescriptor(base, prog, log)
}

// BuildRegistry registers every mode file. The basic mode is added when no
// file provides it, since it owns the fallback entries.
func BuildRegistry(files []string, log logrus.FieldLogger) (*mode.Registry, map[string]loadedMode, error) {
	reg := mode.NewRegistry()
	sources := make(map[string]loadedMode, len(files))
	var descs []*mode.Descriptor
	haveBasic := false
	for _, f := range files {
		d, spec, err := BuildMode(f, log)
		if err != nil {
			return nil, nil, err
		}
		if d.Name == modes.BasicName {
			haveBasic = true
		}
		descs = append(descs, d)
		sources[d.Name] = loadedMode{file: f, script: scriptBase(spec.Script)}
	}
	if !haveBasic {
		descs = append([]*mode.Descriptor{modes.NewBasic()}, descs...)
	}
	if err := modes.Register(reg, descs...); err != nil {
		return nil, nil, err
	}
	return reg, sources, nil
}

func scriptBase(name string) string {
	if name == "" {
		return ""
	}
	return filepath.Base(filepath.ToSlash(name))
}
