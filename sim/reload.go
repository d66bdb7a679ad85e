package sim

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/ecs/component"
	"github.com/milk9111/maidmodes/prefabs"
)

func (s *Sim) drainReloads() {
	if s.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if err := s.Reload(path); err != nil {
				s.log.WithError(err).WithField("file", path).Error("reload failed")
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.log.WithError(err).Warn("watcher")
		default:
			return
		}
	}
}

// Reload rebuilds every mode sourced from the changed file and rebinds it
// on each maid. Saved mode state carries over.
func (s *Sim) Reload(path string) error {
	name := prefabs.Basename(path)
	isScript := strings.EqualFold(filepath.Ext(name), ".tengo")
	base := filepath.Base(name)

	var files []string
	for _, src := range s.sources {
		if (isScript && src.script == base) || (!isScript && src.file == name) {
			files = append(files, src.file)
		}
	}
	for _, f := range files {
		if err := s.reloadMode(f); err != nil {
			return err
		}
	}
	return nil
}

func (s *Sim) reloadMode(file string) error {
	d, spec, err := BuildMode(file, s.log)
	if err != nil {
		return err
	}
	if err := s.reg.Replace(d); err != nil {
		return fmt.Errorf("sim: reload %s: %w", file, err)
	}
	s.sources[d.Name] = loadedMode{file: file, script: scriptBase(spec.Script)}

	var errs []error
	rebound := 0
	ecs.ForEach(s.world, component.AIComponent.Kind(), func(e ecs.Entity, ai *component.AI) {
		if ai.Controller == nil {
			return
		}
		if err := ai.Controller.Rebind(d); err != nil {
			errs = append(errs, fmt.Errorf("entity %s: %w", e, err))
			return
		}
		rebound++
	})
	s.log.WithField("mode", d.Name).WithField("entities", rebound).Info("reloaded")
	if len(errs) > 0 {
		return fmt.Errorf("sim: reload %s: %w", file, errors.Join(errs...))
	}
	return nil
}
