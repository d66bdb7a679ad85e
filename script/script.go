// Package script builds maid modes from tengo scripts. Each top-level
// function named after a hook is bound to that hook; everything else
// keeps the neutral default.
package script

import (
	"errors"
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/maidmodes/mode"
	"github.com/sirupsen/logrus"
)

// Hook function names a script may define, with the number of arguments
// each receives after (engine, state).
var hookArity = map[string]int{
	"init_entity":      0,
	"on_update":        1,
	"update_ai_tick":   1,
	"change_mode":      0,
	"set_mode":         1,
	"should_block":     1,
	"check_block":      4,
	"overlooks_block":  1,
	"execute_block":    4,
	"start_block":      1,
	"reset_block":      1,
	"check_item":       2,
	"next_equip_item":  1,
	"check_entity":     2,
	"color_multiplier": 2,
	"on_warp":          0,
}

var ErrEmptyScript = errors.New("script: empty source")

// Program is a compiled script shared by every instance of its mode.
type Program struct {
	name     string
	compiled *tengo.Compiled
	hooks    map[string]bool
}

// Compile checks src and records which hooks it defines.
func Compile(name string, src []byte) (*Program, error) {
	if strings.TrimSpace(string(src)) == "" {
		return nil, fmt.Errorf("%w: %s", ErrEmptyScript, name)
	}
	defined, err := definedHooks(src)
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}

	full := string(src) + "\n" + dispatchSource(defined)
	s := tengo.NewScript([]byte(full))
	_ = s.Add("__hook", "")
	_ = s.Add("__args", []any{})
	_ = s.Add("__engine", map[string]any{})
	_ = s.Add("__state", map[string]any{})
	_ = s.Add("__result", nil)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}
	return &Program{name: name, compiled: compiled, hooks: defined}, nil
}

// Defines reports whether the script has a function for hook.
func (p *Program) Defines(hook string) bool {
	return p != nil && p.hooks[hook]
}

// Hooks returns the defined hook names in a stable order.
func (p *Program) Hooks() []string {
	out := make([]string, 0, len(p.hooks))
	for _, name := range hookNames() {
		if p.hooks[name] {
			out = append(out, name)
		}
	}
	return out
}

// definedHooks runs the bare script once and looks for hook functions.
func definedHooks(src []byte) (map[string]bool, error) {
	s := tengo.NewScript(src)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	compiled, err := s.Compile()
	if err != nil {
		return nil, err
	}
	if err := compiled.Run(); err != nil {
		return nil, err
	}
	defined := map[string]bool{}
	for name := range hookArity {
		if !compiled.IsDefined(name) {
			continue
		}
		if _, ok := compiled.Get(name).Object().(*tengo.CompiledFunction); ok {
			defined[name] = true
		}
	}
	return defined, nil
}

// dispatchSource only references defined functions so the combined script
// compiles whatever subset the author wrote.
func dispatchSource(defined map[string]bool) string {
	var b strings.Builder
	first := true
	for _, name := range hookNames() {
		if !defined[name] {
			continue
		}
		if first {
			b.WriteString("if ")
			first = false
		} else {
			b.WriteString(" else if ")
		}
		fmt.Fprintf(&b, "__hook == %q {\n\t__result = %s(__engine, __state", name, name)
		for i := 0; i < hookArity[name]; i++ {
			fmt.Fprintf(&b, ", __args[%d]", i)
		}
		b.WriteString(")\n}")
	}
	b.WriteString("\n")
	return b.String()
}

func hookNames() []string {
	return []string{
		"init_entity", "on_update", "update_ai_tick", "change_mode", "set_mode",
		"should_block", "check_block", "overlooks_block", "execute_block",
		"start_block", "reset_block", "check_item", "next_equip_item",
		"check_entity", "color_multiplier", "on_warp",
	}
}

// NewDescriptor returns a copy of base whose hooks run prog. base carries
// the static data (name, priority, entries, search strategy) from the
// mode's prefab.
func NewDescriptor(base mode.Descriptor, prog *Program, log logrus.FieldLogger) (*mode.Descriptor, error) {
	if prog == nil {
		return nil, fmt.Errorf("script: %s: nil program", base.Name)
	}
	if err := mode.ValidatePriority(base.Priority, base.System); err != nil {
		return nil, fmt.Errorf("script: %s: %w", base.Name, err)
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	d := base
	d.Init = nil
	d.New = func(in *mode.Instance) mode.Hooks {
		rt := newRuntime(prog, in, log.WithField("mode", d.Name))
		return rt.hooks(&d)
	}
	return &d, nil
}
