package prefabs

import (
	"fmt"

	"github.com/milk9111/maidmodes/item"
)

// ScenarioSpec describes a world to simulate: terrain, entities, the mode
// prefabs to register and a timeline of scripted events.
type ScenarioSpec struct {
	Name        string         `yaml:"name"`
	SkyLight    int            `yaml:"sky_light"`
	Modes       []string       `yaml:"modes"`
	DefaultMode string         `yaml:"default_mode"`
	Ground      []FillSpec     `yaml:"ground"`
	Blocks      []BlockSpec    `yaml:"blocks"`
	Player      PlayerSpec     `yaml:"player"`
	Maids       []MaidSpec     `yaml:"maids"`
	Creatures   []CreatureSpec `yaml:"creatures"`
	Pickups     []PickupSpec   `yaml:"pickups"`
	Events      []EventSpec    `yaml:"events"`
}

type FillSpec struct {
	Min   [3]int `yaml:"min"`
	Max   [3]int `yaml:"max"`
	Block string `yaml:"block"`
}

type BlockSpec struct {
	Pos   [3]int `yaml:"pos"`
	Block string `yaml:"block"`
}

type StackSpec struct {
	ID    string `yaml:"id"`
	Count int    `yaml:"count"`
}

func (s StackSpec) Stack() item.Stack {
	n := s.Count
	if n == 0 {
		n = 1
	}
	return item.Stack{ID: s.ID, Count: n}
}

type PlayerSpec struct {
	Pos   [3]float64  `yaml:"pos"`
	Items []StackSpec `yaml:"items"`
}

type MaidSpec struct {
	ID     string      `yaml:"id"`
	Name   string      `yaml:"name"`
	Pos    [3]float64  `yaml:"pos"`
	Mode   string      `yaml:"mode"`
	Health float32     `yaml:"health"`
	Items  []StackSpec `yaml:"items"`
}

type CreatureSpec struct {
	Kind    string     `yaml:"kind"`
	Pos     [3]float64 `yaml:"pos"`
	Hostile bool       `yaml:"hostile"`
	Health  float32    `yaml:"health"`
	Damage  float32    `yaml:"damage"`
	Drop    string     `yaml:"drop"`
}

type PickupSpec struct {
	Pos  [3]float64 `yaml:"pos"`
	Item StackSpec  `yaml:"item"`
}

// Event kinds a scenario timeline may contain.
const (
	EventInteract = "interact"
	EventTeleport = "teleport"
	EventDamage   = "damage"
	EventSave     = "save"
	EventLoad     = "load"
)

type EventSpec struct {
	Tick   uint64     `yaml:"tick"`
	Kind   string     `yaml:"kind"`
	Maid   string     `yaml:"maid"`
	Item   StackSpec  `yaml:"item"`
	Pos    [3]float64 `yaml:"pos"`
	Amount float32    `yaml:"amount"`
}

func LoadScenarioSpec(name string) (ScenarioSpec, error) {
	spec, err := LoadSpec[ScenarioSpec](name)
	if err != nil {
		return spec, err
	}
	if err := spec.validate(); err != nil {
		return ScenarioSpec{}, fmt.Errorf("prefabs: scenario %s: %w", name, err)
	}
	return spec, nil
}

func (s ScenarioSpec) validate() error {
	names := map[string]bool{}
	for _, m := range s.Maids {
		if m.Name == "" {
			return fmt.Errorf("maid without a name")
		}
		if names[m.Name] {
			return fmt.Errorf("duplicate maid %q", m.Name)
		}
		names[m.Name] = true
	}
	for _, ev := range s.Events {
		switch ev.Kind {
		case EventInteract, EventDamage:
			if !names[ev.Maid] {
				return fmt.Errorf("event at tick %d names unknown maid %q", ev.Tick, ev.Maid)
			}
		case EventTeleport, EventSave, EventLoad:
		default:
			return fmt.Errorf("event at tick %d has unknown kind %q", ev.Tick, ev.Kind)
		}
	}
	return nil
}
