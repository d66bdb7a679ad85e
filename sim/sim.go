package sim

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/ecs/component"
	"github.com/milk9111/maidmodes/ecs/entity"
	"github.com/milk9111/maidmodes/ecs/system"
	"github.com/milk9111/maidmodes/item"
	"github.com/milk9111/maidmodes/mode"
	"github.com/milk9111/maidmodes/prefabs"
	"github.com/milk9111/maidmodes/store"
	"github.com/milk9111/maidmodes/voxel"
	"github.com/sirupsen/logrus"
)

// Sim is one scenario loaded into an ECS world.
type Sim struct {
	cfg       Config
	log       logrus.FieldLogger
	world     *ecs.World
	terrain   *voxel.World
	reg       *mode.Registry
	sources   map[string]loadedMode
	scheduler *ecs.Scheduler
	store     *store.Store
	watcher   *prefabs.Watcher
	journal   *journal

	player ecs.Entity
	maids  map[string]ecs.Entity
	events []prefabs.EventSpec
	next   int
}

// New loads cfg.Scenario and builds the world. Close releases the store and
// the watcher.
func New(cfg Config, log logrus.FieldLogger) (*Sim, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if cfg.PrefabDir != "" {
		prefabs.Dir = cfg.PrefabDir
	}
	spec, err := prefabs.LoadScenarioSpec(cfg.Scenario)
	if err != nil {
		return nil, err
	}

	s := &Sim{
		cfg:   cfg,
		log:   log.WithField("scenario", spec.Name),
		world: ecs.NewWorld(),
		maids: map[string]ecs.Entity{},
	}
	if err := s.build(spec); err != nil {
		return nil, err
	}

	if cfg.DBPath != "" {
		st, err := store.Open(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		s.store = st
	}
	var states system.StateStore
	if s.store != nil {
		states = s.store
	}
	s.journal = newJournal(log)
	s.scheduler = ecs.NewScheduler(
		system.NewModeSystem(log),
		system.NewFollowSystem(log),
		system.NewNavigationSystem(),
		system.NewCreatureSystem(),
		system.NewCombatSystem(log),
		system.NewDamageSystem(log),
		system.NewInteractSystem(log),
		system.NewPickupSystem(),
		system.NewEquipSystem(),
		system.NewPersistenceSystem(states, log),
		s.journal,
	)

	if cfg.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, prefabs.Dir+"/scripts")
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("sim: watch %s: %w", prefabs.Dir, err)
		}
		s.watcher = w
	}
	return s, nil
}

func (s *Sim) build(spec prefabs.ScenarioSpec) error {
	reg, sources, err := BuildRegistry(spec.Modes, s.log)
	if err != nil {
		return err
	}
	if spec.DefaultMode != "" {
		id, ok := reg.ModeID(spec.DefaultMode)
		if !ok {
			return fmt.Errorf("sim: unknown default mode %q", spec.DefaultMode)
		}
		if err := reg.SetDefault(id); err != nil {
			return fmt.Errorf("sim: %w", err)
		}
	}
	s.reg, s.sources = reg, sources

	s.terrain = voxel.NewWorld(spec.SkyLight)
	for _, f := range spec.Ground {
		s.terrain.Fill(posOf(f.Min), posOf(f.Max), voxel.Block(f.Block))
	}
	for _, b := range spec.Blocks {
		s.terrain.SetBlock(posOf(b.Pos), voxel.Block(b.Block))
	}
	if _, err := entity.NewTerrain(s.world, s.terrain); err != nil {
		return err
	}

	p := spec.Player
	player, err := entity.NewPlayer(s.world, p.Pos[0], p.Pos[1], p.Pos[2], stacks(p.Items)...)
	if err != nil {
		return err
	}
	s.player = player

	for _, m := range spec.Maids {
		if err := s.spawnMaid(spec.Name, m); err != nil {
			return err
		}
	}
	for _, c := range spec.Creatures {
		_, err := entity.NewCreature(s.world, entity.CreatureParams{
			Kind:         c.Kind,
			X:            c.Pos[0],
			Y:            c.Pos[1],
			Z:            c.Pos[2],
			Hostile:      c.Hostile,
			Health:       c.Health,
			AttackDamage: c.Damage,
			Drop:         c.Drop,
		})
		if err != nil {
			return err
		}
	}
	for _, pk := range spec.Pickups {
		if _, err := entity.NewPickup(s.world, pk.Pos[0], pk.Pos[1], pk.Pos[2], pk.Item.Stack()); err != nil {
			return err
		}
	}

	s.events = append([]prefabs.EventSpec(nil), spec.Events...)
	sort.SliceStable(s.events, func(i, j int) bool { return s.events[i].Tick < s.events[j].Tick })
	return nil
}

func (s *Sim) spawnMaid(scenario string, m prefabs.MaidSpec) error {
	id, err := maidID(scenario, m)
	if err != nil {
		return err
	}
	modeID := mode.NoMode
	if m.Mode != "" {
		v, ok := s.reg.ModeID(m.Mode)
		if !ok {
			return fmt.Errorf("sim: maid %s: unknown mode %q", m.Name, m.Mode)
		}
		modeID = v
	}
	e, err := entity.NewMaid(s.world, s.reg, system.NewOwner, system.DefaultTasks, entity.MaidParams{
		ID:        id,
		Name:      m.Name,
		X:         m.Pos[0],
		Y:         m.Pos[1],
		Z:         m.Pos[2],
		Master:    s.player,
		Mode:      modeID,
		Health:    m.Health,
		Inventory: stacks(m.Items),
	})
	if err != nil {
		return fmt.Errorf("sim: maid %s: %w", m.Name, err)
	}
	s.maids[m.Name] = e
	return nil
}

// maidID is stable across runs so saved state finds its maid again.
func maidID(scenario string, m prefabs.MaidSpec) (uuid.UUID, error) {
	if m.ID != "" {
		id, err := uuid.Parse(m.ID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("sim: maid %s: %w", m.Name, err)
		}
		return id, nil
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(scenario+"/"+m.Name)), nil
}

func posOf(v [3]int) voxel.Pos {
	return voxel.Pos{X: v[0], Y: v[1], Z: v[2]}
}

func stacks(specs []prefabs.StackSpec) []item.Stack {
	out := make([]item.Stack, 0, len(specs))
	for _, s := range specs {
		out = append(out, s.Stack())
	}
	return out
}

// Step applies pending reloads and the events due this tick, then runs one
// scheduler pass.
func (s *Sim) Step() error {
	s.drainReloads()
	s.fireEvents()
	s.scheduler.Update(s.world)
	return nil
}

// Run steps until cfg.Ticks have passed or ctx is cancelled. Zero ticks
// runs until cancelled.
func (s *Sim) Run(ctx context.Context) error {
	for !s.Done() {
		if err := ctx.Err(); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		if err := s.Step(); err != nil {
			return err
		}
	}
	s.log.WithField("tick", s.world.Tick()).Info("finished")
	return nil
}

func (s *Sim) Done() bool {
	return s.cfg.Ticks > 0 && s.world.Tick() >= uint64(s.cfg.Ticks)
}

func (s *Sim) World() *ecs.World { return s.world }
func (s *Sim) Registry() *mode.Registry { return s.reg }
func (s *Sim) Player() ecs.Entity { return s.player }

func (s *Sim) Maid(name string) (ecs.Entity, bool) {
	e, ok := s.maids[name]
	return e, ok
}

func (s *Sim) Close() error {
	var errs []error
	if s.watcher != nil {
		errs = append(errs, s.watcher.Close())
		s.watcher = nil
	}
	if s.store != nil {
		errs = append(errs, s.store.Close())
		s.store = nil
	}
	return errors.Join(errs...)
}

// MaidStatus is a row of the end-of-run report.
type MaidStatus struct {
	Name    string
	Mode    string
	Active  string
	Health  float32
	X, Y, Z float64
}

func (s *Sim) Status() []MaidStatus {
	names := make([]string, 0, len(s.maids))
	for n := range s.maids {
		names = append(names, n)
	}
	sort.Strings(names)

	out := make([]MaidStatus, 0, len(names))
	for _, n := range names {
		e := s.maids[n]
		st := MaidStatus{Name: n}
		if ai, ok := ecs.Get(s.world, e, component.AIComponent.Kind()); ok && ai.Controller != nil {
			st.Mode = s.reg.EntryName(ai.Controller.ActiveID())
			if in, ok := ai.Controller.Active(); ok {
				st.Active = in.Name()
			}
		}
		if h, ok := ecs.Get(s.world, e, component.HealthComponent.Kind()); ok {
			st.Health = h.Current
		}
		if t, ok := ecs.Get(s.world, e, component.TransformComponent.Kind()); ok {
			st.X, st.Y, st.Z = t.X, t.Y, t.Z
		}
		out = append(out, st)
	}
	return out
}
