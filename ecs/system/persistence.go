package system

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/ecs/component"
	"github.com/milk9111/maidmodes/item"
	"github.com/milk9111/maidmodes/nbt"
	"github.com/milk9111/maidmodes/store"
	"github.com/milk9111/maidmodes/voxel"
	"github.com/sirupsen/logrus"
)

// StateStore is the part of store.Store the persistence system needs.
type StateStore interface {
	Put(ctx context.Context, rec *store.Record) error
	Get(ctx context.Context, id uuid.UUID) (*store.Record, error)
}

// PersistenceSystem saves and restores maids on SaveRequest and
// LoadRequest. Host fields are written next to the modes' own state.
type PersistenceSystem struct {
	store StateStore
	log   logrus.FieldLogger
}

func NewPersistenceSystem(s StateStore, log logrus.FieldLogger) *PersistenceSystem {
	return &PersistenceSystem{store: s, log: systemLogger(log, "persistence")}
}

func (p *PersistenceSystem) Update(w *ecs.World) {
	if p == nil || w == nil || p.store == nil {
		return
	}
	if _, ok := ecs.First(w, component.SaveRequestComponent.Kind()); ok {
		ecs.ForEach(w, component.SaveRequestComponent.Kind(), func(e ecs.Entity, _ *component.SaveRequest) {
			ecs.DestroyEntity(w, e)
		})
		p.saveAll(w)
	}
	if _, ok := ecs.First(w, component.LoadRequestComponent.Kind()); ok {
		ecs.ForEach(w, component.LoadRequestComponent.Kind(), func(e ecs.Entity, _ *component.LoadRequest) {
			ecs.DestroyEntity(w, e)
		})
		p.loadAll(w)
	}
}

func (p *PersistenceSystem) saveAll(w *ecs.World) {
	ctx := context.Background()
	saved := 0
	ecs.ForEach2(w, component.PersistentComponent.Kind(), component.AIComponent.Kind(), func(e ecs.Entity, pers *component.Persistent, ai *component.AI) {
		if ai.Controller == nil {
			return
		}
		tag := nbt.New()
		writeHostState(w, e, tag)
		ai.Controller.WriteState(tag)

		rec := &store.Record{
			ID:      pers.ID,
			Mode:    ai.Controller.Registry().EntryName(ai.Controller.ActiveID()),
			Tick:    w.Tick(),
			SavedAt: time.Now(),
			State:   tag,
		}
		if m, ok := ecs.Get(w, e, component.MaidComponent.Kind()); ok {
			rec.Name = m.Name
		}
		if err := p.store.Put(ctx, rec); err != nil {
			p.log.WithError(err).WithField("entity", e.String()).Error("save failed")
			return
		}
		saved++
	})
	p.log.WithField("count", saved).Info("saved")
}

func (p *PersistenceSystem) loadAll(w *ecs.World) {
	ctx := context.Background()
	loaded := 0
	ecs.ForEach2(w, component.PersistentComponent.Kind(), component.AIComponent.Kind(), func(e ecs.Entity, pers *component.Persistent, ai *component.AI) {
		rec, err := p.store.Get(ctx, pers.ID)
		if errors.Is(err, store.ErrNotFound) {
			return
		}
		if err != nil {
			p.log.WithError(err).WithField("entity", e.String()).Error("load failed")
			return
		}
		readHostState(w, e, rec.State)
		if ai.Controller != nil {
			ai.Controller.ReadState(rec.State)
		}
		loaded++
	})
	p.log.WithField("count", loaded).Info("loaded")
}

const (
	keyPos        = "Pos"
	keyHome       = "Home"
	keyTargetTile = "TargetTile"
	keyFreedom    = "Freedom"
	keyBloodsuck  = "Bloodsuck"
	keyHealth     = "Health"
	keyInventory  = "Inventory"
	keyHeld       = "Held"
)

func writeHostState(w *ecs.World, e ecs.Entity, tag *nbt.Compound) {
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		pos := nbt.New()
		pos.SetFloat("x", t.X)
		pos.SetFloat("y", t.Y)
		pos.SetFloat("z", t.Z)
		tag.SetCompound(keyPos, pos)
	}
	if m, ok := ecs.Get(w, e, component.MaidComponent.Kind()); ok {
		tag.SetIntArray(keyHome, m.Home.Slice())
		tag.SetIntArray(keyTargetTile, m.TargetTile.Slice())
		tag.SetBool(keyFreedom, m.Freedom)
		tag.SetBool(keyBloodsuck, m.Bloodsuck)
	}
	if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
		tag.SetFloat(keyHealth, float64(h.Current))
	}
	if inv, ok := ecs.Get(w, e, component.InventoryComponent.Kind()); ok && inv.Items != nil {
		slots := nbt.New()
		for i, s := range inv.Items.Slots {
			if s.Empty() {
				continue
			}
			slot := nbt.New()
			slot.SetString("id", s.ID)
			slot.SetInt("count", s.Count)
			slots.SetCompound(strconv.Itoa(i), slot)
		}
		slots.SetInt(keyHeld, inv.Items.Current)
		tag.SetCompound(keyInventory, slots)
	}
}

func readHostState(w *ecs.World, e ecs.Entity, tag *nbt.Compound) {
	if tag.HasKeyOfType(keyPos, nbt.TypeCompound) {
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			pos := tag.GetCompound(keyPos)
			t.X, t.Y, t.Z = pos.GetFloat("x"), pos.GetFloat("y"), pos.GetFloat("z")
		}
	}
	if m, ok := ecs.Get(w, e, component.MaidComponent.Kind()); ok {
		if p, ok := voxel.PosFromSlice(tag.GetIntArray(keyHome)); ok {
			m.Home = p
		}
		if p, ok := voxel.PosFromSlice(tag.GetIntArray(keyTargetTile)); ok {
			m.TargetTile = p
		}
		m.Freedom = tag.GetBool(keyFreedom)
		m.Bloodsuck = tag.GetBool(keyBloodsuck)
	}
	if tag.HasKeyOfType(keyHealth, nbt.TypeFloat) {
		if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
			h.Current = float32(tag.GetFloat(keyHealth))
		}
	}
	if tag.HasKeyOfType(keyInventory, nbt.TypeCompound) {
		if inv, ok := ecs.Get(w, e, component.InventoryComponent.Kind()); ok && inv.Items != nil {
			slots := tag.GetCompound(keyInventory)
			for i := range inv.Items.Slots {
				inv.Items.Slots[i] = item.Stack{}
				key := strconv.Itoa(i)
				if !slots.HasKeyOfType(key, nbt.TypeCompound) {
					continue
				}
				slot := slots.GetCompound(key)
				inv.Items.Slots[i] = item.Stack{ID: slot.GetString("id"), Count: slot.GetInt("count")}
			}
			inv.Items.Select(slots.GetInt(keyHeld))
		}
	}
}
