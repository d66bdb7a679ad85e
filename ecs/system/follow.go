package system

import (
	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/ecs/component"
	"github.com/milk9111/maidmodes/mode"
	"github.com/sirupsen/logrus"
)

// FollowSystem keeps maids near their master using the active mode's
// thresholds. Maids in freedom mode stay near home instead. It also applies
// external TeleportRequests.
type FollowSystem struct {
	log logrus.FieldLogger
}

func NewFollowSystem(log logrus.FieldLogger) *FollowSystem {
	return &FollowSystem{log: systemLogger(log, "follow")}
}

func (s *FollowSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	s.applyTeleports(w)

	ecs.ForEach2(w, component.AIComponent.Kind(), component.MaidComponent.Kind(), func(e ecs.Entity, ai *component.AI, maid *component.Maid) {
		if ai.Controller == nil {
			return
		}
		in, ok := ai.Controller.Active()
		if !ok {
			return
		}
		x, y, z, ok := position(w, e)
		if !ok {
			return
		}
		nav := &navigator{w: w, e: e}
		move, _ := ai.Controller.Tasks()
		busy := len(move.Running()) > 0

		if maid.Freedom {
			hx, hy, hz := maid.Home.Center()
			if distSq(x, y, z, hx, hy, hz) > in.FreedomTrackingRange() && !busy {
				nav.TryMoveTo(hx, hy, hz, 1.0)
			}
			return
		}

		mx, my, mz, ok := position(w, maid.Master)
		if !ok {
			return
		}
		d := distSq(x, y, z, mx, my, mz)
		switch {
		case d > in.LimitRangeSqOnFollow():
			s.warp(w, e, in, mx, my, mz)
		case d > in.DistanceSqToStartFollow() && !busy:
			nav.TryMoveTo(mx, my, mz, 1.0)
		}
	})
}

func (s *FollowSystem) applyTeleports(w *ecs.World) {
	ecs.ForEach(w, component.TeleportRequestComponent.Kind(), func(req ecs.Entity, tp *component.TeleportRequest) {
		var in *mode.Instance
		if ai, ok := ecs.Get(w, tp.Entity, component.AIComponent.Kind()); ok && ai.Controller != nil {
			in, _ = ai.Controller.Active()
		}
		s.warp(w, tp.Entity, in, tp.X, tp.Y, tp.Z)
		ecs.DestroyEntity(w, req)
	})
}

// warp moves e next to (x, y, z), drops its path and fires OnWarp.
func (s *FollowSystem) warp(w *ecs.World, e ecs.Entity, in *mode.Instance, x, y, z float64) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	tx, ty, tz := x+1, y, z
	if h, ok := standHeight(terrain(w), tx, ty, tz); ok {
		ty = h
	}
	t.X, t.Y, t.Z = tx, ty, tz
	(&navigator{w: w, e: e}).ClearPath()
	if in != nil {
		in.OnWarp()
	}
	w.Events().Push(ecs.Event{Type: EventWarped, Entity: e})
	s.log.WithField("entity", e.String()).Debug("warped")
}
