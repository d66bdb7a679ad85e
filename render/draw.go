package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/maidmodes/ecs"
	"github.com/milk9111/maidmodes/ecs/component"
	"github.com/milk9111/maidmodes/mode"
	"github.com/milk9111/maidmodes/voxel"
	"golang.org/x/image/colornames"
)

var blockColors = map[voxel.Block]color.RGBA{
	voxel.Stone:   colornames.Slategray,
	voxel.Dirt:    colornames.Saddlebrown,
	voxel.Grass:   colornames.Forestgreen,
	voxel.Log:     colornames.Sienna,
	voxel.Leaves:  colornames.Darkgreen,
	voxel.Torch:   colornames.Gold,
	voxel.Furnace: colornames.Dimgray,
}

var (
	maidColor     = colornames.White
	playerColor   = colornames.Royalblue
	hostileColor  = colornames.Crimson
	creatureColor = colornames.Wheat
	pickupColor   = colornames.Yellow
)

// Surface is what the draw pass needs from a canvas.
type Surface interface {
	mode.Canvas
	FillTinted(x, y, size float64, base color.Color, tint ebiten.ColorScale)
}

func terrainOf(w *ecs.World) *voxel.World {
	ent, ok := ecs.First(w, component.TerrainComponent.Kind())
	if !ok {
		return nil
	}
	t, ok := ecs.Get(w, ent, component.TerrainComponent.Kind())
	if !ok {
		return nil
	}
	return t.World
}

// DrawTerrain paints the world seen from above. Higher blocks overdraw
// lower ones.
func DrawTerrain(c mode.Canvas, vw *voxel.World, cam Camera) {
	s := cam.scale()
	vw.Each(func(p voxel.Pos, b voxel.Block) {
		clr, ok := blockColors[b]
		if !ok {
			clr = colornames.Magenta
		}
		sx, sy := cam.ToScreen(float64(p.X), float64(p.Z))
		if !cam.Visible(sx, sy) {
			return
		}
		c.Fill(sx, sy, s, s, clr)
	})
}

// DrawEntities paints pickups, creatures, players and maids. Maids are
// tinted by their active mode.
func DrawEntities(w *ecs.World, c Surface, cam Camera, partialTick float32) {
	s := cam.scale()
	vw := terrainOf(w)
	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Pickup, t *component.Transform) {
		sx, sy := cam.ToScreen(t.X, t.Z)
		c.Fill(sx-s/4, sy-s/4, s/2, s/2, pickupColor)
	})
	ecs.ForEach2(w, component.CreatureComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, cr *component.Creature, t *component.Transform) {
		clr := creatureColor
		if cr.Hostile {
			clr = hostileColor
		}
		sx, sy := cam.ToScreen(t.X, t.Z)
		c.Fill(sx-s/2, sy-s/2, s, s, clr)
	})
	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.PlayerTag, t *component.Transform) {
		sx, sy := cam.ToScreen(t.X, t.Z)
		c.Fill(sx-s/2, sy-s/2, s, s, playerColor)
	})
	ecs.ForEach2(w, component.AIComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, ai *component.AI, t *component.Transform) {
		in, ok := activeInstance(ai)
		if !ok {
			return
		}
		light := lightAt(vw, t)
		sx, sy := cam.ToScreen(t.X, t.Z)
		c.FillTinted(sx-s/2, sy-s/2, s, maidColor, Tint(in.ColorMultiplier(light, partialTick)))
	})
}

// Specials runs ShowSpecial on every maid's active mode.
func Specials(w *ecs.World, c mode.Canvas, cam Camera, partialTick float32) {
	vw := terrainOf(w)
	ecs.ForEach2(w, component.AIComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, ai *component.AI, t *component.Transform) {
		in, ok := activeInstance(ai)
		if !ok {
			return
		}
		sx, sy := cam.ToScreen(t.X, t.Z)
		in.ShowSpecial(mode.RenderContext{
			X:           sx,
			Y:           sy,
			Z:           t.Y,
			Light:       lightAt(vw, t),
			PartialTick: partialTick,
			Canvas:      c,
		})
	})
}

func activeInstance(ai *component.AI) (*mode.Instance, bool) {
	if ai == nil || ai.Controller == nil {
		return nil, false
	}
	return ai.Controller.Active()
}

func lightAt(vw *voxel.World, t *component.Transform) float32 {
	if vw == nil {
		return 1
	}
	return float32(vw.Light(voxel.FloorPos(t.X, t.Y, t.Z))) / voxel.MaxLight
}
