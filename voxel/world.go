// Package voxel is the sparse block world modes search and act on.
package voxel

import (
	"math"
	"sort"

	"github.com/milk9111/maidmodes/nbt"
)

type Block string

const (
	Air     Block = "air"
	Stone   Block = "stone"
	Dirt    Block = "dirt"
	Grass   Block = "grass"
	Log     Block = "log"
	Leaves  Block = "leaves"
	Torch   Block = "torch"
	Furnace Block = "furnace"
)

const (
	MaxLight   = 15
	torchLight = 14
)

// Pos is an integer block coordinate.
type Pos struct {
	X, Y, Z int
}

func (p Pos) Add(dx, dy, dz int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz}
}

func (p Pos) Below() Pos {
	return p.Add(0, -1, 0)
}

// Center returns the centre of the block's bottom face.
func (p Pos) Center() (x, y, z float64) {
	return float64(p.X) + 0.5, float64(p.Y), float64(p.Z) + 0.5
}

// DistanceSq returns the squared distance from (x, y, z) to the block centre.
func (p Pos) DistanceSq(x, y, z float64) float64 {
	cx, cy, cz := p.Center()
	dx, dy, dz := cx-x, cy-y, cz-z
	return dx*dx + dy*dy + dz*dz
}

// FloorPos returns the block containing (x, y, z).
func FloorPos(x, y, z float64) Pos {
	return Pos{X: int(math.Floor(x)), Y: int(math.Floor(y)), Z: int(math.Floor(z))}
}

func (p Pos) Slice() []int {
	return []int{p.X, p.Y, p.Z}
}

// PosFromSlice is the inverse of Slice; short input yields false.
func PosFromSlice(v []int) (Pos, bool) {
	if len(v) < 3 {
		return Pos{}, false
	}
	return Pos{X: v[0], Y: v[1], Z: v[2]}, true
}

// Tile is a stateful block-entity such as a furnace.
type Tile struct {
	Pos  Pos
	Kind Block
	Data *nbt.Compound
}

// World is a sparse block map. Absent coordinates are air.
type World struct {
	blocks   map[Pos]Block
	tiles    map[Pos]*Tile
	torches  map[Pos]struct{}
	skyLight int
}

func NewWorld(skyLight int) *World {
	return &World{
		blocks:   make(map[Pos]Block),
		tiles:    make(map[Pos]*Tile),
		torches:  make(map[Pos]struct{}),
		skyLight: clampLight(skyLight),
	}
}

func (w *World) Block(p Pos) Block {
	if w == nil {
		return Air
	}
	if b, ok := w.blocks[p]; ok {
		return b
	}
	return Air
}

// SetBlock places b at p, creating or dropping the block-entity as needed.
// Placing the block already at p is a no-op, so a furnace keeps its tile.
func (w *World) SetBlock(p Pos, b Block) {
	if w == nil {
		return
	}
	if old, ok := w.blocks[p]; ok && old == b {
		return
	}
	delete(w.tiles, p)
	delete(w.torches, p)
	if b == Air || b == "" {
		delete(w.blocks, p)
		return
	}
	w.blocks[p] = b
	switch b {
	case Torch:
		w.torches[p] = struct{}{}
	case Furnace:
		w.tiles[p] = &Tile{Pos: p, Kind: Furnace, Data: nbt.New()}
	}
}

// IsSolid reports whether an entity can stand on top of p.
func (w *World) IsSolid(p Pos) bool {
	b := w.Block(p)
	return b != Air && b != Torch
}

// CanStandAt reports whether p is free and rests on a solid block.
func (w *World) CanStandAt(p Pos) bool {
	return !w.IsSolid(p) && w.IsSolid(p.Below())
}

// Light returns the light level at p: the sky light or the strongest torch
// falloff, whichever is brighter.
func (w *World) Light(p Pos) int {
	if w == nil {
		return 0
	}
	level := w.skyLight
	for t := range w.torches {
		d := abs(t.X-p.X) + abs(t.Y-p.Y) + abs(t.Z-p.Z)
		if l := torchLight - d; l > level {
			level = l
		}
	}
	return level
}

func (w *World) SkyLight() int {
	if w == nil {
		return 0
	}
	return w.skyLight
}

func (w *World) Tile(p Pos) (*Tile, bool) {
	if w == nil {
		return nil, false
	}
	t, ok := w.tiles[p]
	return t, ok
}

// Each calls fn for every non-air block, lowest first.
func (w *World) Each(fn func(Pos, Block)) {
	if w == nil {
		return
	}
	keys := make([]Pos, 0, len(w.blocks))
	for p := range w.blocks {
		keys = append(keys, p)
	}
	sort.Slice(keys, func(i, j int) bool { return Less(keys[i], keys[j]) })
	for _, p := range keys {
		fn(p, w.blocks[p])
	}
}

// Tiles returns every block-entity of kind, ordered by position.
func (w *World) Tiles(kind Block) []*Tile {
	if w == nil {
		return nil
	}
	out := make([]*Tile, 0, len(w.tiles))
	for _, t := range w.tiles {
		if kind == "" || t.Kind == kind {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return Less(out[i].Pos, out[j].Pos) })
	return out
}

// Less orders positions by y, then x, then z.
func Less(a, b Pos) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Z < b.Z
}

// Fill sets every block in the inclusive box [min, max].
func (w *World) Fill(min, max Pos, b Block) {
	for y := min.Y; y <= max.Y; y++ {
		for x := min.X; x <= max.X; x++ {
			for z := min.Z; z <= max.Z; z++ {
				w.SetBlock(Pos{X: x, Y: y, Z: z}, b)
			}
		}
	}
}

func clampLight(l int) int {
	if l < 0 {
		return 0
	}
	if l > MaxLight {
		return MaxLight
	}
	return l
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
