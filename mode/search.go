package mode

import (
	"sort"

	"github.com/milk9111/maidmodes/voxel"
)

// Region is a box of blocks around Center: Radius blocks along x and z,
// Height blocks along y.
type Region struct {
	Center voxel.Pos
	Radius int
	Height int
}

// RegionAround sizes a search region from a block range.
func RegionAround(center voxel.Pos, r BlockRange) Region {
	r = r.withDefaults()
	return Region{Center: center, Radius: r.Radius, Height: r.Height}
}

func (r Region) Contains(p voxel.Pos) bool {
	return abs(p.X-r.Center.X) <= r.Radius &&
		abs(p.Z-r.Center.Z) <= r.Radius &&
		abs(p.Y-r.Center.Y) <= r.Height
}

// Positions lists every block in the region nearest-first. Equal distances
// are ordered by y, then x, then z.
func (r Region) Positions() []voxel.Pos {
	if r.Radius < 0 || r.Height < 0 {
		return nil
	}
	side := 2*r.Radius + 1
	out := make([]voxel.Pos, 0, side*side*(2*r.Height+1))
	for dy := -r.Height; dy <= r.Height; dy++ {
		for dx := -r.Radius; dx <= r.Radius; dx++ {
			for dz := -r.Radius; dz <= r.Radius; dz++ {
				out = append(out, r.Center.Add(dx, dy, dz))
			}
		}
	}
	c := r.Center
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := distSq(out[i], c), distSq(out[j], c)
		if di != dj {
			return di < dj
		}
		return voxel.Less(out[i], out[j])
	})
	return out
}

// SearchResult is the outcome of SearchBlocks. Continue tells the block
// task whether to start: true on a hit, or whatever OverlooksBlock decided.
type SearchResult struct {
	Pos      voxel.Pos
	Found    bool
	Continue bool
}

// SearchBlocks offers each block of region to CheckBlock and stops at the
// first match. OverlooksBlock runs once, only when nothing matched.
func SearchBlocks(in *Instance, id ID, region Region) SearchResult {
	for _, p := range region.Positions() {
		if in.CheckBlock(id, p.X, p.Y, p.Z) {
			return SearchResult{Pos: p, Found: true, Continue: true}
		}
	}
	return SearchResult{Continue: in.OverlooksBlock(id)}
}

func distSq(a, b voxel.Pos) int {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return dx*dx + dy*dy + dz*dz
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
