package mode

import "fmt"

// ID is the host's mode number handed to hooks.
type ID int

// NoMode marks an entity without an active mode.
const NoMode ID = -1

func (id ID) String() string {
	if id == NoMode {
		return "none"
	}
	return fmt.Sprintf("0x%04X", int(id))
}

// Entry is one mode ID a descriptor accepts, with its display name.
type Entry struct {
	ID   ID
	Name string
}

// SearchStrategy selects how the block task decides to run.
type SearchStrategy int

const (
	// SearchNone disables block targeting.
	SearchNone SearchStrategy = iota
	// SearchScan scans the region around the owner with CheckBlock.
	SearchScan
	// SearchGate runs the block task whenever ShouldBlock is true.
	SearchGate
)

func (s SearchStrategy) String() string {
	switch s {
	case SearchScan:
		return "scan"
	case SearchGate:
		return "gate"
	default:
		return "none"
	}
}

// ParseSearchStrategy reads the names produced by String.
func ParseSearchStrategy(s string) (SearchStrategy, error) {
	switch s {
	case "", "none":
		return SearchNone, nil
	case "scan":
		return SearchScan, nil
	case "gate":
		return SearchGate, nil
	}
	return SearchNone, fmt.Errorf("mode: unknown search strategy %q", s)
}

// Thresholds are the squared distances the follow system reads. Zero fields
// fall back to DefaultThresholds, so zero itself cannot be configured; use a
// small positive value such as 0.01 for "always".
type Thresholds struct {
	StartFollowSq  float64 `yaml:"start_follow_sq"`
	TeleportSq     float64 `yaml:"teleport_sq"`
	FreedomRangeSq float64 `yaml:"freedom_range_sq"`
}

var DefaultThresholds = Thresholds{
	StartFollowSq:  25,
	TeleportSq:     100,
	FreedomRangeSq: 361,
}

func (t Thresholds) withDefaults() Thresholds {
	if t.StartFollowSq == 0 {
		t.StartFollowSq = DefaultThresholds.StartFollowSq
	}
	if t.TeleportSq == 0 {
		t.TeleportSq = DefaultThresholds.TeleportSq
	}
	if t.FreedomRangeSq == 0 {
		t.FreedomRangeSq = DefaultThresholds.FreedomRangeSq
	}
	return t
}

// BlockRange sizes the block search and the approach distances.
type BlockRange struct {
	Radius  int     `yaml:"radius"`
	Height  int     `yaml:"height"`
	ReachSq float64 `yaml:"reach_sq"`
	FarSq   float64 `yaml:"far_sq"`
}

var DefaultBlockRange = BlockRange{Radius: 8, Height: 2, ReachSq: 5, FarSq: 256}

func (r BlockRange) withDefaults() BlockRange {
	if r.Radius <= 0 {
		r.Radius = DefaultBlockRange.Radius
	}
	if r.Height <= 0 {
		r.Height = DefaultBlockRange.Height
	}
	if r.ReachSq <= 0 {
		r.ReachSq = DefaultBlockRange.ReachSq
	}
	if r.FarSq <= 0 {
		r.FarSq = DefaultBlockRange.FarSq
	}
	return r
}

// Descriptor is the static half of a mode: everything that does not depend
// on the entity the mode is attached to.
type Descriptor struct {
	Name     string
	Priority int
	// System marks engine-internal modes allowed to use reserved priorities.
	System        bool
	AnytimeUpdate bool
	Search        SearchStrategy
	EntitySearch  bool
	Thresholds    Thresholds
	Blocks        BlockRange
	Entries       []Entry

	// Init runs once when the descriptor is registered.
	Init func()
	// New builds the hooks for one entity. AddEntityMode must be set.
	New func(in *Instance) Hooks
}

// Handles reports whether id is one of the descriptor's entries.
func (d *Descriptor) Handles(id ID) bool {
	for _, e := range d.Entries {
		if e.ID == id {
			return true
		}
	}
	return false
}

// ValidatePriority rejects priorities whose low two digits are zero unless
// the mode is a system mode.
func ValidatePriority(priority int, system bool) error {
	if priority%100 == 0 && !system {
		return fmt.Errorf("%w: %d", ErrReservedPriority, priority)
	}
	return nil
}
