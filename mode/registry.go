package mode

import (
	"fmt"
	"sort"
)

// Registry holds the known mode descriptors in processing order.
type Registry struct {
	descs      []*Descriptor
	byName     map[string]*Descriptor
	byEntry    map[ID]*Descriptor
	defaultID  ID
	hasDefault bool
}

func NewRegistry() *Registry {
	return &Registry{
		byName:    make(map[string]*Descriptor),
		byEntry:   make(map[ID]*Descriptor),
		defaultID: NoMode,
	}
}

// Register validates d, runs its Init hook and adds it.
func (r *Registry) Register(d *Descriptor) error {
	if err := r.validate(d, nil); err != nil {
		return err
	}
	if d.Init != nil {
		d.Init()
	}
	r.insert(d)
	return nil
}

// MustRegister is Register for package-level setup; it panics on error.
func (r *Registry) MustRegister(d *Descriptor) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

// Replace swaps the descriptor registered under d.Name. It is used for hot
// reload, so Init does not run again.
func (r *Registry) Replace(d *Descriptor) error {
	if d == nil {
		return ErrNoFactory
	}
	old, ok := r.byName[d.Name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMode, d.Name)
	}
	if err := r.validate(d, old); err != nil {
		return err
	}
	r.remove(old)
	r.insert(d)
	return nil
}

func (r *Registry) validate(d, replacing *Descriptor) error {
	if d == nil || d.New == nil {
		return ErrNoFactory
	}
	if d.Name == "" {
		return fmt.Errorf("mode: descriptor needs a name")
	}
	if err := ValidatePriority(d.Priority, d.System); err != nil {
		return fmt.Errorf("%s: %w", d.Name, err)
	}
	if existing, ok := r.byName[d.Name]; ok && existing != replacing {
		return fmt.Errorf("%w: %s", ErrDuplicateMode, d.Name)
	}
	for _, e := range d.Entries {
		if owner, ok := r.byEntry[e.ID]; ok && owner != replacing {
			return fmt.Errorf("%w: %s by %s and %s", ErrDuplicateEntry, e.ID, owner.Name, d.Name)
		}
	}
	return nil
}

func (r *Registry) insert(d *Descriptor) {
	r.byName[d.Name] = d
	for _, e := range d.Entries {
		r.byEntry[e.ID] = d
	}
	r.descs = append(r.descs, d)
	sort.SliceStable(r.descs, func(i, j int) bool {
		if r.descs[i].Priority != r.descs[j].Priority {
			return r.descs[i].Priority < r.descs[j].Priority
		}
		return r.descs[i].Name < r.descs[j].Name
	})
}

func (r *Registry) remove(d *Descriptor) {
	delete(r.byName, d.Name)
	for _, e := range d.Entries {
		if r.byEntry[e.ID] == d {
			delete(r.byEntry, e.ID)
		}
	}
	for i, cur := range r.descs {
		if cur == d {
			r.descs = append(r.descs[:i], r.descs[i+1:]...)
			break
		}
	}
}

// Descriptors returns the registered descriptors, lowest priority first.
func (r *Registry) Descriptors() []*Descriptor {
	out := make([]*Descriptor, len(r.descs))
	copy(out, r.descs)
	return out
}

func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Owner returns the descriptor that declared id.
func (r *Registry) Owner(id ID) (*Descriptor, bool) {
	d, ok := r.byEntry[id]
	return d, ok
}

// ModeID resolves an entry name such as "Escorter".
func (r *Registry) ModeID(name string) (ID, bool) {
	for _, d := range r.descs {
		for _, e := range d.Entries {
			if e.Name == name {
				return e.ID, true
			}
		}
	}
	return NoMode, false
}

// EntryName returns the display name of id, or its hex form.
func (r *Registry) EntryName(id ID) string {
	if d, ok := r.byEntry[id]; ok {
		for _, e := range d.Entries {
			if e.ID == id {
				return e.Name
			}
		}
	}
	return id.String()
}

// SetDefault picks the mode entities fall back to when no mode consumes a
// change request.
func (r *Registry) SetDefault(id ID) error {
	if _, ok := r.byEntry[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMode, id)
	}
	r.defaultID = id
	r.hasDefault = true
	return nil
}

func (r *Registry) Default() (ID, bool) {
	return r.defaultID, r.hasDefault
}

func (r *Registry) Len() int {
	return len(r.descs)
}
