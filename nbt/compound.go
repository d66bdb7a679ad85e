// Package nbt implements the tagged key-value container modes persist their
// local state into. Reads are forgiving: an absent key, or one holding a
// different type, yields the zero value.
package nbt

import (
	"maps"
	"slices"
)

// Type identifies the payload kind of a tag.
type Type uint8

const (
	TypeInt Type = iota + 1
	TypeFloat
	TypeString
	TypeBool
	TypeIntArray
	TypeCompound
)

func (t Type) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	case TypeBool:
		return "bool"
	case TypeIntArray:
		return "int_array"
	case TypeCompound:
		return "compound"
	default:
		return "unknown"
	}
}

func parseType(s string) (Type, bool) {
	for t := TypeInt; t <= TypeCompound; t++ {
		if t.String() == s {
			return t, true
		}
	}
	return 0, false
}

type tag struct {
	typ   Type
	value any
}

// Compound is an ordered-by-key map of typed tags.
type Compound struct {
	tags map[string]tag
}

// New returns an empty compound.
func New() *Compound {
	return &Compound{tags: make(map[string]tag)}
}

func (c *Compound) set(key string, typ Type, v any) {
	if c.tags == nil {
		c.tags = make(map[string]tag)
	}
	c.tags[key] = tag{typ: typ, value: v}
}

func (c *Compound) get(key string, typ Type) (any, bool) {
	if c == nil {
		return nil, false
	}
	t, ok := c.tags[key]
	if !ok || t.typ != typ {
		return nil, false
	}
	return t.value, true
}

func (c *Compound) SetInt(key string, v int) { c.set(key, TypeInt, int64(v)) }

func (c *Compound) GetInt(key string) int {
	v, ok := c.get(key, TypeInt)
	if !ok {
		return 0
	}
	return int(v.(int64))
}

func (c *Compound) SetFloat(key string, v float64) { c.set(key, TypeFloat, v) }

func (c *Compound) GetFloat(key string) float64 {
	v, ok := c.get(key, TypeFloat)
	if !ok {
		return 0
	}
	return v.(float64)
}

func (c *Compound) SetString(key, v string) { c.set(key, TypeString, v) }

func (c *Compound) GetString(key string) string {
	v, ok := c.get(key, TypeString)
	if !ok {
		return ""
	}
	return v.(string)
}

func (c *Compound) SetBool(key string, v bool) { c.set(key, TypeBool, v) }

func (c *Compound) GetBool(key string) bool {
	v, ok := c.get(key, TypeBool)
	if !ok {
		return false
	}
	return v.(bool)
}

// SetIntArray stores a copy of v.
func (c *Compound) SetIntArray(key string, v []int) { c.set(key, TypeIntArray, slices.Clone(v)) }

// GetIntArray returns a copy of the stored array, or nil.
func (c *Compound) GetIntArray(key string) []int {
	v, ok := c.get(key, TypeIntArray)
	if !ok {
		return nil
	}
	return slices.Clone(v.([]int))
}

// SetCompound stores a deep copy of v.
func (c *Compound) SetCompound(key string, v *Compound) {
	if v == nil {
		v = New()
	}
	c.set(key, TypeCompound, v.Clone())
}

// GetCompound returns the nested compound, or a fresh empty one that is not
// attached to c.
func (c *Compound) GetCompound(key string) *Compound {
	v, ok := c.get(key, TypeCompound)
	if !ok {
		return New()
	}
	return v.(*Compound)
}

// HasKey reports whether key is present with any type.
func (c *Compound) HasKey(key string) bool {
	if c == nil {
		return false
	}
	_, ok := c.tags[key]
	return ok
}

// HasKeyOfType reports whether key is present with type typ.
func (c *Compound) HasKeyOfType(key string, typ Type) bool {
	_, ok := c.get(key, typ)
	return ok
}

// TypeOf returns the type stored under key.
func (c *Compound) TypeOf(key string) (Type, bool) {
	if c == nil {
		return 0, false
	}
	t, ok := c.tags[key]
	return t.typ, ok
}

func (c *Compound) Remove(key string) {
	if c == nil {
		return
	}
	delete(c.tags, key)
}

// Keys returns the keys in sorted order.
func (c *Compound) Keys() []string {
	if c == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(c.tags))
}

func (c *Compound) Len() int {
	if c == nil {
		return 0
	}
	return len(c.tags)
}

// Clone returns a deep copy.
func (c *Compound) Clone() *Compound {
	out := New()
	if c == nil {
		return out
	}
	for k, t := range c.tags {
		switch v := t.value.(type) {
		case []int:
			out.tags[k] = tag{typ: t.typ, value: slices.Clone(v)}
		case *Compound:
			out.tags[k] = tag{typ: t.typ, value: v.Clone()}
		default:
			out.tags[k] = t
		}
	}
	return out
}

// Equal reports whether both compounds hold the same keys, types and values.
func (c *Compound) Equal(o *Compound) bool {
	if c.Len() != o.Len() {
		return false
	}
	for _, k := range c.Keys() {
		a := c.tags[k]
		b, ok := o.tags[k]
		if !ok || a.typ != b.typ {
			return false
		}
		switch av := a.value.(type) {
		case []int:
			if !slices.Equal(av, b.value.([]int)) {
				return false
			}
		case *Compound:
			if !av.Equal(b.value.(*Compound)) {
				return false
			}
		default:
			if a.value != b.value {
				return false
			}
		}
	}
	return true
}
