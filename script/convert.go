package script

import (
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/milk9111/maidmodes/nbt"
)

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}

func objectAsInt(obj tengo.Object) (int, bool) {
	switch v := obj.(type) {
	case *tengo.Int:
		return int(v.Value), true
	case *tengo.Float:
		return int(v.Value), true
	case *tengo.Char:
		return int(v.Value), true
	}
	return 0, false
}

func objectAsFloat(obj tengo.Object) (float64, bool) {
	switch v := obj.(type) {
	case *tengo.Float:
		return v.Value, true
	case *tengo.Int:
		return float64(v.Value), true
	}
	return 0, false
}

// mapToCompound stores the values nbt can hold. Ints, floats, strings and
// bools map directly, int arrays to IntArray and maps to compounds; other
// values are dropped.
func mapToCompound(m *tengo.Map) *nbt.Compound {
	out := nbt.New()
	for k, obj := range m.Value {
		switch v := obj.(type) {
		case *tengo.Int:
			out.SetInt(k, int(v.Value))
		case *tengo.Float:
			out.SetFloat(k, v.Value)
		case *tengo.String:
			out.SetString(k, v.Value)
		case *tengo.Bool:
			out.SetBool(k, !v.IsFalsy())
		case *tengo.Array:
			if ints, ok := intSlice(v.Value); ok {
				out.SetIntArray(k, ints)
			}
		case *tengo.ImmutableArray:
			if ints, ok := intSlice(v.Value); ok {
				out.SetIntArray(k, ints)
			}
		case *tengo.Map:
			out.SetCompound(k, mapToCompound(v))
		case *tengo.ImmutableMap:
			out.SetCompound(k, mapToCompound(&tengo.Map{Value: v.Value}))
		}
	}
	return out
}

func intSlice(objs []tengo.Object) ([]int, bool) {
	out := make([]int, 0, len(objs))
	for _, o := range objs {
		i, ok := o.(*tengo.Int)
		if !ok {
			return nil, false
		}
		out = append(out, int(i.Value))
	}
	return out, true
}

func compoundToMap(c *nbt.Compound) *tengo.Map {
	out := &tengo.Map{Value: make(map[string]tengo.Object, c.Len())}
	for _, k := range c.Keys() {
		typ, _ := c.TypeOf(k)
		switch typ {
		case nbt.TypeInt:
			out.Value[k] = &tengo.Int{Value: int64(c.GetInt(k))}
		case nbt.TypeFloat:
			out.Value[k] = &tengo.Float{Value: c.GetFloat(k)}
		case nbt.TypeString:
			out.Value[k] = &tengo.String{Value: c.GetString(k)}
		case nbt.TypeBool:
			if c.GetBool(k) {
				out.Value[k] = tengo.TrueValue
			} else {
				out.Value[k] = tengo.FalseValue
			}
		case nbt.TypeIntArray:
			ints := c.GetIntArray(k)
			arr := &tengo.Array{Value: make([]tengo.Object, len(ints))}
			for i, v := range ints {
				arr.Value[i] = &tengo.Int{Value: int64(v)}
			}
			out.Value[k] = arr
		case nbt.TypeCompound:
			out.Value[k] = compoundToMap(c.GetCompound(k))
		}
	}
	return out
}
