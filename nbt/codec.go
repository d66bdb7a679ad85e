package nbt

import (
	"encoding/json"
	"fmt"

	"github.com/bytedance/sonic"
)

type wireTag struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// Marshal encodes c as JSON, one {"type","value"} object per key.
func Marshal(c *Compound) ([]byte, error) {
	if c == nil {
		c = New()
	}
	return c.MarshalJSON()
}

// Unmarshal decodes data produced by Marshal.
func Unmarshal(data []byte) (*Compound, error) {
	c := New()
	if err := c.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Compound) MarshalJSON() ([]byte, error) {
	wire := make(map[string]wireTag, c.Len())
	for _, k := range c.Keys() {
		t := c.tags[k]
		raw, err := sonic.Marshal(t.value)
		if err != nil {
			return nil, fmt.Errorf("nbt: encode %q: %w", k, err)
		}
		wire[k] = wireTag{Type: t.typ.String(), Value: raw}
	}
	return sonic.ConfigStd.Marshal(wire)
}

func (c *Compound) UnmarshalJSON(data []byte) error {
	var wire map[string]wireTag
	if err := sonic.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("nbt: decode: %w", err)
	}
	c.tags = make(map[string]tag, len(wire))
	for k, w := range wire {
		typ, ok := parseType(w.Type)
		if !ok {
			// Unknown tag types are skipped, matching the absent-key contract.
			continue
		}
		v, err := decodeValue(typ, w.Value)
		if err != nil {
			return fmt.Errorf("nbt: decode %q: %w", k, err)
		}
		c.tags[k] = tag{typ: typ, value: v}
	}
	return nil
}

func decodeValue(typ Type, raw []byte) (any, error) {
	switch typ {
	case TypeInt:
		var v int64
		err := sonic.Unmarshal(raw, &v)
		return v, err
	case TypeFloat:
		var v float64
		err := sonic.Unmarshal(raw, &v)
		return v, err
	case TypeString:
		var v string
		err := sonic.Unmarshal(raw, &v)
		return v, err
	case TypeBool:
		var v bool
		err := sonic.Unmarshal(raw, &v)
		return v, err
	case TypeIntArray:
		var v []int
		err := sonic.Unmarshal(raw, &v)
		if v == nil {
			v = []int{}
		}
		return v, err
	case TypeCompound:
		nested := New()
		err := nested.UnmarshalJSON(raw)
		return nested, err
	}
	return nil, fmt.Errorf("unsupported type %d", typ)
}
