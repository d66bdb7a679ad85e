package nbt

import "testing"

func TestCompoundAbsentKeysYieldZero(t *testing.T) {
	c := New()
	c.SetString("Name", "maid")

	if c.GetInt("Missing") != 0 || c.GetString("Missing") != "" || c.GetBool("Missing") {
		t.Fatalf("absent keys must read as zero values")
	}
	if c.GetInt("Name") != 0 {
		t.Fatalf("type mismatch must read as zero")
	}
	if c.GetIntArray("Missing") != nil {
		t.Fatalf("absent int array must be nil")
	}
	if c.GetCompound("Missing").Len() != 0 {
		t.Fatalf("absent compound must be empty")
	}
}

func TestCompoundCopiesOnSet(t *testing.T) {
	c := New()
	arr := []int{1, 2, 3}
	c.SetIntArray("Tile", arr)
	arr[0] = 99
	if got := c.GetIntArray("Tile"); got[0] != 1 {
		t.Fatalf("SetIntArray must copy, got %v", got)
	}

	nested := New()
	nested.SetInt("A", 1)
	c.SetCompound("Nested", nested)
	nested.SetInt("A", 2)
	if c.GetCompound("Nested").GetInt("A") != 1 {
		t.Fatalf("SetCompound must deep copy")
	}
}

func TestCodecRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Compound
	}{
		{"empty", New},
		{
			name: "scalars",
			build: func() *Compound {
				c := New()
				c.SetInt("Mode", 0x0080)
				c.SetFloat("Health", 19.5)
				c.SetString("Owner", "steve")
				c.SetBool("Bloodsuck", true)
				return c
			},
		},
		{
			name: "nested",
			build: func() *Compound {
				inner := New()
				inner.SetIntArray("Tile", []int{10, 64, -3})
				c := New()
				c.SetCompound("Cook", inner)
				c.SetIntArray("Empty", []int{})
				return c
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := tc.build()
			data, err := Marshal(in)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			out, err := Unmarshal(data)
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !in.Equal(out) {
				t.Fatalf("round trip mismatch: %s", data)
			}
		})
	}
}

func TestUnmarshalSkipsUnknownTypes(t *testing.T) {
	data := []byte(`{"A":{"type":"int","value":3},"B":{"type":"long_array","value":[1]}}`)
	c, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if c.GetInt("A") != 3 || c.HasKey("B") {
		t.Fatalf("expected only A to survive, keys=%v", c.Keys())
	}
}
