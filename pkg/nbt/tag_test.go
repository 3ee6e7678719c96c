package nbt

import "testing"

func TestCompoundGetSet(t *testing.T) {
	c := NewCompound("root", NewInt("a", 1))
	if got := c.Get("a"); got == nil || got.Int != 1 {
		t.Fatalf("Get(a) = %+v, want Int 1", got)
	}
	c.Set(NewInt("a", 2))
	if got := c.Get("a"); got.Int != 2 || c.Len() != 1 {
		t.Errorf("after Set: Get(a) = %d, Len = %d; want 2, 1", got.Int, c.Len())
	}
	if c.Get("missing") != nil {
		t.Error("Get(missing) != nil")
	}
	if NewInt("x", 1).Get("a") != nil {
		t.Error("Get on non-compound != nil")
	}

	var zero Tag
	zero.Type = TypeCompound
	zero.Set(NewByte("b", 1))
	if zero.Get("b") == nil {
		t.Error("Set on zero compound did not allocate fields")
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Tag
		want bool
	}{
		{"same_int", NewInt("x", 1), NewInt("x", 1), true},
		{"different_value", NewInt("x", 1), NewInt("x", 2), false},
		{"different_name", NewInt("x", 1), NewInt("y", 1), false},
		{"different_type", NewInt("x", 1), NewLong("x", 1), false},
		{"nil_nil", nil, nil, true},
		{"nil_tag", nil, End(), false},
		{"list_item_names_ignored", NewList("l", NewByte("a", 1)), NewList("l", NewByte("", 1)), true},
		{"list_length", NewList("l", NewByte("", 1)), NewList("l"), false},
		{"compound_order", NewCompound("c", NewByte("a", 1), NewByte("b", 2)), NewCompound("c", NewByte("b", 2), NewByte("a", 1)), true},
		{"compound_missing", NewCompound("c", NewByte("a", 1)), NewCompound("c", NewByte("b", 1)), false},
		{"bytes", NewByteArray("b", []byte{1}), NewByteArray("b", []byte{1}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTypeString(t *testing.T) {
	if TypeCompound.String() != "Compound" {
		t.Errorf("TypeCompound.String() = %q", TypeCompound.String())
	}
	if Type(99).String() != "Type(99)" {
		t.Errorf("Type(99).String() = %q", Type(99).String())
	}
}
