package nbt

import (
	"bytes"
	"strconv"
)

// Type identifies the kind of a tag. It is the first byte of every tag on
// the wire.
type Type uint8

const (
	TypeEnd       Type = 0
	TypeByte      Type = 1
	TypeShort     Type = 2
	TypeInt       Type = 3
	TypeLong      Type = 4
	TypeFloat     Type = 5
	TypeDouble    Type = 6
	TypeByteArray Type = 7
	TypeString    Type = 8
	TypeList      Type = 9
	TypeCompound  Type = 10
)

var typeNames = [...]string{
	"End", "Byte", "Short", "Int", "Long", "Float", "Double",
	"ByteArray", "String", "List", "Compound",
}

// String returns the string representation of the tag type.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}

// Valid reports whether t is a known tag type.
func (t Type) Valid() bool {
	return t <= TypeCompound
}

// Tag is one node of an NBT tree.
//
// Only the payload field matching Type is meaningful:
//
//	Byte, Short, Int, Long   Int
//	Float, Double            Float
//	ByteArray                Bytes
//	String                   Text
//	List                     Elem and Items
//	Compound                 Fields
//
// A compound owns its fields and a list owns its items; trees never share
// nodes. List items are written without names, so any Name they carry is
// lost on a round trip.
type Tag struct {
	Type Type
	Name string

	Int    int64
	Float  float64
	Bytes  []byte
	Text   string
	Elem   Type
	Items  []*Tag
	Fields map[string]*Tag
}

// End returns the terminator tag.
func End() *Tag { return &Tag{Type: TypeEnd} }

// NewByte creates a Byte tag.
func NewByte(name string, v int8) *Tag {
	return &Tag{Type: TypeByte, Name: name, Int: int64(v)}
}

// NewShort creates a Short tag.
func NewShort(name string, v int16) *Tag {
	return &Tag{Type: TypeShort, Name: name, Int: int64(v)}
}

// NewInt creates an Int tag.
func NewInt(name string, v int32) *Tag {
	return &Tag{Type: TypeInt, Name: name, Int: int64(v)}
}

// NewLong creates a Long tag.
func NewLong(name string, v int64) *Tag {
	return &Tag{Type: TypeLong, Name: name, Int: v}
}

// NewFloat creates a Float tag.
func NewFloat(name string, v float32) *Tag {
	return &Tag{Type: TypeFloat, Name: name, Float: float64(v)}
}

// NewDouble creates a Double tag.
func NewDouble(name string, v float64) *Tag {
	return &Tag{Type: TypeDouble, Name: name, Float: v}
}

// NewByteArray creates a ByteArray tag. The slice is not copied.
func NewByteArray(name string, v []byte) *Tag {
	return &Tag{Type: TypeByteArray, Name: name, Bytes: v}
}

// NewString creates a String tag.
func NewString(name, v string) *Tag {
	return &Tag{Type: TypeString, Name: name, Text: v}
}

// NewList creates a List tag. The element type is taken from the first item;
// an empty list gets TypeByte. Items are not checked for a common type.
func NewList(name string, items ...*Tag) *Tag {
	elem := TypeByte
	if len(items) > 0 && items[0] != nil {
		elem = items[0].Type
	}
	return &Tag{Type: TypeList, Name: name, Elem: elem, Items: items}
}

// NewCompound creates a Compound tag holding fields keyed by their names.
func NewCompound(name string, fields ...*Tag) *Tag {
	t := &Tag{Type: TypeCompound, Name: name, Fields: make(map[string]*Tag, len(fields))}
	for _, f := range fields {
		t.Set(f)
	}
	return t
}

// Get returns the named field of a compound, or nil.
func (t *Tag) Get(name string) *Tag {
	if t == nil || t.Type != TypeCompound {
		return nil
	}
	return t.Fields[name]
}

// Set stores child in a compound under child.Name, replacing any field with
// the same name.
func (t *Tag) Set(child *Tag) {
	if t.Fields == nil {
		t.Fields = make(map[string]*Tag)
	}
	t.Fields[child.Name] = child
}

// Len returns the number of list items or compound fields.
func (t *Tag) Len() int {
	switch t.Type {
	case TypeList:
		return len(t.Items)
	case TypeCompound:
		return len(t.Fields)
	case TypeByteArray:
		return len(t.Bytes)
	default:
		return 0
	}
}

// Equal reports whether a and b have the same type, name, and payload.
// Compound field order is not significant.
func Equal(a, b *Tag) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type || a.Name != b.Name {
		return false
	}
	return equalPayload(a, b)
}

func equalPayload(a, b *Tag) bool {
	switch a.Type {
	case TypeEnd:
		return true
	case TypeByte, TypeShort, TypeInt, TypeLong:
		return a.Int == b.Int
	case TypeFloat, TypeDouble:
		return a.Float == b.Float
	case TypeByteArray:
		return bytes.Equal(a.Bytes, b.Bytes)
	case TypeString:
		return a.Text == b.Text
	case TypeList:
		if a.Elem != b.Elem || len(a.Items) != len(b.Items) {
			return false
		}
		for i := range a.Items {
			// Items are unnamed on the wire.
			if a.Items[i].Type != b.Items[i].Type || !equalPayload(a.Items[i], b.Items[i]) {
				return false
			}
		}
		return true
	case TypeCompound:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for name, fa := range a.Fields {
			if !Equal(fa, b.Fields[name]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
