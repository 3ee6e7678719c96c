package protocol

import "fmt"

// MetadataType selects the value encoding of a metadata entry.
type MetadataType uint8

const (
	MetadataByte   MetadataType = 0 // int8
	MetadataShort  MetadataType = 1 // int16
	MetadataInt    MetadataType = 2 // int32
	MetadataFloat  MetadataType = 3 // float32
	MetadataString MetadataType = 4 // string16
	MetadataItem   MetadataType = 5 // MetadataItemValue
	MetadataVector MetadataType = 6 // MetadataVectorValue
)

// String returns the string representation of the metadata type.
func (t MetadataType) String() string {
	switch t {
	case MetadataByte:
		return "Byte"
	case MetadataShort:
		return "Short"
	case MetadataInt:
		return "Int"
	case MetadataFloat:
		return "Float"
	case MetadataString:
		return "String"
	case MetadataItem:
		return "Item"
	case MetadataVector:
		return "Vector"
	default:
		return "Unknown"
	}
}

// Metadata list framing.
const (
	// MetadataEnd terminates a metadata list.
	MetadataEnd = 0x7F

	// MaxMetadataIndex is the largest index that fits the control byte.
	MaxMetadataIndex = 0x1F
)

// MetadataItemValue is an item carried in entity metadata.
type MetadataItemValue struct {
	ID     int16
	Count  int8
	Damage int16
}

// MetadataVectorValue is a block position carried in entity metadata.
type MetadataVectorValue struct {
	X, Y, Z int32
}

// MetadataEntry is one element of an entity metadata list.
//
// Each entry starts with a control byte: the high three bits hold Type and
// the low five bits hold Index. Value has the Go type listed next to each
// MetadataType constant.
type MetadataEntry struct {
	Index uint8
	Type  MetadataType
	Value any
}

// Metadata builds an entry, inferring Type from the Go type of value.
// It panics on a value type with no metadata encoding.
func Metadata(index uint8, value any) MetadataEntry {
	var t MetadataType
	switch value.(type) {
	case int8:
		t = MetadataByte
	case int16:
		t = MetadataShort
	case int32:
		t = MetadataInt
	case float32:
		t = MetadataFloat
	case string:
		t = MetadataString
	case MetadataItemValue:
		t = MetadataItem
	case MetadataVectorValue:
		t = MetadataVector
	default:
		panic(fmt.Sprintf("protocol: no metadata encoding for %T", value))
	}
	return MetadataEntry{Index: index, Type: t, Value: value}
}

func writeMetadata(w *writer, entries []MetadataEntry) {
	if len(entries) > MaxCollectionCount {
		w.fail(ErrCollectionTooLarge)
		return
	}
	for _, e := range entries {
		if e.Index > MaxMetadataIndex || e.Type > MetadataVector {
			w.failf("metadata index %d type %d out of range", e.Index, e.Type)
			return
		}
		control := uint8(e.Type)<<5 | e.Index
		if control == MetadataEnd {
			w.failf("metadata control byte collides with terminator")
			return
		}
		w.u8(control)

		ok := true
		switch e.Type {
		case MetadataByte:
			v, is := e.Value.(int8)
			ok = is
			w.i8(v)
		case MetadataShort:
			v, is := e.Value.(int16)
			ok = is
			w.i16(v)
		case MetadataInt:
			v, is := e.Value.(int32)
			ok = is
			w.i32(v)
		case MetadataFloat:
			v, is := e.Value.(float32)
			ok = is
			w.f32(v)
		case MetadataString:
			v, is := e.Value.(string)
			ok = is
			w.s16(v)
		case MetadataItem:
			v, is := e.Value.(MetadataItemValue)
			ok = is
			w.i16(v.ID)
			w.i8(v.Count)
			w.i16(v.Damage)
		case MetadataVector:
			v, is := e.Value.(MetadataVectorValue)
			ok = is
			w.i32(v.X)
			w.i32(v.Y)
			w.i32(v.Z)
		}
		if !ok {
			w.failf("metadata index %d: %T is not a %s value", e.Index, e.Value, e.Type)
			return
		}
	}
	w.u8(MetadataEnd)
}

func readMetadata(r *reader) []MetadataEntry {
	var entries []MetadataEntry
	for r.err == nil {
		control := r.u8()
		if r.err != nil || control == MetadataEnd {
			break
		}
		if len(entries) >= MaxCollectionCount {
			r.fail(ErrCollectionTooLarge)
			break
		}

		e := MetadataEntry{Index: control & MaxMetadataIndex, Type: MetadataType(control >> 5)}
		switch e.Type {
		case MetadataByte:
			e.Value = r.i8()
		case MetadataShort:
			e.Value = r.i16()
		case MetadataInt:
			e.Value = r.i32()
		case MetadataFloat:
			e.Value = r.f32()
		case MetadataString:
			e.Value = r.s16()
		case MetadataItem:
			e.Value = MetadataItemValue{ID: r.i16(), Count: r.i8(), Damage: r.i16()}
		case MetadataVector:
			e.Value = MetadataVectorValue{X: r.i32(), Y: r.i32(), Z: r.i32()}
		default:
			r.failf("metadata type %d", e.Type)
		}
		entries = append(entries, e)
	}
	if r.err != nil {
		return nil
	}
	return entries
}
