package protocol

import (
	"errors"
	"reflect"
	"testing"
)

func TestMetadataControlByte(t *testing.T) {
	p := &EntityMetadata{EntityID: 1, Metadata: []MetadataEntry{
		Metadata(0, int8(MobFlagCrouched)),
		Metadata(16, int8(WolfFlagSitting|WolfFlagTamed)),
		Metadata(8, int32(5)),
	}}
	data := mustEncode(t, p)

	// opcode, entity id, then (0<<5|0), 0x02, (0<<5|16), 0x05, (2<<5|8), int32, 0x7F
	want := []byte{
		byte(OpEntityMetadata), 0, 0, 0, 1,
		0x00, 0x02,
		0x10, 0x05,
		0x48, 0, 0, 0, 5,
		MetadataEnd,
	}
	if !reflect.DeepEqual(data, want) {
		t.Errorf("Encode() = % X, want % X", data, want)
	}
}

func TestMetadataEntryCount(t *testing.T) {
	entries := []MetadataEntry{
		Metadata(0, int8(1)),
		Metadata(1, int16(2)),
		Metadata(2, float32(1.25)),
	}
	frame, err := Decode(mustEncode(t, &EntityMetadata{EntityID: 9, Metadata: entries}))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	got := frame.Packet.(*EntityMetadata).Metadata
	if len(got) != 3 {
		t.Fatalf("len(Metadata) = %d, want 3", len(got))
	}
	if got[2].Type != MetadataFloat || got[2].Value != float32(1.25) {
		t.Errorf("Metadata[2] = %+v, want Float 1.25", got[2])
	}
}

func TestMetadataEmpty(t *testing.T) {
	data := mustEncode(t, &EntityMetadata{EntityID: 9})
	if data[len(data)-1] != MetadataEnd || len(data) != 1+4+1 {
		t.Errorf("Encode() = % X, want opcode, id, terminator", data)
	}
	frame, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got := frame.Packet.(*EntityMetadata).Metadata; len(got) != 0 {
		t.Errorf("Metadata = %v, want empty", got)
	}
}

func TestMetadataTerminatorCollision(t *testing.T) {
	// Type 3 (Float) at index 31 would produce the 0x7F control byte.
	_, err := Encode(&EntityMetadata{Metadata: []MetadataEntry{Metadata(31, float32(1))}})
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("error = %v, want ErrMalformed", err)
	}
}

func TestMetadataUnknownType(t *testing.T) {
	// Control byte 0xE0 carries type 7.
	data := []byte{byte(OpEntityMetadata), 0, 0, 0, 1, 0xE0, 0x00, MetadataEnd}
	if _, err := Decode(data); !errors.Is(err, ErrMalformed) {
		t.Errorf("error = %v, want ErrMalformed", err)
	}
}

func TestMetadataMissingTerminator(t *testing.T) {
	data := []byte{byte(OpEntityMetadata), 0, 0, 0, 1, 0x00, 0x01}
	if _, err := Decode(data); !errors.Is(err, ErrBoundsViolation) {
		t.Errorf("error = %v, want ErrBoundsViolation", err)
	}
}

func TestMetadataPanicsOnUnsupportedValue(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Metadata(0, int64) did not panic")
		}
	}()
	Metadata(0, int64(1))
}
