package protocol

import (
	"bytes"
	"compress/zlib"
	"errors"
	"testing"
)

// mapChunkPayload builds a MapChunk body around an arbitrary compressed
// payload, bypassing the encoder's validation.
func mapChunkPayload(sx, sy, sz int, compressed []byte) []byte {
	c := NewCursor(1 + 4 + 2 + 4 + 3 + 4 + len(compressed))
	c.WriteUint8(uint8(OpMapChunk))
	c.WriteInt32(0)
	c.WriteInt16(0)
	c.WriteInt32(0)
	c.WriteUint8(uint8(sx - 1))
	c.WriteUint8(uint8(sy - 1))
	c.WriteUint8(uint8(sz - 1))
	c.WriteInt32(int32(len(compressed)))
	c.WriteBytes(compressed)
	return c.Bytes()
}

func deflate(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	zw.Write(data)
	if err := zw.Close(); err != nil {
		t.Fatalf("zlib Close() error = %v", err)
	}
	return buf.Bytes()
}

func TestMapChunkFullColumn(t *testing.T) {
	data := make([]byte, VoxelDataSize(16, 128, 16))
	if len(data) != 81920 {
		t.Fatalf("VoxelDataSize(16, 128, 16) = %d, want 81920", len(data))
	}
	data[0] = 7

	p := &MapChunk{X: 0, Y: 0, Z: 0, SizeX: 16, SizeY: 128, SizeZ: 16, Data: data}
	frame, err := Decode(mustEncode(t, p))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	got := frame.Packet.(*MapChunk)
	if got.SizeX != 16 || got.SizeY != 128 || got.SizeZ != 16 {
		t.Errorf("size = %dx%dx%d, want 16x128x16", got.SizeX, got.SizeY, got.SizeZ)
	}
	if len(got.Data) != 81920 || got.Data[0] != 7 {
		t.Errorf("len(Data) = %d, Data[0] = %d; want 81920, 7", len(got.Data), got.Data[0])
	}
}

func TestMapChunkSizeMismatch(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"short", VoxelDataSize(2, 2, 2) - 1},
		{"long", VoxelDataSize(2, 2, 2) + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := mapChunkPayload(2, 2, 2, deflate(t, make([]byte, tt.size)))
			frame, err := Decode(data)
			if frame != nil {
				t.Error("frame != nil")
			}
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("error = %v, want ErrMalformed", err)
			}
		})
	}
}

func TestMapChunkCorruptStream(t *testing.T) {
	data := mapChunkPayload(2, 2, 2, []byte{0xDE, 0xAD, 0xBE, 0xEF})
	if _, err := Decode(data); !errors.Is(err, ErrMalformed) {
		t.Errorf("error = %v, want ErrMalformed", err)
	}
}

func TestMapChunkNegativeSize(t *testing.T) {
	c := NewCursor(1 + 4 + 2 + 4 + 3 + 4)
	c.WriteUint8(uint8(OpMapChunk))
	c.SkipWrite(4 + 2 + 4 + 3)
	c.WriteInt32(-1)
	if _, err := Decode(c.Bytes()); !errors.Is(err, ErrMalformed) {
		t.Errorf("error = %v, want ErrMalformed", err)
	}
}

func TestMapChunkOversizedPayload(t *testing.T) {
	c := NewCursor(1 + 4 + 2 + 4 + 3 + 4)
	c.WriteUint8(uint8(OpMapChunk))
	c.SkipWrite(4 + 2 + 4 + 3)
	c.WriteInt32(DefaultMaxAllocation + 1)
	if _, err := Decode(c.Bytes()); !errors.Is(err, ErrAllocationTooLarge) {
		t.Errorf("error = %v, want ErrAllocationTooLarge", err)
	}
}

func TestChunkVoxels(t *testing.T) {
	const sx, sy, sz = 2, 4, 2
	n := sx * sy * sz
	data := make([]byte, VoxelDataSize(sx, sy, sz))
	p := &MapChunk{SizeX: sx, SizeY: sy, SizeZ: sz, Data: data}
	cd := p.Voxels()

	if len(cd.Blocks) != n || len(cd.Metadata) != n/2 || len(cd.BlockLight) != n/2 || len(cd.SkyLight) != n/2 {
		t.Fatalf("section lengths = %d, %d, %d, %d", len(cd.Blocks), len(cd.Metadata), len(cd.BlockLight), len(cd.SkyLight))
	}

	// Y varies fastest.
	if got := cd.Index(0, 1, 0); got != 1 {
		t.Errorf("Index(0, 1, 0) = %d, want 1", got)
	}
	if got := cd.Index(0, 0, 1); got != sy {
		t.Errorf("Index(0, 0, 1) = %d, want %d", got, sy)
	}
	if got := cd.Index(1, 0, 0); got != sy*sz {
		t.Errorf("Index(1, 0, 0) = %d, want %d", got, sy*sz)
	}

	cd.Blocks[cd.Index(1, 2, 1)] = 42
	if got := cd.Block(1, 2, 1); got != 42 {
		t.Errorf("Block(1, 2, 1) = %d, want 42", got)
	}

	SetNibble(cd.Metadata, 4, 0x0A)
	SetNibble(cd.Metadata, 5, 0x0B)
	if cd.Metadata[2] != 0xBA {
		t.Errorf("Metadata[2] = 0x%02X, want 0xBA", cd.Metadata[2])
	}
	if Nibble(cd.Metadata, 4) != 0x0A || Nibble(cd.Metadata, 5) != 0x0B {
		t.Errorf("Nibble() = 0x%X, 0x%X; want 0xA, 0xB", Nibble(cd.Metadata, 4), Nibble(cd.Metadata, 5))
	}
}
