package protocol

import (
	"testing"
)

// === Cursor Benchmarks ===

func BenchmarkCursor_WriteMixed(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c := NewCursor(1 + 2 + 4 + 8 + 8)
		c.WriteUint8(0x42)
		c.WriteInt16(-1234)
		c.WriteInt32(-12345678)
		c.WriteInt64(-123456789012345)
		c.WriteFloat64(2.718281828459045)
	}
}

func BenchmarkCursor_String16(b *testing.B) {
	s := "<Steve> hello world"
	c := NewCursor(String16Size(s))
	c.WriteString16(s)
	data := c.Bytes()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NewReadCursor(data).ReadString16()
	}
}

// === Packet Benchmarks ===

func BenchmarkPacket_EncodePosition(b *testing.B) {
	p := &PlayerPositionAndLook{X: 1, Y: 65.62, Stance: 64, Z: 2, Yaw: 180, OnGround: true}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Encode(p)
	}
}

func BenchmarkPacket_DecodePosition(b *testing.B) {
	data := mustEncode(b, &PlayerPositionAndLook{X: 1, Y: 65.62, Stance: 64, Z: 2, Yaw: 180, OnGround: true})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Decode(data)
	}
}

func BenchmarkPacket_DecodeMetadata(b *testing.B) {
	data := mustEncode(b, &MobSpawn{EntityID: 1, Type: MobSheep, Metadata: []MetadataEntry{
		Metadata(0, int8(0)),
		Metadata(16, int8(WoolBlack)),
	}})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Decode(data)
	}
}

func BenchmarkPacket_DecodeWindowItems(b *testing.B) {
	items := make([]Slot, 45)
	for i := range items {
		items[i] = Slot{ID: EmptySlotID}
	}
	items[36] = Slot{ID: 276, Count: 1}
	data := mustEncode(b, &WindowItems{Items: items})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Decode(data)
	}
}

// === Chunk Benchmarks ===

func BenchmarkChunk_DecodeFullColumn(b *testing.B) {
	data := mustEncode(b, &MapChunk{SizeX: 16, SizeY: 128, SizeZ: 16, Data: make([]byte, VoxelDataSize(16, 128, 16))})
	b.SetBytes(int64(VoxelDataSize(16, 128, 16)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Decode(data)
	}
}

// === Stream Benchmarks ===

func BenchmarkStream_Reassemble(b *testing.B) {
	var stream []byte
	for i := 0; i < 100; i++ {
		stream = append(stream, mustEncode(b, &EntityLookAndRelativeMove{EntityID: int32(i), DX: 1})...)
	}
	b.SetBytes(int64(len(stream)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ra := NewReassembler()
		ra.Feed(stream[:len(stream)/3])
		ra.Feed(stream[len(stream)/3:])
	}
}
