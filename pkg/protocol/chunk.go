package protocol

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
)

// PreChunk tells the client to allocate (Load true) or free a chunk column.
type PreChunk struct {
	X, Z int32
	Load bool
}

func (*PreChunk) Opcode() Opcode { return OpPreChunk }

func (p *PreChunk) encode(w *writer) {
	w.i32(p.X)
	w.i32(p.Z)
	w.bool(p.Load)
}

func decodePreChunk(r *reader) Packet {
	return &PreChunk{X: r.i32(), Z: r.i32(), Load: r.bool()}
}

// MapChunk carries a cuboid of voxel data.
//
// Wire format:
//
//	[X: i32][Y: i16][Z: i32][SizeX-1: u8][SizeY-1: u8][SizeZ-1: u8]
//	[CompressedSize: i32][zlib stream: CompressedSize bytes]
//
// The stream inflates to exactly SizeX*SizeY*SizeZ*5/2 bytes: one block id
// per voxel followed by three nibble arrays (metadata, block light, sky
// light). Data holds the inflated bytes; see Voxels.
type MapChunk struct {
	X                   int32
	Y                   int16
	Z                   int32
	SizeX, SizeY, SizeZ int
	Data                []byte
}

// VoxelDataSize returns the inflated payload size for the given dimensions.
func VoxelDataSize(sx, sy, sz int) int {
	return sx * sy * sz * 5 / 2
}

func (*MapChunk) Opcode() Opcode { return OpMapChunk }

func (p *MapChunk) encode(w *writer) {
	if !validChunkSize(p.SizeX) || !validChunkSize(p.SizeY) || !validChunkSize(p.SizeZ) {
		w.failf("chunk size %dx%dx%d", p.SizeX, p.SizeY, p.SizeZ)
		return
	}
	if want := VoxelDataSize(p.SizeX, p.SizeY, p.SizeZ); len(p.Data) != want {
		w.failf("chunk data is %d bytes, want %d", len(p.Data), want)
		return
	}
	compressed, err := compressChunk(p.Data)
	if err != nil {
		w.fail(err)
		return
	}
	w.i32(p.X)
	w.i16(p.Y)
	w.i32(p.Z)
	w.u8(uint8(p.SizeX - 1))
	w.u8(uint8(p.SizeY - 1))
	w.u8(uint8(p.SizeZ - 1))
	w.i32(int32(len(compressed)))
	w.bytes(compressed)
}

func decodeMapChunk(r *reader) Packet {
	p := &MapChunk{
		X:     r.i32(),
		Y:     r.i16(),
		Z:     r.i32(),
		SizeX: int(r.u8()) + 1,
		SizeY: int(r.u8()) + 1,
		SizeZ: int(r.u8()) + 1,
	}
	n := r.i32()
	if r.err != nil {
		return nil
	}
	if n < 0 {
		r.failf("negative compressed size %d", n)
		return nil
	}
	if n > DefaultMaxAllocation {
		r.fail(ErrAllocationTooLarge)
		return nil
	}
	compressed := r.bytes(int(n))
	if r.err != nil {
		return nil
	}
	data, err := inflateChunk(compressed, VoxelDataSize(p.SizeX, p.SizeY, p.SizeZ))
	if err != nil {
		r.fail(err)
		return nil
	}
	p.Data = data
	return p
}

func validChunkSize(n int) bool {
	return n >= 1 && n <= 256
}

func compressChunk(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// inflateChunk decompresses the whole payload before anything is parsed
// from it. The stream must produce exactly size bytes.
func inflateChunk(compressed []byte, size int) ([]byte, error) {
	if size > HardMaxAllocation {
		return nil, ErrAllocationTooLarge
	}
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("%w: chunk payload: %v", ErrMalformed, err)
	}
	defer zr.Close()

	data := make([]byte, size)
	if _, err := io.ReadFull(zr, data); err != nil {
		return nil, fmt.Errorf("%w: chunk payload shorter than %d bytes: %v", ErrMalformed, size, err)
	}
	var extra [1]byte
	if n, _ := zr.Read(extra[:]); n > 0 {
		return nil, fmt.Errorf("%w: chunk payload longer than %d bytes", ErrMalformed, size)
	}
	return data, nil
}

// ChunkData is the inflated MapChunk payload split into its sections.
// Voxel i lives at Blocks[i]; its nibbles are read with Nibble.
type ChunkData struct {
	SizeX, SizeY, SizeZ int
	Blocks              []byte
	Metadata            []byte
	BlockLight          []byte
	SkyLight            []byte
}

// Voxels splits Data into its sections. The slices alias Data.
func (p *MapChunk) Voxels() ChunkData {
	n := p.SizeX * p.SizeY * p.SizeZ
	half := n / 2
	cd := ChunkData{SizeX: p.SizeX, SizeY: p.SizeY, SizeZ: p.SizeZ}
	if len(p.Data) < n+3*half {
		return cd
	}
	cd.Blocks = p.Data[:n]
	cd.Metadata = p.Data[n : n+half]
	cd.BlockLight = p.Data[n+half : n+2*half]
	cd.SkyLight = p.Data[n+2*half : n+3*half]
	return cd
}

// Index returns the voxel index of a position relative to the chunk origin.
// Y varies fastest, then Z, then X.
func (cd ChunkData) Index(x, y, z int) int {
	return y + z*cd.SizeY + x*cd.SizeY*cd.SizeZ
}

// Block returns the block id at a relative position.
func (cd ChunkData) Block(x, y, z int) byte {
	return cd.Blocks[cd.Index(x, y, z)]
}

// Nibble returns the 4-bit value for voxel i in a packed nibble array.
// Even indices use the low half of the byte.
func Nibble(arr []byte, i int) byte {
	b := arr[i/2]
	if i%2 == 0 {
		return b & 0x0F
	}
	return b >> 4
}

// SetNibble stores a 4-bit value for voxel i.
func SetNibble(arr []byte, i int, v byte) {
	b := &arr[i/2]
	if i%2 == 0 {
		*b = (*b & 0xF0) | (v & 0x0F)
	} else {
		*b = (*b & 0x0F) | (v << 4)
	}
}
