package protocol

import "math"

// MultiBlockChange updates several blocks inside one chunk column.
//
// Wire format:
//
//	[ChunkX: i32][ChunkZ: i32][N: i16]
//	[Coords: N × i16][Types: N × i8][Metadata: N × i8]
//
// The three arrays are distinct and parallel.
type MultiBlockChange struct {
	ChunkX, ChunkZ int32
	Coords         []int16
	Types          []int8
	Metadata       []int8
}

// BlockUpdate is one decoded MultiBlockChange entry, in chunk-relative
// coordinates.
type BlockUpdate struct {
	X, Y, Z  int
	Type     int8
	Metadata int8
}

// PackBlockCoord packs a chunk-relative position as XXXXZZZZYYYYYYYY.
func PackBlockCoord(x, y, z int) int16 {
	return int16(uint16(x&0x0F)<<12 | uint16(z&0x0F)<<8 | uint16(y&0xFF))
}

// Updates returns the changes as positioned entries.
func (p *MultiBlockChange) Updates() []BlockUpdate {
	out := make([]BlockUpdate, 0, len(p.Coords))
	for i, c := range p.Coords {
		if i >= len(p.Types) || i >= len(p.Metadata) {
			break
		}
		u := uint16(c)
		out = append(out, BlockUpdate{
			X:        int(u >> 12 & 0x0F),
			Z:        int(u >> 8 & 0x0F),
			Y:        int(u & 0xFF),
			Type:     p.Types[i],
			Metadata: p.Metadata[i],
		})
	}
	return out
}

func (*MultiBlockChange) Opcode() Opcode { return OpMultiBlockChange }

func (p *MultiBlockChange) encode(w *writer) {
	n := len(p.Coords)
	if len(p.Types) != n || len(p.Metadata) != n {
		w.failf("multi block change arrays have lengths %d, %d, %d", n, len(p.Types), len(p.Metadata))
		return
	}
	if n > math.MaxInt16 {
		w.fail(ErrCollectionTooLarge)
		return
	}
	w.i32(p.ChunkX)
	w.i32(p.ChunkZ)
	w.i16(int16(n))
	for _, c := range p.Coords {
		w.i16(c)
	}
	for _, t := range p.Types {
		w.i8(t)
	}
	for _, m := range p.Metadata {
		w.i8(m)
	}
}

func decodeMultiBlockChange(r *reader) Packet {
	p := &MultiBlockChange{ChunkX: r.i32(), ChunkZ: r.i32()}
	n := r.count(int64(r.i16()))
	if r.err != nil {
		return nil
	}
	p.Coords = make([]int16, n)
	for i := range p.Coords {
		p.Coords[i] = r.i16()
	}
	p.Types = make([]int8, n)
	for i := range p.Types {
		p.Types[i] = r.i8()
	}
	p.Metadata = make([]int8, n)
	for i := range p.Metadata {
		p.Metadata[i] = r.i8()
	}
	return p
}

// BlockChange updates a single block.
type BlockChange struct {
	X        int32
	Y        int8
	Z        int32
	Type     int8
	Metadata int8
}

func (*BlockChange) Opcode() Opcode { return OpBlockChange }

func (p *BlockChange) encode(w *writer) {
	w.i32(p.X)
	w.i8(p.Y)
	w.i32(p.Z)
	w.i8(p.Type)
	w.i8(p.Metadata)
}

func decodeBlockChange(r *reader) Packet {
	return &BlockChange{X: r.i32(), Y: r.i8(), Z: r.i32(), Type: r.i8(), Metadata: r.i8()}
}

// BlockAction plays a note block or moves a piston.
// For note blocks Data1 is the Instrument and Data2 the pitch; for pistons
// Data1 is the state and Data2 the PistonDirection.
type BlockAction struct {
	X            int32
	Y            int16
	Z            int32
	Data1, Data2 int8
}

func (*BlockAction) Opcode() Opcode { return OpBlockAction }

func (p *BlockAction) encode(w *writer) {
	w.i32(p.X)
	w.i16(p.Y)
	w.i32(p.Z)
	w.i8(p.Data1)
	w.i8(p.Data2)
}

func decodeBlockAction(r *reader) Packet {
	return &BlockAction{X: r.i32(), Y: r.i16(), Z: r.i32(), Data1: r.i8(), Data2: r.i8()}
}

// ExplosionRecord is a destroyed block offset from the explosion center.
type ExplosionRecord struct {
	DX, DY, DZ int8
}

// Explosion destroys the listed blocks.
type Explosion struct {
	X, Y, Z float64
	Radius  float32
	Records []ExplosionRecord
}

// Blocks returns the absolute positions of the destroyed blocks.
func (p *Explosion) Blocks() [][3]int {
	cx, cy, cz := int(math.Floor(p.X)), int(math.Floor(p.Y)), int(math.Floor(p.Z))
	out := make([][3]int, len(p.Records))
	for i, rec := range p.Records {
		out[i] = [3]int{cx + int(rec.DX), cy + int(rec.DY), cz + int(rec.DZ)}
	}
	return out
}

func (*Explosion) Opcode() Opcode { return OpExplosion }

func (p *Explosion) encode(w *writer) {
	if len(p.Records) > MaxCollectionCount {
		w.fail(ErrCollectionTooLarge)
		return
	}
	w.f64(p.X)
	w.f64(p.Y)
	w.f64(p.Z)
	w.f32(p.Radius)
	w.i32(int32(len(p.Records)))
	for _, rec := range p.Records {
		w.i8(rec.DX)
		w.i8(rec.DY)
		w.i8(rec.DZ)
	}
}

func decodeExplosion(r *reader) Packet {
	p := &Explosion{X: r.f64(), Y: r.f64(), Z: r.f64(), Radius: r.f32()}
	n := r.count(int64(r.i32()))
	if r.err != nil {
		return nil
	}
	p.Records = make([]ExplosionRecord, n)
	for i := range p.Records {
		p.Records[i] = ExplosionRecord{DX: r.i8(), DY: r.i8(), DZ: r.i8()}
	}
	return p
}

// SoundEffect plays a sound or particle effect at a block.
type SoundEffect struct {
	EffectID SoundEffectID
	X        int32
	Y        int8
	Z        int32
	Data     int32
}

func (*SoundEffect) Opcode() Opcode { return OpSoundEffect }

func (p *SoundEffect) encode(w *writer) {
	w.i32(int32(p.EffectID))
	w.i32(p.X)
	w.i8(p.Y)
	w.i32(p.Z)
	w.i32(p.Data)
}

func decodeSoundEffect(r *reader) Packet {
	return &SoundEffect{EffectID: SoundEffectID(r.i32()), X: r.i32(), Y: r.i8(), Z: r.i32(), Data: r.i32()}
}

// NewInvalidState reports a bed failure or a change in the weather.
type NewInvalidState struct {
	Reason InvalidStateReason
}

func (*NewInvalidState) Opcode() Opcode { return OpNewInvalidState }

func (p *NewInvalidState) encode(w *writer) {
	w.i8(int8(p.Reason))
}

func decodeNewInvalidState(r *reader) Packet {
	return &NewInvalidState{Reason: InvalidStateReason(r.i8())}
}

// UpdateSign sets the four text lines of a sign.
type UpdateSign struct {
	X     int32
	Y     int16
	Z     int32
	Lines [4]string
}

func (*UpdateSign) Opcode() Opcode { return OpUpdateSign }

func (p *UpdateSign) encode(w *writer) {
	w.i32(p.X)
	w.i16(p.Y)
	w.i32(p.Z)
	for _, line := range p.Lines {
		w.s16(line)
	}
}

func decodeUpdateSign(r *reader) Packet {
	p := &UpdateSign{X: r.i32(), Y: r.i16(), Z: r.i32()}
	for i := range p.Lines {
		p.Lines[i] = r.s16()
	}
	return p
}

// ItemData carries complex item data, such as map pixels.
type ItemData struct {
	ItemType int16
	ItemID   int16
	Text     []byte
}

func (*ItemData) Opcode() Opcode { return OpItemData }

func (p *ItemData) encode(w *writer) {
	if len(p.Text) > math.MaxUint8 {
		w.failf("item data is %d bytes, limit %d", len(p.Text), math.MaxUint8)
		return
	}
	w.i16(p.ItemType)
	w.i16(p.ItemID)
	w.u8(uint8(len(p.Text)))
	w.bytes(p.Text)
}

func decodeItemData(r *reader) Packet {
	p := &ItemData{ItemType: r.i16(), ItemID: r.i16()}
	n := int(r.u8())
	p.Text = r.bytes(n)
	return p
}

// IncrementStatistic bumps a player statistic.
type IncrementStatistic struct {
	StatisticID int32
	Amount      int8
}

func (*IncrementStatistic) Opcode() Opcode { return OpIncrementStatistic }

func (p *IncrementStatistic) encode(w *writer) {
	w.i32(p.StatisticID)
	w.i8(p.Amount)
}

func decodeIncrementStatistic(r *reader) Packet {
	return &IncrementStatistic{StatisticID: r.i32(), Amount: r.i8()}
}
