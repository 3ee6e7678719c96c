package protocol

// UseEntity is sent when the player attacks or right-clicks an entity.
type UseEntity struct {
	User      int32
	Target    int32
	LeftClick bool
}

func (*UseEntity) Opcode() Opcode { return OpUseEntity }

func (p *UseEntity) encode(w *writer) {
	w.i32(p.User)
	w.i32(p.Target)
	w.bool(p.LeftClick)
}

func decodeUseEntity(r *reader) Packet {
	return &UseEntity{User: r.i32(), Target: r.i32(), LeftClick: r.bool()}
}

// Player reports only whether the player stands on the ground.
type Player struct {
	OnGround bool
}

func (*Player) Opcode() Opcode { return OpPlayer }

func (p *Player) encode(w *writer) {
	w.bool(p.OnGround)
}

func decodePlayer(r *reader) Packet {
	return &Player{OnGround: r.bool()}
}

// PlayerPosition updates the player's position. Stance is the eye height
// in absolute coordinates.
type PlayerPosition struct {
	X, Y, Stance, Z float64
	OnGround        bool
}

func (*PlayerPosition) Opcode() Opcode { return OpPlayerPosition }

func (p *PlayerPosition) encode(w *writer) {
	w.f64(p.X)
	w.f64(p.Y)
	w.f64(p.Stance)
	w.f64(p.Z)
	w.bool(p.OnGround)
}

func decodePlayerPosition(r *reader) Packet {
	return &PlayerPosition{X: r.f64(), Y: r.f64(), Stance: r.f64(), Z: r.f64(), OnGround: r.bool()}
}

// PlayerLook updates the player's view angles in degrees.
type PlayerLook struct {
	Yaw, Pitch float32
	OnGround   bool
}

func (*PlayerLook) Opcode() Opcode { return OpPlayerLook }

func (p *PlayerLook) encode(w *writer) {
	w.f32(p.Yaw)
	w.f32(p.Pitch)
	w.bool(p.OnGround)
}

func decodePlayerLook(r *reader) Packet {
	return &PlayerLook{Yaw: r.f32(), Pitch: r.f32(), OnGround: r.bool()}
}

// PlayerPositionAndLook combines PlayerPosition and PlayerLook.
//
// One layout is used in both directions. Servers put the stance in the
// second slot and Y in the third, so on a server-sent packet Y holds the
// stance and Stance holds the feet position.
type PlayerPositionAndLook struct {
	X, Y, Stance, Z float64
	Yaw, Pitch      float32
	OnGround        bool
}

func (*PlayerPositionAndLook) Opcode() Opcode { return OpPlayerPositionAndLook }

func (p *PlayerPositionAndLook) encode(w *writer) {
	w.f64(p.X)
	w.f64(p.Y)
	w.f64(p.Stance)
	w.f64(p.Z)
	w.f32(p.Yaw)
	w.f32(p.Pitch)
	w.bool(p.OnGround)
}

func decodePlayerPositionAndLook(r *reader) Packet {
	return &PlayerPositionAndLook{
		X:        r.f64(),
		Y:        r.f64(),
		Stance:   r.f64(),
		Z:        r.f64(),
		Yaw:      r.f32(),
		Pitch:    r.f32(),
		OnGround: r.bool(),
	}
}

// PlayerDigging reports block breaking progress.
type PlayerDigging struct {
	Status DiggingStatus
	X      int32
	Y      int8
	Z      int32
	Face   Face
}

func (*PlayerDigging) Opcode() Opcode { return OpPlayerDigging }

func (p *PlayerDigging) encode(w *writer) {
	w.i8(int8(p.Status))
	w.i32(p.X)
	w.i8(p.Y)
	w.i32(p.Z)
	w.i8(int8(p.Face))
}

func decodePlayerDigging(r *reader) Packet {
	return &PlayerDigging{
		Status: DiggingStatus(r.i8()),
		X:      r.i32(),
		Y:      r.i8(),
		Z:      r.i32(),
		Face:   Face(r.i8()),
	}
}

// PlayerBlockPlacement places the held item against a block face.
//
// Wire format:
//
//	[X: i32][Y: i8][Z: i32][Direction: i8][ItemID: i16]
//	[Amount: i8][Damage: i16]   only when ItemID >= 0
type PlayerBlockPlacement struct {
	X         int32
	Y         int8
	Z         int32
	Direction Face
	Item      Slot
}

func (*PlayerBlockPlacement) Opcode() Opcode { return OpPlayerBlockPlacement }

func (p *PlayerBlockPlacement) encode(w *writer) {
	w.i32(p.X)
	w.i8(p.Y)
	w.i32(p.Z)
	w.i8(int8(p.Direction))
	w.i16(p.Item.ID)
	if p.Item.ID >= 0 {
		w.i8(p.Item.Count)
		w.i16(p.Item.Damage)
	}
}

func decodePlayerBlockPlacement(r *reader) Packet {
	p := &PlayerBlockPlacement{
		X:         r.i32(),
		Y:         r.i8(),
		Z:         r.i32(),
		Direction: Face(r.i8()),
	}
	p.Item.ID = r.i16()
	if p.Item.ID >= 0 {
		p.Item.Count = r.i8()
		p.Item.Damage = r.i16()
	}
	return p
}

// HoldingChange selects a hotbar slot (0-8).
type HoldingChange struct {
	Slot int16
}

func (*HoldingChange) Opcode() Opcode { return OpHoldingChange }

func (p *HoldingChange) encode(w *writer) {
	w.i16(p.Slot)
}

func decodeHoldingChange(r *reader) Packet {
	return &HoldingChange{Slot: r.i16()}
}

// UseBed puts a player into a bed at the given block.
type UseBed struct {
	EntityID int32
	InBed    int8
	X        int32
	Y        int8
	Z        int32
}

func (*UseBed) Opcode() Opcode { return OpUseBed }

func (p *UseBed) encode(w *writer) {
	w.i32(p.EntityID)
	w.i8(p.InBed)
	w.i32(p.X)
	w.i8(p.Y)
	w.i32(p.Z)
}

func decodeUseBed(r *reader) Packet {
	return &UseBed{EntityID: r.i32(), InBed: r.i8(), X: r.i32(), Y: r.i8(), Z: r.i32()}
}

// Animation plays an animation on an entity.
type Animation struct {
	EntityID  int32
	Animation AnimationType
}

func (*Animation) Opcode() Opcode { return OpAnimation }

func (p *Animation) encode(w *writer) {
	w.i32(p.EntityID)
	w.i8(int8(p.Animation))
}

func decodeAnimation(r *reader) Packet {
	return &Animation{EntityID: r.i32(), Animation: AnimationType(r.i8())}
}

// EntityAction crouches, stands, or leaves a bed.
type EntityAction struct {
	EntityID int32
	Action   EntityActionType
}

func (*EntityAction) Opcode() Opcode { return OpEntityAction }

func (p *EntityAction) encode(w *writer) {
	w.i32(p.EntityID)
	w.i8(int8(p.Action))
}

func decodeEntityAction(r *reader) Packet {
	return &EntityAction{EntityID: r.i32(), Action: EntityActionType(r.i8())}
}

// StanceUpdate is unused by the vanilla client. The field meanings were
// never documented.
type StanceUpdate struct {
	A, B, C, D float32
	E, F       bool
}

func (*StanceUpdate) Opcode() Opcode { return OpStanceUpdate }

func (p *StanceUpdate) encode(w *writer) {
	w.f32(p.A)
	w.f32(p.B)
	w.f32(p.C)
	w.f32(p.D)
	w.bool(p.E)
	w.bool(p.F)
}

func decodeStanceUpdate(r *reader) Packet {
	return &StanceUpdate{A: r.f32(), B: r.f32(), C: r.f32(), D: r.f32(), E: r.bool(), F: r.bool()}
}
