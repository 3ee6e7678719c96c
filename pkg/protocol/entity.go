package protocol

// Entity positions are absolute integers in 1/32 block units. Angles are
// packed into a byte, 256 steps per full turn.

// EntityEquipment shows an item in an entity's hand or armor slot.
type EntityEquipment struct {
	EntityID int32
	Slot     int16
	ItemID   int16
	Damage   int16
}

func (*EntityEquipment) Opcode() Opcode { return OpEntityEquipment }

func (p *EntityEquipment) encode(w *writer) {
	w.i32(p.EntityID)
	w.i16(p.Slot)
	w.i16(p.ItemID)
	w.i16(p.Damage)
}

func decodeEntityEquipment(r *reader) Packet {
	return &EntityEquipment{EntityID: r.i32(), Slot: r.i16(), ItemID: r.i16(), Damage: r.i16()}
}

// NamedEntitySpawn spawns another player.
type NamedEntitySpawn struct {
	EntityID    int32
	Name        string
	X, Y, Z     int32
	Rotation    int8
	Pitch       int8
	CurrentItem int16
}

func (*NamedEntitySpawn) Opcode() Opcode { return OpNamedEntitySpawn }

func (p *NamedEntitySpawn) encode(w *writer) {
	w.i32(p.EntityID)
	w.s16(p.Name)
	w.i32(p.X)
	w.i32(p.Y)
	w.i32(p.Z)
	w.i8(p.Rotation)
	w.i8(p.Pitch)
	w.i16(p.CurrentItem)
}

func decodeNamedEntitySpawn(r *reader) Packet {
	return &NamedEntitySpawn{
		EntityID:    r.i32(),
		Name:        r.s16(),
		X:           r.i32(),
		Y:           r.i32(),
		Z:           r.i32(),
		Rotation:    r.i8(),
		Pitch:       r.i8(),
		CurrentItem: r.i16(),
	}
}

// PickupSpawn spawns a dropped item.
type PickupSpawn struct {
	EntityID              int32
	ItemID                int16
	Count                 int8
	Damage                int16
	X, Y, Z               int32
	Rotation, Pitch, Roll int8
}

func (*PickupSpawn) Opcode() Opcode { return OpPickupSpawn }

func (p *PickupSpawn) encode(w *writer) {
	w.i32(p.EntityID)
	w.i16(p.ItemID)
	w.i8(p.Count)
	w.i16(p.Damage)
	w.i32(p.X)
	w.i32(p.Y)
	w.i32(p.Z)
	w.i8(p.Rotation)
	w.i8(p.Pitch)
	w.i8(p.Roll)
}

func decodePickupSpawn(r *reader) Packet {
	return &PickupSpawn{
		EntityID: r.i32(),
		ItemID:   r.i16(),
		Count:    r.i8(),
		Damage:   r.i16(),
		X:        r.i32(),
		Y:        r.i32(),
		Z:        r.i32(),
		Rotation: r.i8(),
		Pitch:    r.i8(),
		Roll:     r.i8(),
	}
}

// CollectItem animates an item flying to the collector.
type CollectItem struct {
	Collected int32
	Collector int32
}

func (*CollectItem) Opcode() Opcode { return OpCollectItem }

func (p *CollectItem) encode(w *writer) {
	w.i32(p.Collected)
	w.i32(p.Collector)
}

func decodeCollectItem(r *reader) Packet {
	return &CollectItem{Collected: r.i32(), Collector: r.i32()}
}

// AddObjectVehicle spawns a non-living entity.
//
// Wire format:
//
//	[EntityID: i32][Type: i8][X: i32][Y: i32][Z: i32][ThrowerID: i32]
//	[SpeedX: i16][SpeedY: i16][SpeedZ: i16]   only when ThrowerID > 0
type AddObjectVehicle struct {
	EntityID               int32
	Type                   ObjectType
	X, Y, Z                int32
	ThrowerID              int32
	SpeedX, SpeedY, SpeedZ int16
}

// HasSpeed reports whether the speed fields are on the wire.
func (p *AddObjectVehicle) HasSpeed() bool {
	return p.ThrowerID > 0
}

func (*AddObjectVehicle) Opcode() Opcode { return OpAddObjectVehicle }

func (p *AddObjectVehicle) encode(w *writer) {
	w.i32(p.EntityID)
	w.i8(int8(p.Type))
	w.i32(p.X)
	w.i32(p.Y)
	w.i32(p.Z)
	w.i32(p.ThrowerID)
	if p.HasSpeed() {
		w.i16(p.SpeedX)
		w.i16(p.SpeedY)
		w.i16(p.SpeedZ)
	}
}

func decodeAddObjectVehicle(r *reader) Packet {
	p := &AddObjectVehicle{
		EntityID:  r.i32(),
		Type:      ObjectType(r.i8()),
		X:         r.i32(),
		Y:         r.i32(),
		Z:         r.i32(),
		ThrowerID: r.i32(),
	}
	if p.HasSpeed() {
		p.SpeedX = r.i16()
		p.SpeedY = r.i16()
		p.SpeedZ = r.i16()
	}
	return p
}

// MobSpawn spawns a mob with its initial metadata.
type MobSpawn struct {
	EntityID   int32
	Type       MobType
	X, Y, Z    int32
	Yaw, Pitch int8
	Metadata   []MetadataEntry
}

func (*MobSpawn) Opcode() Opcode { return OpMobSpawn }

func (p *MobSpawn) encode(w *writer) {
	w.i32(p.EntityID)
	w.i8(int8(p.Type))
	w.i32(p.X)
	w.i32(p.Y)
	w.i32(p.Z)
	w.i8(p.Yaw)
	w.i8(p.Pitch)
	writeMetadata(w, p.Metadata)
}

func decodeMobSpawn(r *reader) Packet {
	return &MobSpawn{
		EntityID: r.i32(),
		Type:     MobType(r.i8()),
		X:        r.i32(),
		Y:        r.i32(),
		Z:        r.i32(),
		Yaw:      r.i8(),
		Pitch:    r.i8(),
		Metadata: readMetadata(r),
	}
}

// EntityPainting places a painting. X, Y, Z is the painting's center block.
type EntityPainting struct {
	EntityID  int32
	Title     string
	X, Y, Z   int32
	Direction PaintingDirection
}

func (*EntityPainting) Opcode() Opcode { return OpEntityPainting }

func (p *EntityPainting) encode(w *writer) {
	w.i32(p.EntityID)
	w.s16(p.Title)
	w.i32(p.X)
	w.i32(p.Y)
	w.i32(p.Z)
	w.i32(int32(p.Direction))
}

func decodeEntityPainting(r *reader) Packet {
	return &EntityPainting{
		EntityID:  r.i32(),
		Title:     r.s16(),
		X:         r.i32(),
		Y:         r.i32(),
		Z:         r.i32(),
		Direction: PaintingDirection(r.i32()),
	}
}

// EntityVelocity sets an entity's velocity in 1/8000 blocks per tick.
type EntityVelocity struct {
	EntityID   int32
	VX, VY, VZ int16
}

func (*EntityVelocity) Opcode() Opcode { return OpEntityVelocity }

func (p *EntityVelocity) encode(w *writer) {
	w.i32(p.EntityID)
	w.i16(p.VX)
	w.i16(p.VY)
	w.i16(p.VZ)
}

func decodeEntityVelocity(r *reader) Packet {
	return &EntityVelocity{EntityID: r.i32(), VX: r.i16(), VY: r.i16(), VZ: r.i16()}
}

// DestroyEntity removes an entity.
type DestroyEntity struct {
	EntityID int32
}

func (*DestroyEntity) Opcode() Opcode { return OpDestroyEntity }

func (p *DestroyEntity) encode(w *writer) {
	w.i32(p.EntityID)
}

func decodeDestroyEntity(r *reader) Packet {
	return &DestroyEntity{EntityID: r.i32()}
}

// Entity marks an entity as present without moving it.
type Entity struct {
	EntityID int32
}

func (*Entity) Opcode() Opcode { return OpEntity }

func (p *Entity) encode(w *writer) {
	w.i32(p.EntityID)
}

func decodeEntity(r *reader) Packet {
	return &Entity{EntityID: r.i32()}
}

// EntityRelativeMove moves an entity by less than four blocks.
type EntityRelativeMove struct {
	EntityID   int32
	DX, DY, DZ int8
}

func (*EntityRelativeMove) Opcode() Opcode { return OpEntityRelativeMove }

func (p *EntityRelativeMove) encode(w *writer) {
	w.i32(p.EntityID)
	w.i8(p.DX)
	w.i8(p.DY)
	w.i8(p.DZ)
}

func decodeEntityRelativeMove(r *reader) Packet {
	return &EntityRelativeMove{EntityID: r.i32(), DX: r.i8(), DY: r.i8(), DZ: r.i8()}
}

// EntityLook rotates an entity.
type EntityLook struct {
	EntityID   int32
	Yaw, Pitch int8
}

func (*EntityLook) Opcode() Opcode { return OpEntityLook }

func (p *EntityLook) encode(w *writer) {
	w.i32(p.EntityID)
	w.i8(p.Yaw)
	w.i8(p.Pitch)
}

func decodeEntityLook(r *reader) Packet {
	return &EntityLook{EntityID: r.i32(), Yaw: r.i8(), Pitch: r.i8()}
}

// EntityLookAndRelativeMove combines EntityRelativeMove and EntityLook.
type EntityLookAndRelativeMove struct {
	EntityID   int32
	DX, DY, DZ int8
	Yaw, Pitch int8
}

func (*EntityLookAndRelativeMove) Opcode() Opcode { return OpEntityLookAndRelativeMove }

func (p *EntityLookAndRelativeMove) encode(w *writer) {
	w.i32(p.EntityID)
	w.i8(p.DX)
	w.i8(p.DY)
	w.i8(p.DZ)
	w.i8(p.Yaw)
	w.i8(p.Pitch)
}

func decodeEntityLookAndRelativeMove(r *reader) Packet {
	return &EntityLookAndRelativeMove{
		EntityID: r.i32(),
		DX:       r.i8(),
		DY:       r.i8(),
		DZ:       r.i8(),
		Yaw:      r.i8(),
		Pitch:    r.i8(),
	}
}

// EntityTeleport moves an entity to an absolute position.
type EntityTeleport struct {
	EntityID   int32
	X, Y, Z    int32
	Yaw, Pitch int8
}

func (*EntityTeleport) Opcode() Opcode { return OpEntityTeleport }

func (p *EntityTeleport) encode(w *writer) {
	w.i32(p.EntityID)
	w.i32(p.X)
	w.i32(p.Y)
	w.i32(p.Z)
	w.i8(p.Yaw)
	w.i8(p.Pitch)
}

func decodeEntityTeleport(r *reader) Packet {
	return &EntityTeleport{
		EntityID: r.i32(),
		X:        r.i32(),
		Y:        r.i32(),
		Z:        r.i32(),
		Yaw:      r.i8(),
		Pitch:    r.i8(),
	}
}

// EntityStatus reports hurt (2), death (3), and similar status changes.
type EntityStatus struct {
	EntityID int32
	Status   int8
}

func (*EntityStatus) Opcode() Opcode { return OpEntityStatus }

func (p *EntityStatus) encode(w *writer) {
	w.i32(p.EntityID)
	w.i8(p.Status)
}

func decodeEntityStatus(r *reader) Packet {
	return &EntityStatus{EntityID: r.i32(), Status: r.i8()}
}

// AttachEntity seats an entity in a vehicle. VehicleID -1 detaches.
type AttachEntity struct {
	EntityID  int32
	VehicleID int32
}

func (*AttachEntity) Opcode() Opcode { return OpAttachEntity }

func (p *AttachEntity) encode(w *writer) {
	w.i32(p.EntityID)
	w.i32(p.VehicleID)
}

func decodeAttachEntity(r *reader) Packet {
	return &AttachEntity{EntityID: r.i32(), VehicleID: r.i32()}
}

// EntityMetadata updates entity metadata fields.
type EntityMetadata struct {
	EntityID int32
	Metadata []MetadataEntry
}

func (*EntityMetadata) Opcode() Opcode { return OpEntityMetadata }

func (p *EntityMetadata) encode(w *writer) {
	w.i32(p.EntityID)
	writeMetadata(w, p.Metadata)
}

func decodeEntityMetadata(r *reader) Packet {
	return &EntityMetadata{EntityID: r.i32(), Metadata: readMetadata(r)}
}

// Thunderbolt strikes lightning at a position.
type Thunderbolt struct {
	EntityID int32
	Unknown  bool // Always true in vanilla servers
	X, Y, Z  int32
}

func (*Thunderbolt) Opcode() Opcode { return OpThunderbolt }

func (p *Thunderbolt) encode(w *writer) {
	w.i32(p.EntityID)
	w.bool(p.Unknown)
	w.i32(p.X)
	w.i32(p.Y)
	w.i32(p.Z)
}

func decodeThunderbolt(r *reader) Packet {
	return &Thunderbolt{EntityID: r.i32(), Unknown: r.bool(), X: r.i32(), Y: r.i32(), Z: r.i32()}
}
