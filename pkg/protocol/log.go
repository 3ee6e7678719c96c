package protocol

import "log/slog"

// Every packet renders its fields for slog. Byte payloads and lists are
// reported by size, never dumped.

func i8(key string, v int8) slog.Attr   { return slog.Int(key, int(v)) }
func i16(key string, v int16) slog.Attr { return slog.Int(key, int(v)) }
func i32(key string, v int32) slog.Attr { return slog.Int(key, int(v)) }

func pos(x int32, y int8, z int32) []slog.Attr {
	return []slog.Attr{i32("x", x), i8("y", y), i32("z", z)}
}

func group(attrs ...[]slog.Attr) slog.Value {
	var all []slog.Attr
	for _, a := range attrs {
		all = append(all, a...)
	}
	return slog.GroupValue(all...)
}

// LogValue implements slog.LogValuer. An empty slot renders as "empty".
func (s Slot) LogValue() slog.Value {
	if s.Empty() {
		return slog.StringValue("empty")
	}
	return slog.GroupValue(i16("id", s.ID), i8("count", s.Count), i16("damage", s.Damage))
}

// Login and session.

func (*KeepAlive) LogValue() slog.Value { return slog.GroupValue() }

func (p *LoginRequest) LogValue() slog.Value {
	return slog.GroupValue(
		i32("entity_id", p.EntityID),
		slog.String("username", p.Username),
		slog.Int64("map_seed", p.MapSeed),
		slog.String("dimension", p.Dimension.String()),
	)
}

func (p *Handshake) LogValue() slog.Value {
	return slog.GroupValue(slog.String("value", p.Value))
}

func (p *Chat) LogValue() slog.Value {
	return slog.GroupValue(slog.String("message", p.Message))
}

func (p *TimeUpdate) LogValue() slog.Value {
	return slog.GroupValue(slog.Int64("time", p.Time))
}

func (p *SpawnPosition) LogValue() slog.Value {
	return slog.GroupValue(i32("x", p.X), i32("y", p.Y), i32("z", p.Z))
}

func (p *UpdateHealth) LogValue() slog.Value {
	return slog.GroupValue(i16("health", p.Health))
}

func (p *Respawn) LogValue() slog.Value {
	return slog.GroupValue(slog.String("dimension", p.Dimension.String()))
}

func (p *DisconnectKick) LogValue() slog.Value {
	return slog.GroupValue(slog.String("reason", p.Reason))
}

// Player.

func (p *UseEntity) LogValue() slog.Value {
	return slog.GroupValue(i32("user", p.User), i32("target", p.Target), slog.Bool("left_click", p.LeftClick))
}

func (p *Player) LogValue() slog.Value {
	return slog.GroupValue(slog.Bool("on_ground", p.OnGround))
}

func (p *PlayerPosition) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("x", p.X),
		slog.Float64("y", p.Y),
		slog.Float64("stance", p.Stance),
		slog.Float64("z", p.Z),
		slog.Bool("on_ground", p.OnGround),
	)
}

func (p *PlayerLook) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("yaw", float64(p.Yaw)),
		slog.Float64("pitch", float64(p.Pitch)),
		slog.Bool("on_ground", p.OnGround),
	)
}

func (p *PlayerPositionAndLook) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("x", p.X),
		slog.Float64("y", p.Y),
		slog.Float64("stance", p.Stance),
		slog.Float64("z", p.Z),
		slog.Float64("yaw", float64(p.Yaw)),
		slog.Float64("pitch", float64(p.Pitch)),
		slog.Bool("on_ground", p.OnGround),
	)
}

func (p *PlayerDigging) LogValue() slog.Value {
	return group(
		[]slog.Attr{slog.String("status", p.Status.String())},
		pos(p.X, p.Y, p.Z),
		[]slog.Attr{slog.String("face", p.Face.String())},
	)
}

func (p *PlayerBlockPlacement) LogValue() slog.Value {
	return group(
		pos(p.X, p.Y, p.Z),
		[]slog.Attr{
			slog.String("direction", p.Direction.String()),
			slog.Any("item", p.Item),
		},
	)
}

func (p *HoldingChange) LogValue() slog.Value {
	return slog.GroupValue(i16("slot", p.Slot))
}

func (p *UseBed) LogValue() slog.Value {
	return group(
		[]slog.Attr{i32("entity_id", p.EntityID), i8("in_bed", p.InBed)},
		pos(p.X, p.Y, p.Z),
	)
}

func (p *Animation) LogValue() slog.Value {
	return slog.GroupValue(i32("entity_id", p.EntityID), slog.String("animation", p.Animation.String()))
}

func (p *EntityAction) LogValue() slog.Value {
	return slog.GroupValue(i32("entity_id", p.EntityID), slog.String("action", p.Action.String()))
}

func (p *StanceUpdate) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("a", float64(p.A)),
		slog.Float64("b", float64(p.B)),
		slog.Float64("c", float64(p.C)),
		slog.Float64("d", float64(p.D)),
		slog.Bool("e", p.E),
		slog.Bool("f", p.F),
	)
}

// Entities.

func (p *EntityEquipment) LogValue() slog.Value {
	return slog.GroupValue(
		i32("entity_id", p.EntityID),
		i16("slot", p.Slot),
		i16("item_id", p.ItemID),
		i16("damage", p.Damage),
	)
}

func (p *NamedEntitySpawn) LogValue() slog.Value {
	return slog.GroupValue(
		i32("entity_id", p.EntityID),
		slog.String("name", p.Name),
		i32("x", p.X), i32("y", p.Y), i32("z", p.Z),
		i8("rotation", p.Rotation),
		i8("pitch", p.Pitch),
		i16("current_item", p.CurrentItem),
	)
}

func (p *PickupSpawn) LogValue() slog.Value {
	return slog.GroupValue(
		i32("entity_id", p.EntityID),
		i16("item_id", p.ItemID),
		i8("count", p.Count),
		i16("damage", p.Damage),
		i32("x", p.X), i32("y", p.Y), i32("z", p.Z),
		i8("rotation", p.Rotation), i8("pitch", p.Pitch), i8("roll", p.Roll),
	)
}

func (p *CollectItem) LogValue() slog.Value {
	return slog.GroupValue(i32("collected", p.Collected), i32("collector", p.Collector))
}

func (p *AddObjectVehicle) LogValue() slog.Value {
	attrs := []slog.Attr{
		i32("entity_id", p.EntityID),
		slog.String("type", p.Type.String()),
		i32("x", p.X), i32("y", p.Y), i32("z", p.Z),
		i32("thrower_id", p.ThrowerID),
	}
	if p.ThrowerID > 0 {
		attrs = append(attrs, i16("speed_x", p.SpeedX), i16("speed_y", p.SpeedY), i16("speed_z", p.SpeedZ))
	}
	return slog.GroupValue(attrs...)
}

func (p *MobSpawn) LogValue() slog.Value {
	return slog.GroupValue(
		i32("entity_id", p.EntityID),
		slog.String("type", p.Type.String()),
		i32("x", p.X), i32("y", p.Y), i32("z", p.Z),
		i8("yaw", p.Yaw), i8("pitch", p.Pitch),
		slog.Int("metadata", len(p.Metadata)),
	)
}

func (p *EntityPainting) LogValue() slog.Value {
	return slog.GroupValue(
		i32("entity_id", p.EntityID),
		slog.String("title", p.Title),
		i32("x", p.X), i32("y", p.Y), i32("z", p.Z),
		slog.String("direction", p.Direction.String()),
	)
}

func (p *EntityVelocity) LogValue() slog.Value {
	return slog.GroupValue(i32("entity_id", p.EntityID), i16("vx", p.VX), i16("vy", p.VY), i16("vz", p.VZ))
}

func (p *DestroyEntity) LogValue() slog.Value {
	return slog.GroupValue(i32("entity_id", p.EntityID))
}

func (p *Entity) LogValue() slog.Value {
	return slog.GroupValue(i32("entity_id", p.EntityID))
}

func (p *EntityRelativeMove) LogValue() slog.Value {
	return slog.GroupValue(i32("entity_id", p.EntityID), i8("dx", p.DX), i8("dy", p.DY), i8("dz", p.DZ))
}

func (p *EntityLook) LogValue() slog.Value {
	return slog.GroupValue(i32("entity_id", p.EntityID), i8("yaw", p.Yaw), i8("pitch", p.Pitch))
}

func (p *EntityLookAndRelativeMove) LogValue() slog.Value {
	return slog.GroupValue(
		i32("entity_id", p.EntityID),
		i8("dx", p.DX), i8("dy", p.DY), i8("dz", p.DZ),
		i8("yaw", p.Yaw), i8("pitch", p.Pitch),
	)
}

func (p *EntityTeleport) LogValue() slog.Value {
	return slog.GroupValue(
		i32("entity_id", p.EntityID),
		i32("x", p.X), i32("y", p.Y), i32("z", p.Z),
		i8("yaw", p.Yaw), i8("pitch", p.Pitch),
	)
}

func (p *EntityStatus) LogValue() slog.Value {
	return slog.GroupValue(i32("entity_id", p.EntityID), i8("status", p.Status))
}

func (p *AttachEntity) LogValue() slog.Value {
	return slog.GroupValue(i32("entity_id", p.EntityID), i32("vehicle_id", p.VehicleID))
}

func (p *EntityMetadata) LogValue() slog.Value {
	return slog.GroupValue(i32("entity_id", p.EntityID), slog.Int("metadata", len(p.Metadata)))
}

func (p *Thunderbolt) LogValue() slog.Value {
	return slog.GroupValue(i32("entity_id", p.EntityID), i32("x", p.X), i32("y", p.Y), i32("z", p.Z))
}

// Chunks and blocks.

func (p *PreChunk) LogValue() slog.Value {
	return slog.GroupValue(i32("x", p.X), i32("z", p.Z), slog.Bool("load", p.Load))
}

func (p *MapChunk) LogValue() slog.Value {
	return slog.GroupValue(
		i32("x", p.X), i16("y", p.Y), i32("z", p.Z),
		slog.Int("size_x", p.SizeX), slog.Int("size_y", p.SizeY), slog.Int("size_z", p.SizeZ),
		slog.Int("data_bytes", len(p.Data)),
	)
}

func (p *MultiBlockChange) LogValue() slog.Value {
	return slog.GroupValue(i32("chunk_x", p.ChunkX), i32("chunk_z", p.ChunkZ), slog.Int("changes", len(p.Coords)))
}

func (p *BlockChange) LogValue() slog.Value {
	return group(pos(p.X, p.Y, p.Z), []slog.Attr{i8("type", p.Type), i8("metadata", p.Metadata)})
}

func (p *BlockAction) LogValue() slog.Value {
	return slog.GroupValue(
		i32("x", p.X), i16("y", p.Y), i32("z", p.Z),
		i8("data1", p.Data1), i8("data2", p.Data2),
	)
}

func (p *Explosion) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("x", p.X), slog.Float64("y", p.Y), slog.Float64("z", p.Z),
		slog.Float64("radius", float64(p.Radius)),
		slog.Int("records", len(p.Records)),
	)
}

func (p *SoundEffect) LogValue() slog.Value {
	return group(
		[]slog.Attr{slog.String("effect", p.EffectID.String())},
		pos(p.X, p.Y, p.Z),
		[]slog.Attr{i32("data", p.Data)},
	)
}

func (p *NewInvalidState) LogValue() slog.Value {
	return slog.GroupValue(slog.String("reason", p.Reason.String()))
}

func (p *UpdateSign) LogValue() slog.Value {
	return slog.GroupValue(
		i32("x", p.X), i16("y", p.Y), i32("z", p.Z),
		slog.String("line1", p.Lines[0]),
		slog.String("line2", p.Lines[1]),
		slog.String("line3", p.Lines[2]),
		slog.String("line4", p.Lines[3]),
	)
}

func (p *ItemData) LogValue() slog.Value {
	return slog.GroupValue(i16("item_type", p.ItemType), i16("item_id", p.ItemID), slog.Int("text_bytes", len(p.Text)))
}

func (p *IncrementStatistic) LogValue() slog.Value {
	return slog.GroupValue(i32("statistic_id", p.StatisticID), i8("amount", p.Amount))
}

// Windows.

func (p *OpenWindow) LogValue() slog.Value {
	return slog.GroupValue(
		i8("window_id", p.WindowID),
		slog.String("type", p.InventoryType.String()),
		slog.String("title", p.Title),
		i8("slots", p.Slots),
	)
}

func (p *CloseWindow) LogValue() slog.Value {
	return slog.GroupValue(i8("window_id", p.WindowID))
}

func (p *WindowClick) LogValue() slog.Value {
	return slog.GroupValue(
		i8("window_id", p.WindowID),
		i16("slot", p.Slot),
		i8("right_click", p.RightClick),
		i16("action", p.ActionNumber),
		slog.Bool("shift", p.Shift),
		slog.Any("item", p.Item),
	)
}

func (p *SetSlot) LogValue() slog.Value {
	return slog.GroupValue(i8("window_id", p.WindowID), i16("slot", p.Slot), slog.Any("item", p.Item))
}

func (p *WindowItems) LogValue() slog.Value {
	return slog.GroupValue(i8("window_id", p.WindowID), slog.Int("items", len(p.Items)))
}

func (p *UpdateProgressBar) LogValue() slog.Value {
	return slog.GroupValue(i8("window_id", p.WindowID), i16("bar", p.Bar), i16("value", p.Value))
}

func (p *Transaction) LogValue() slog.Value {
	return slog.GroupValue(i8("window_id", p.WindowID), i16("action", p.ActionNumber), slog.Bool("accepted", p.Accepted))
}
