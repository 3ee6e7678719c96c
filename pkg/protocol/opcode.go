package protocol

// Opcode is the one-byte tag that starts every packet.
type Opcode uint8

const (
	OpKeepAlive                 Opcode = 0x00
	OpLoginRequest              Opcode = 0x01
	OpHandshake                 Opcode = 0x02
	OpChat                      Opcode = 0x03
	OpTimeUpdate                Opcode = 0x04
	OpEntityEquipment           Opcode = 0x05
	OpSpawnPosition             Opcode = 0x06
	OpUseEntity                 Opcode = 0x07
	OpUpdateHealth              Opcode = 0x08
	OpRespawn                   Opcode = 0x09
	OpPlayer                    Opcode = 0x0A
	OpPlayerPosition            Opcode = 0x0B
	OpPlayerLook                Opcode = 0x0C
	OpPlayerPositionAndLook     Opcode = 0x0D
	OpPlayerDigging             Opcode = 0x0E
	OpPlayerBlockPlacement      Opcode = 0x0F
	OpHoldingChange             Opcode = 0x10
	OpUseBed                    Opcode = 0x11
	OpAnimation                 Opcode = 0x12
	OpEntityAction              Opcode = 0x13
	OpNamedEntitySpawn          Opcode = 0x14
	OpPickupSpawn               Opcode = 0x15
	OpCollectItem               Opcode = 0x16
	OpAddObjectVehicle          Opcode = 0x17
	OpMobSpawn                  Opcode = 0x18
	OpEntityPainting            Opcode = 0x19
	OpStanceUpdate              Opcode = 0x1B
	OpEntityVelocity            Opcode = 0x1C
	OpDestroyEntity             Opcode = 0x1D
	OpEntity                    Opcode = 0x1E
	OpEntityRelativeMove        Opcode = 0x1F
	OpEntityLook                Opcode = 0x20
	OpEntityLookAndRelativeMove Opcode = 0x21
	OpEntityTeleport            Opcode = 0x22
	OpEntityStatus              Opcode = 0x26
	OpAttachEntity              Opcode = 0x27
	OpEntityMetadata            Opcode = 0x28
	OpPreChunk                  Opcode = 0x32
	OpMapChunk                  Opcode = 0x33
	OpMultiBlockChange          Opcode = 0x34
	OpBlockChange               Opcode = 0x35
	OpBlockAction               Opcode = 0x36
	OpExplosion                 Opcode = 0x3C
	OpSoundEffect               Opcode = 0x3D
	OpNewInvalidState           Opcode = 0x46
	OpThunderbolt               Opcode = 0x47
	OpOpenWindow                Opcode = 0x64
	OpCloseWindow               Opcode = 0x65
	OpWindowClick               Opcode = 0x66
	OpSetSlot                   Opcode = 0x67
	OpWindowItems               Opcode = 0x68
	OpUpdateProgressBar         Opcode = 0x69
	OpTransaction               Opcode = 0x6A
	OpUpdateSign                Opcode = 0x82
	OpItemData                  Opcode = 0x83
	OpIncrementStatistic        Opcode = 0x84
	OpDisconnectKick            Opcode = 0xFF
)

// String returns the packet name for the opcode.
func (op Opcode) String() string {
	switch op {
	case OpKeepAlive:
		return "KeepAlive"
	case OpLoginRequest:
		return "LoginRequest"
	case OpHandshake:
		return "Handshake"
	case OpChat:
		return "Chat"
	case OpTimeUpdate:
		return "TimeUpdate"
	case OpEntityEquipment:
		return "EntityEquipment"
	case OpSpawnPosition:
		return "SpawnPosition"
	case OpUseEntity:
		return "UseEntity"
	case OpUpdateHealth:
		return "UpdateHealth"
	case OpRespawn:
		return "Respawn"
	case OpPlayer:
		return "Player"
	case OpPlayerPosition:
		return "PlayerPosition"
	case OpPlayerLook:
		return "PlayerLook"
	case OpPlayerPositionAndLook:
		return "PlayerPositionAndLook"
	case OpPlayerDigging:
		return "PlayerDigging"
	case OpPlayerBlockPlacement:
		return "PlayerBlockPlacement"
	case OpHoldingChange:
		return "HoldingChange"
	case OpUseBed:
		return "UseBed"
	case OpAnimation:
		return "Animation"
	case OpEntityAction:
		return "EntityAction"
	case OpNamedEntitySpawn:
		return "NamedEntitySpawn"
	case OpPickupSpawn:
		return "PickupSpawn"
	case OpCollectItem:
		return "CollectItem"
	case OpAddObjectVehicle:
		return "AddObjectVehicle"
	case OpMobSpawn:
		return "MobSpawn"
	case OpEntityPainting:
		return "EntityPainting"
	case OpStanceUpdate:
		return "StanceUpdate"
	case OpEntityVelocity:
		return "EntityVelocity"
	case OpDestroyEntity:
		return "DestroyEntity"
	case OpEntity:
		return "Entity"
	case OpEntityRelativeMove:
		return "EntityRelativeMove"
	case OpEntityLook:
		return "EntityLook"
	case OpEntityLookAndRelativeMove:
		return "EntityLookAndRelativeMove"
	case OpEntityTeleport:
		return "EntityTeleport"
	case OpEntityStatus:
		return "EntityStatus"
	case OpAttachEntity:
		return "AttachEntity"
	case OpEntityMetadata:
		return "EntityMetadata"
	case OpPreChunk:
		return "PreChunk"
	case OpMapChunk:
		return "MapChunk"
	case OpMultiBlockChange:
		return "MultiBlockChange"
	case OpBlockChange:
		return "BlockChange"
	case OpBlockAction:
		return "BlockAction"
	case OpExplosion:
		return "Explosion"
	case OpSoundEffect:
		return "SoundEffect"
	case OpNewInvalidState:
		return "NewInvalidState"
	case OpThunderbolt:
		return "Thunderbolt"
	case OpOpenWindow:
		return "OpenWindow"
	case OpCloseWindow:
		return "CloseWindow"
	case OpWindowClick:
		return "WindowClick"
	case OpSetSlot:
		return "SetSlot"
	case OpWindowItems:
		return "WindowItems"
	case OpUpdateProgressBar:
		return "UpdateProgressBar"
	case OpTransaction:
		return "Transaction"
	case OpUpdateSign:
		return "UpdateSign"
	case OpItemData:
		return "ItemData"
	case OpIncrementStatistic:
		return "IncrementStatistic"
	case OpDisconnectKick:
		return "DisconnectKick"
	default:
		return "Unknown"
	}
}

// Known reports whether the opcode has a catalogue entry.
func (op Opcode) Known() bool {
	return decoders[op] != nil
}

// Direction describes which peer sends a packet.
type Direction uint8

const (
	Inbound  Direction = 0x01 // Server → Client
	Outbound Direction = 0x02 // Client → Server
	Both     Direction = Inbound | Outbound
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case Inbound:
		return "Inbound"
	case Outbound:
		return "Outbound"
	case Both:
		return "Both"
	default:
		return "Unknown"
	}
}

// Has returns true if d includes the given direction.
func (d Direction) Has(dir Direction) bool {
	return d&dir != 0
}

// Direction returns which peer sends packets with this opcode.
// Unknown opcodes have no direction.
func (op Opcode) Direction() Direction {
	switch op {
	case OpKeepAlive, OpLoginRequest, OpHandshake, OpChat, OpRespawn,
		OpPlayerPositionAndLook, OpAnimation, OpCloseWindow, OpTransaction,
		OpUpdateSign, OpDisconnectKick:
		return Both
	case OpUseEntity, OpPlayer, OpPlayerPosition, OpPlayerLook, OpPlayerDigging,
		OpPlayerBlockPlacement, OpHoldingChange, OpEntityAction, OpStanceUpdate,
		OpWindowClick:
		return Outbound
	}
	if op.Known() {
		return Inbound
	}
	return 0
}
