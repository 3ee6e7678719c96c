package protocol

// decodeFunc decodes one packet body. It reports failure through r.err.
type decodeFunc func(r *reader) Packet

// decoders is the opcode dispatch table. A nil entry is an unknown opcode.
var decoders = [256]decodeFunc{
	OpKeepAlive:                 decodeKeepAlive,
	OpLoginRequest:              decodeLoginRequest,
	OpHandshake:                 decodeHandshake,
	OpChat:                      decodeChat,
	OpTimeUpdate:                decodeTimeUpdate,
	OpEntityEquipment:           decodeEntityEquipment,
	OpSpawnPosition:             decodeSpawnPosition,
	OpUseEntity:                 decodeUseEntity,
	OpUpdateHealth:              decodeUpdateHealth,
	OpRespawn:                   decodeRespawn,
	OpPlayer:                    decodePlayer,
	OpPlayerPosition:            decodePlayerPosition,
	OpPlayerLook:                decodePlayerLook,
	OpPlayerPositionAndLook:     decodePlayerPositionAndLook,
	OpPlayerDigging:             decodePlayerDigging,
	OpPlayerBlockPlacement:      decodePlayerBlockPlacement,
	OpHoldingChange:             decodeHoldingChange,
	OpUseBed:                    decodeUseBed,
	OpAnimation:                 decodeAnimation,
	OpEntityAction:              decodeEntityAction,
	OpNamedEntitySpawn:          decodeNamedEntitySpawn,
	OpPickupSpawn:               decodePickupSpawn,
	OpCollectItem:               decodeCollectItem,
	OpAddObjectVehicle:          decodeAddObjectVehicle,
	OpMobSpawn:                  decodeMobSpawn,
	OpEntityPainting:            decodeEntityPainting,
	OpStanceUpdate:              decodeStanceUpdate,
	OpEntityVelocity:            decodeEntityVelocity,
	OpDestroyEntity:             decodeDestroyEntity,
	OpEntity:                    decodeEntity,
	OpEntityRelativeMove:        decodeEntityRelativeMove,
	OpEntityLook:                decodeEntityLook,
	OpEntityLookAndRelativeMove: decodeEntityLookAndRelativeMove,
	OpEntityTeleport:            decodeEntityTeleport,
	OpEntityStatus:              decodeEntityStatus,
	OpAttachEntity:              decodeAttachEntity,
	OpEntityMetadata:            decodeEntityMetadata,
	OpPreChunk:                  decodePreChunk,
	OpMapChunk:                  decodeMapChunk,
	OpMultiBlockChange:          decodeMultiBlockChange,
	OpBlockChange:               decodeBlockChange,
	OpBlockAction:               decodeBlockAction,
	OpExplosion:                 decodeExplosion,
	OpSoundEffect:               decodeSoundEffect,
	OpNewInvalidState:           decodeNewInvalidState,
	OpThunderbolt:               decodeThunderbolt,
	OpOpenWindow:                decodeOpenWindow,
	OpCloseWindow:               decodeCloseWindow,
	OpWindowClick:               decodeWindowClick,
	OpSetSlot:                   decodeSetSlot,
	OpWindowItems:               decodeWindowItems,
	OpUpdateProgressBar:         decodeUpdateProgressBar,
	OpTransaction:               decodeTransaction,
	OpUpdateSign:                decodeUpdateSign,
	OpItemData:                  decodeItemData,
	OpIncrementStatistic:        decodeIncrementStatistic,
	OpDisconnectKick:            decodeDisconnectKick,
}

// Opcodes returns every catalogued opcode in ascending order.
func Opcodes() []Opcode {
	ops := make([]Opcode, 0, 64)
	for i, d := range decoders {
		if d != nil {
			ops = append(ops, Opcode(i))
		}
	}
	return ops
}
