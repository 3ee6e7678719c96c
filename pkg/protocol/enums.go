package protocol

import "strconv"

// Dimension identifies a world.
type Dimension int8

const (
	DimensionNether    Dimension = -1
	DimensionOverworld Dimension = 0
)

// String returns the string representation of the dimension.
func (d Dimension) String() string {
	switch d {
	case DimensionNether:
		return "Nether"
	case DimensionOverworld:
		return "Overworld"
	default:
		return "Dimension(" + strconv.Itoa(int(d)) + ")"
	}
}

// DiggingStatus is the PlayerDigging action.
type DiggingStatus int8

const (
	DiggingStarted  DiggingStatus = 0
	DiggingFinished DiggingStatus = 2
	DiggingDropItem DiggingStatus = 4
)

// String returns the string representation of the digging status.
func (s DiggingStatus) String() string {
	switch s {
	case DiggingStarted:
		return "Started"
	case DiggingFinished:
		return "Finished"
	case DiggingDropItem:
		return "DropItem"
	default:
		return "Unknown"
	}
}

// Face is the block face a player interacts with.
type Face int8

const (
	FaceNone   Face = -1
	FaceBottom Face = 0 // -Y
	FaceTop    Face = 1 // +Y
	FaceNorth  Face = 2 // -Z
	FaceSouth  Face = 3 // +Z
	FaceWest   Face = 4 // -X
	FaceEast   Face = 5 // +X
)

// String returns the axis notation of the face.
func (f Face) String() string {
	switch f {
	case FaceBottom:
		return "-Y"
	case FaceTop:
		return "+Y"
	case FaceNorth:
		return "-Z"
	case FaceSouth:
		return "+Z"
	case FaceWest:
		return "-X"
	case FaceEast:
		return "+X"
	case FaceNone:
		return "None"
	default:
		return "Unknown"
	}
}

// AnimationType is the Animation to play.
type AnimationType int8

const (
	AnimationNone     AnimationType = 0
	AnimationSwingArm AnimationType = 1
	AnimationDamage   AnimationType = 2
	AnimationLeaveBed AnimationType = 3
	AnimationCrouch   AnimationType = 104
	AnimationUncrouch AnimationType = 105
)

// String returns the string representation of the animation.
func (a AnimationType) String() string {
	switch a {
	case AnimationNone:
		return "None"
	case AnimationSwingArm:
		return "SwingArm"
	case AnimationDamage:
		return "Damage"
	case AnimationLeaveBed:
		return "LeaveBed"
	case AnimationCrouch:
		return "Crouch"
	case AnimationUncrouch:
		return "Uncrouch"
	default:
		return "Unknown"
	}
}

// EntityActionType is the EntityAction performed.
type EntityActionType int8

const (
	ActionCrouch   EntityActionType = 1
	ActionUncrouch EntityActionType = 2
	ActionLeaveBed EntityActionType = 3
)

// String returns the string representation of the action.
func (a EntityActionType) String() string {
	switch a {
	case ActionCrouch:
		return "Crouch"
	case ActionUncrouch:
		return "Uncrouch"
	case ActionLeaveBed:
		return "LeaveBed"
	default:
		return "Unknown"
	}
}

// ObjectType is the kind of object spawned by AddObjectVehicle.
type ObjectType int8

const (
	ObjectBoat           ObjectType = 1
	ObjectMinecart       ObjectType = 10
	ObjectStorageCart    ObjectType = 11
	ObjectPoweredCart    ObjectType = 12
	ObjectActivatedTNT   ObjectType = 50
	ObjectArrow          ObjectType = 60
	ObjectThrownSnowball ObjectType = 61
	ObjectThrownEgg      ObjectType = 62
	ObjectFallingSand    ObjectType = 70
	ObjectFallingGravel  ObjectType = 71
	ObjectFishingFloat   ObjectType = 90
)

// String returns the string representation of the object type.
func (t ObjectType) String() string {
	switch t {
	case ObjectBoat:
		return "Boat"
	case ObjectMinecart:
		return "Minecart"
	case ObjectStorageCart:
		return "StorageCart"
	case ObjectPoweredCart:
		return "PoweredCart"
	case ObjectActivatedTNT:
		return "ActivatedTNT"
	case ObjectArrow:
		return "Arrow"
	case ObjectThrownSnowball:
		return "ThrownSnowball"
	case ObjectThrownEgg:
		return "ThrownEgg"
	case ObjectFallingSand:
		return "FallingSand"
	case ObjectFallingGravel:
		return "FallingGravel"
	case ObjectFishingFloat:
		return "FishingFloat"
	default:
		return "Unknown"
	}
}

// MobType is the kind of mob spawned by MobSpawn.
type MobType int8

const (
	MobCreeper      MobType = 50
	MobSkeleton     MobType = 51
	MobSpider       MobType = 52
	MobGiantZombie  MobType = 53
	MobZombie       MobType = 54
	MobSlime        MobType = 55
	MobGhast        MobType = 56
	MobZombiePigman MobType = 57
	MobPig          MobType = 90
	MobSheep        MobType = 91
	MobCow          MobType = 92
	MobChicken      MobType = 93
	MobSquid        MobType = 94
	MobWolf         MobType = 95
)

// String returns the string representation of the mob type.
func (t MobType) String() string {
	switch t {
	case MobCreeper:
		return "Creeper"
	case MobSkeleton:
		return "Skeleton"
	case MobSpider:
		return "Spider"
	case MobGiantZombie:
		return "GiantZombie"
	case MobZombie:
		return "Zombie"
	case MobSlime:
		return "Slime"
	case MobGhast:
		return "Ghast"
	case MobZombiePigman:
		return "ZombiePigman"
	case MobPig:
		return "Pig"
	case MobSheep:
		return "Sheep"
	case MobCow:
		return "Cow"
	case MobChicken:
		return "Chicken"
	case MobSquid:
		return "Squid"
	case MobWolf:
		return "Wolf"
	default:
		return "Unknown"
	}
}

// Entity metadata flags shared by all mobs (index 0, Byte).
const (
	MobFlagOnFire   = 0x01
	MobFlagCrouched = 0x02
	MobFlagRiding   = 0x04
)

// Wolf metadata flags (index 16, Byte).
const (
	WolfFlagSitting    = 0x01
	WolfFlagAggressive = 0x02
	WolfFlagTamed      = 0x04
)

// WoolColor is a sheep's wool color (index 16, low nibble). Bit 0x10 marks
// a sheared sheep.
type WoolColor uint8

const (
	WoolWhite WoolColor = iota
	WoolOrange
	WoolMagenta
	WoolLightBlue
	WoolYellow
	WoolLime
	WoolPink
	WoolGray
	WoolSilver
	WoolCyan
	WoolPurple
	WoolBlue
	WoolBrown
	WoolGreen
	WoolRed
	WoolBlack
)

var woolColorNames = [...]string{
	"White", "Orange", "Magenta", "LightBlue", "Yellow", "Lime", "Pink", "Gray",
	"Silver", "Cyan", "Purple", "Blue", "Brown", "Green", "Red", "Black",
}

// String returns the string representation of the wool color.
func (c WoolColor) String() string {
	if int(c) < len(woolColorNames) {
		return woolColorNames[c]
	}
	return "Unknown"
}

// PaintingDirection is the wall a painting hangs on.
type PaintingDirection int32

const (
	PaintingNegZ PaintingDirection = 0
	PaintingNegX PaintingDirection = 1
	PaintingPosZ PaintingDirection = 2
	PaintingPosX PaintingDirection = 3
)

// String returns the axis notation of the direction.
func (d PaintingDirection) String() string {
	switch d {
	case PaintingNegZ:
		return "-Z"
	case PaintingNegX:
		return "-X"
	case PaintingPosZ:
		return "+Z"
	case PaintingPosX:
		return "+X"
	default:
		return "Unknown"
	}
}

// Instrument is the note block sound in BlockAction.Data1.
type Instrument int8

const (
	InstrumentHarp Instrument = iota
	InstrumentDoubleBass
	InstrumentSnareDrum
	InstrumentClicks
	InstrumentBassDrum
)

// String returns the string representation of the instrument.
func (i Instrument) String() string {
	switch i {
	case InstrumentHarp:
		return "Harp"
	case InstrumentDoubleBass:
		return "DoubleBass"
	case InstrumentSnareDrum:
		return "SnareDrum"
	case InstrumentClicks:
		return "Clicks"
	case InstrumentBassDrum:
		return "BassDrum"
	default:
		return "Unknown"
	}
}

// PistonDirection is the piston push direction in BlockAction.Data2.
type PistonDirection int8

const (
	PistonDown PistonDirection = iota
	PistonUp
	PistonSouth
	PistonWest
	PistonNorth
	PistonEast
)

// String returns the string representation of the piston direction.
func (d PistonDirection) String() string {
	switch d {
	case PistonDown:
		return "Down"
	case PistonUp:
		return "Up"
	case PistonSouth:
		return "South"
	case PistonWest:
		return "West"
	case PistonNorth:
		return "North"
	case PistonEast:
		return "East"
	default:
		return "Unknown"
	}
}

// SoundEffectID identifies a SoundEffect.
type SoundEffectID int32

const (
	SoundClick2     SoundEffectID = 1000
	SoundClick1     SoundEffectID = 1001
	SoundBowFire    SoundEffectID = 1002
	SoundDoorToggle SoundEffectID = 1003
	SoundExtinguish SoundEffectID = 1004
	SoundRecordPlay SoundEffectID = 1005
	SoundSmoke      SoundEffectID = 2000
	SoundBlockBreak SoundEffectID = 2001
)

// String returns the string representation of the effect.
func (id SoundEffectID) String() string {
	switch id {
	case SoundClick2:
		return "Click2"
	case SoundClick1:
		return "Click1"
	case SoundBowFire:
		return "BowFire"
	case SoundDoorToggle:
		return "DoorToggle"
	case SoundExtinguish:
		return "Extinguish"
	case SoundRecordPlay:
		return "RecordPlay"
	case SoundSmoke:
		return "Smoke"
	case SoundBlockBreak:
		return "BlockBreak"
	default:
		return "Unknown"
	}
}

// InvalidStateReason is the NewInvalidState code.
type InvalidStateReason int8

const (
	InvalidBed   InvalidStateReason = 0
	BeginRaining InvalidStateReason = 1
	EndRaining   InvalidStateReason = 2
)

// String returns the string representation of the reason.
func (r InvalidStateReason) String() string {
	switch r {
	case InvalidBed:
		return "InvalidBed"
	case BeginRaining:
		return "BeginRaining"
	case EndRaining:
		return "EndRaining"
	default:
		return "Unknown"
	}
}

// InventoryType is the kind of window opened by OpenWindow.
type InventoryType int8

const (
	InventoryChest     InventoryType = 0
	InventoryWorkbench InventoryType = 1
	InventoryFurnace   InventoryType = 2
	InventoryDispenser InventoryType = 3
)

// String returns the string representation of the inventory type.
func (t InventoryType) String() string {
	switch t {
	case InventoryChest:
		return "Chest"
	case InventoryWorkbench:
		return "Workbench"
	case InventoryFurnace:
		return "Furnace"
	case InventoryDispenser:
		return "Dispenser"
	default:
		return "Unknown"
	}
}
