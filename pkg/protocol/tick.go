package protocol

import "time"

// World time.
const (
	// TPS is the number of server ticks per second.
	TPS = 20

	// DayLength is the length of a full day in ticks (20 minutes).
	DayLength = 24000
)

// TimeTable marks named points of the day, in ticks since sunrise.
type TimeTable int64

const (
	Sunrise  TimeTable = 0
	Noon     TimeTable = 6000
	Sunset   TimeTable = 12000
	Midnight TimeTable = 18000
)

// String returns the string representation of the time of day.
func (t TimeTable) String() string {
	switch t {
	case Sunrise:
		return "Sunrise"
	case Noon:
		return "Noon"
	case Sunset:
		return "Sunset"
	case Midnight:
		return "Midnight"
	default:
		return "Unknown"
	}
}

// TicksToDuration converts ticks to wall-clock time at TPS.
func TicksToDuration(ticks int64) time.Duration {
	return time.Duration(ticks) * time.Second / TPS
}

// TimeOfDay returns the position of a world time within its day.
func TimeOfDay(ticks int64) int64 {
	t := ticks % DayLength
	if t < 0 {
		t += DayLength
	}
	return t
}

// Day returns the index of the day containing a world time.
func Day(ticks int64) int64 {
	d := ticks / DayLength
	if ticks < 0 && ticks%DayLength != 0 {
		d--
	}
	return d
}
