package domain

// ZoneType is the role a cell plays in the cellular automaton.
type ZoneType int

const (
	ZoneUndefined ZoneType = iota
	// ZoneBirth cells may spawn new vehicles.
	ZoneBirth
	// ZoneDeath cells absorb arriving vehicles.
	ZoneDeath
	ZoneCoordination
	ZoneCommon
	ZoneIsolated
	ZoneLaneForBus
	ZoneTransit
	ZoneCrosswalk
)

func (z ZoneType) String() string {
	switch z {
	case ZoneBirth:
		return "birth"
	case ZoneDeath:
		return "death"
	case ZoneCoordination:
		return "coordination"
	case ZoneCommon:
		return "common"
	case ZoneIsolated:
		return "isolated"
	case ZoneLaneForBus:
		return "lane_for_bus"
	case ZoneTransit:
		return "transit"
	case ZoneCrosswalk:
		return "crosswalk"
	default:
		return "undefined"
	}
}
