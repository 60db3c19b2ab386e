package server

import "github.com/LdDl/micro-traffic-sim-grpc/domain"

// Numeric enum conversions are total functions: an unknown wire tag
// degrades to the Undefined variant instead of failing. Signal tokens
// are the deliberate exception; see fromPbTrafficLights.

func zoneTypeFromProto(zone int32) domain.ZoneType {
	switch zone {
	case 1:
		return domain.ZoneBirth
	case 2:
		return domain.ZoneDeath
	case 3:
		return domain.ZoneCoordination
	case 4:
		return domain.ZoneCommon
	case 5:
		return domain.ZoneIsolated
	case 6:
		return domain.ZoneLaneForBus
	case 7:
		return domain.ZoneTransit
	case 8:
		return domain.ZoneCrosswalk
	default:
		return domain.ZoneUndefined
	}
}

func tripTypeFromProto(tripType int32) domain.TripType {
	switch tripType {
	case 1:
		return domain.TripConstant
	case 2:
		return domain.TripRandom
	default:
		return domain.TripUndefined
	}
}

func agentTypeFromProto(agentType int32) domain.AgentType {
	switch agentType {
	case 1:
		return domain.AgentCar
	case 2:
		return domain.AgentBus
	case 3:
		return domain.AgentTaxi
	case 4:
		return domain.AgentPedestrian
	default:
		return domain.AgentUndefined
	}
}

func agentTypeToProto(agentType domain.AgentType) int32 {
	switch agentType {
	case domain.AgentCar:
		return 1
	case domain.AgentBus:
		return 2
	case domain.AgentTaxi:
		return 3
	case domain.AgentPedestrian:
		return 4
	default:
		return 0
	}
}

func behaviourTypeFromProto(behaviourType int32) domain.BehaviourType {
	switch behaviourType {
	case 1:
		return domain.BehaviourBlock
	case 2:
		return domain.BehaviourAggressive
	case 3:
		return domain.BehaviourCooperative
	case 4:
		return domain.BehaviourLimitSpeedByTrip
	default:
		return domain.BehaviourUndefined
	}
}

func winnerTypeFromProto(winnerType int32) domain.ConflictWinnerType {
	switch winnerType {
	case 1:
		return domain.ConflictWinnerEqual
	case 2:
		return domain.ConflictWinnerFirst
	case 3:
		return domain.ConflictWinnerSecond
	default:
		return domain.ConflictWinnerUndefined
	}
}

func conflictZoneTypeFromProto(zoneType int32) domain.ConflictZoneType {
	// Only the undefined classification exists in the engine for now.
	_ = zoneType
	return domain.ConflictZoneUndefined
}

func groupTypeFromProto(groupType int32) domain.GroupType {
	switch groupType {
	case 1:
		return domain.GroupVehicle
	case 2:
		return domain.GroupPedestrian
	default:
		return domain.GroupUndefined
	}
}
