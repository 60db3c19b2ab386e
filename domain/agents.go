package domain

// AgentType is the kind of agent a trip generates.
type AgentType int

const (
	AgentUndefined AgentType = iota
	AgentCar
	AgentBus
	AgentTaxi
	AgentPedestrian
)

func (a AgentType) String() string {
	switch a {
	case AgentCar:
		return "car"
	case AgentBus:
		return "bus"
	case AgentTaxi:
		return "taxi"
	case AgentPedestrian:
		return "pedestrian"
	default:
		return "undefined"
	}
}

// BehaviourType is the driving behaviour of generated agents.
type BehaviourType int

const (
	BehaviourUndefined BehaviourType = iota
	BehaviourBlock
	BehaviourAggressive
	BehaviourCooperative
	BehaviourLimitSpeedByTrip
)

func (b BehaviourType) String() string {
	switch b {
	case BehaviourBlock:
		return "block"
	case BehaviourAggressive:
		return "aggressive"
	case BehaviourCooperative:
		return "cooperative"
	case BehaviourLimitSpeedByTrip:
		return "limit_speed_by_trip"
	default:
		return "undefined"
	}
}
