package domain

// TripType is the vehicle generation law of a trip.
type TripType int

const (
	TripUndefined TripType = iota
	// TripConstant spawns a vehicle on a fixed period.
	TripConstant
	// TripRandom spawns a vehicle with a per-tick probability.
	TripRandom
)

func (t TripType) String() string {
	switch t {
	case TripConstant:
		return "constant"
	case TripRandom:
		return "random"
	default:
		return "undefined"
	}
}

// Trip is a vehicle generator: vehicles appear at FromNode and drive
// toward ToNode, optionally passing through Transits waypoints.
type Trip struct {
	ID            int64
	Type          TripType
	FromNode      int64
	ToNode        int64
	InitialSpeed  int
	Probability   float64
	AgentType     AgentType
	BehaviourType BehaviourType
	Transits      []int64
	// RelaxTime is how long a vehicle dwells at each transit waypoint.
	RelaxTime int
	// Time is the spawn period for constant trips.
	Time      int
	StartTime int
	EndTime   int
}
