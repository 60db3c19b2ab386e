package domain

// VehicleState is one vehicle of the roster after a tick.
type VehicleState struct {
	ID      int64
	Type    AgentType
	Speed   int
	Bearing float64
	Cell    int64
	// IntermediateCells are cells crossed during the last tick, in order,
	// excluding the final one.
	IntermediateCells []int64
	Point             Point
	TravelTime        float64
	TripID            int64
	TailCells         []int64
}

// TLGroupState is the current signal of one traffic-light group.
type TLGroupState struct {
	GroupID int64
	Signal  SignalType
}

// TLState is the per-group state of one traffic light.
type TLState struct {
	ID     int64
	Groups []TLGroupState
}

// StepDump is the snapshot returned by the engine after one tick.
type StepDump struct {
	// Timestamp is the tick counter after the advance. Ticks are a
	// gapless increasing sequence starting at zero for a fresh session.
	Timestamp int64
	Vehicles  []VehicleState
	TLS       []TLState
}
