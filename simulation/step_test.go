package simulation

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LdDl/micro-traffic-sim-grpc/domain"
)

func newTestSession() *Session {
	return newSession(domain.SRIDEuclidean, slog.Default(), domain.VerboseSilent)
}

// straightRoad builds n linked cells 0..n-1: a birth cell, common cells
// and a death cell, all with speed limit 1.
func straightRoad(n int) []domain.Cell {
	cells := make([]domain.Cell, 0, n)
	for i := int64(0); i < int64(n); i++ {
		zone := domain.ZoneCommon
		if i == 0 {
			zone = domain.ZoneBirth
		} else if i == int64(n)-1 {
			zone = domain.ZoneDeath
		}
		forward := domain.NoLink
		if i < int64(n)-1 {
			forward = i + 1
		}
		cells = append(cells, domain.Cell{
			ID:          i,
			Point:       domain.NewPoint(float64(i), 0, domain.SRIDEuclidean),
			ZoneType:    zone,
			SpeedLimit:  1,
			LeftNode:    domain.NoLink,
			ForwardNode: forward,
			RightNode:   domain.NoLink,
		})
	}
	return cells
}

func constantTrip(id, from, to int64) domain.Trip {
	return domain.Trip{
		ID:            id,
		Type:          domain.TripConstant,
		FromNode:      from,
		ToNode:        to,
		InitialSpeed:  1,
		Time:          1,
		AgentType:     domain.AgentCar,
		BehaviourType: domain.BehaviourCooperative,
	}
}

func TestSession_StepEmptyGrid(t *testing.T) {
	req := require.New(t)
	s := newTestSession()

	_, err := s.Step()
	req.Error(err)
	req.Contains(err.Error(), "no cells in the grid")
}

func TestSession_TickSequence(t *testing.T) {
	req := require.New(t)
	s := newTestSession()
	s.AddCells(straightRoad(4))

	// Ticks form a gapless sequence starting at one
	for want := int64(1); want <= 5; want++ {
		dump, err := s.Step()
		req.NoError(err)
		req.Equal(want, dump.Timestamp)
	}
}

func TestSession_SpawnMoveDespawn(t *testing.T) {
	req := require.New(t)
	s := newTestSession()
	s.AddCells(straightRoad(4))
	s.AddTrip(constantTrip(1, 0, 3))

	// Tick 1: the generator fires, the road was empty
	dump, err := s.Step()
	req.NoError(err)
	req.Len(dump.Vehicles, 1)
	req.Equal(int64(0), dump.Vehicles[0].Cell)

	// Tick 2: the first vehicle advances, another one spawns behind it
	dump, err = s.Step()
	req.NoError(err)
	req.Len(dump.Vehicles, 2)
	req.Equal(int64(1), dump.Vehicles[0].Cell)
	req.Equal(int64(0), dump.Vehicles[1].Cell)

	// Tick 3: a rolling column of three
	dump, err = s.Step()
	req.NoError(err)
	req.Len(dump.Vehicles, 3)

	// Tick 4: the first vehicle reaches the death cell and disappears
	dump, err = s.Step()
	req.NoError(err)
	req.Len(dump.Vehicles, 3)
	for _, v := range dump.Vehicles {
		req.NotEqual(int64(1), v.ID)
	}
}

func TestSession_OccupiedBirthBlocksSpawn(t *testing.T) {
	req := require.New(t)
	s := newTestSession()
	s.AddCells(straightRoad(4))
	// A blocking agent parks on the birth cell forever.
	s.AddTrip(domain.Trip{
		ID:            1,
		Type:          domain.TripConstant,
		FromNode:      0,
		ToNode:        3,
		Time:          1,
		AgentType:     domain.AgentCar,
		BehaviourType: domain.BehaviourBlock,
	})

	for i := 0; i < 5; i++ {
		dump, err := s.Step()
		req.NoError(err)
		// Exactly one vehicle ever exists: the birth cell never frees up
		req.Len(dump.Vehicles, 1)
		req.Equal(int64(0), dump.Vehicles[0].Cell)
	}
}

func TestSession_RedLightHaltsVehicle(t *testing.T) {
	req := require.New(t)
	s := newTestSession()
	s.AddCells(straightRoad(5))
	s.AddTrip(constantTrip(1, 0, 4))
	s.AddTrafficLight(domain.TrafficLight{
		ID: 1,
		Groups: []domain.TrafficLightGroup{{
			ID:      100,
			Cells:   []int64{1},
			Signals: []domain.SignalType{domain.SignalRed},
			Type:    domain.GroupVehicle,
		}},
		PhaseTimes: []int{1000},
	})

	// Tick 1: spawn; tick 2: the vehicle enters the controlled cell
	_, err := s.Step()
	req.NoError(err)
	dump, err := s.Step()
	req.NoError(err)
	req.Equal(int64(1), dump.Vehicles[0].Cell)

	// The light never turns green: the vehicle stays put with zero speed
	for i := 0; i < 3; i++ {
		dump, err = s.Step()
		req.NoError(err)
		req.Equal(int64(1), dump.Vehicles[0].Cell)
		req.Equal(0, dump.Vehicles[0].Speed)
	}
	req.Equal([]domain.TLGroupState{{GroupID: 100, Signal: domain.SignalRed}}, dump.TLS[0].Groups)
}

func TestSession_LightPhaseCycle(t *testing.T) {
	req := require.New(t)
	s := newTestSession()
	s.AddCells(straightRoad(3))
	s.AddTrafficLight(domain.TrafficLight{
		ID: 1,
		Groups: []domain.TrafficLightGroup{{
			ID:      100,
			Cells:   []int64{1},
			Signals: []domain.SignalType{domain.SignalGreen, domain.SignalRed},
			Type:    domain.GroupVehicle,
		}},
		PhaseTimes: []int{2, 3},
	})

	want := []domain.SignalType{
		domain.SignalGreen, // phase 0, second tick flips below
		domain.SignalRed,
		domain.SignalRed,
		domain.SignalRed,
		domain.SignalGreen,
	}
	for i, sig := range want {
		dump, err := s.Step()
		req.NoError(err)
		req.Equal(sig, dump.TLS[0].Groups[0].Signal, "tick %d", i+1)
	}
}

func TestSession_ConflictYield(t *testing.T) {
	req := require.New(t)
	s := newTestSession()
	s.AddCells(straightRoad(3))
	s.AddConflictZone(domain.ConflictZone{
		ID:         1,
		FirstEdge:  domain.ConflictEdge{Source: 1, Target: 2},
		SecondEdge: domain.ConflictEdge{Source: 11, Target: 2},
		Winner:     domain.ConflictWinnerSecond,
	})

	// While the winning movement's source cell is occupied, the losing
	// movement waits
	s.occupied[11] = 99
	req.True(s.mustYield(1, 2))

	// Once it frees up, the losing movement proceeds
	delete(s.occupied, 11)
	req.False(s.mustYield(1, 2))

	// The winning movement itself never yields
	s.occupied[1] = 98
	req.False(s.mustYield(11, 2))
}

func TestSession_RandomTripProbabilityBounds(t *testing.T) {
	req := require.New(t)

	// Probability 1 spawns on every free tick
	s := newTestSession()
	s.AddCells(straightRoad(4))
	s.AddTrip(domain.Trip{
		ID:            1,
		Type:          domain.TripRandom,
		FromNode:      0,
		ToNode:        3,
		InitialSpeed:  1,
		Probability:   1.0,
		AgentType:     domain.AgentCar,
		BehaviourType: domain.BehaviourCooperative,
	})
	dump, err := s.Step()
	req.NoError(err)
	req.Len(dump.Vehicles, 1)

	// Probability 0 never spawns
	s = newTestSession()
	s.AddCells(straightRoad(4))
	s.AddTrip(domain.Trip{
		ID:          1,
		Type:        domain.TripRandom,
		FromNode:    0,
		ToNode:      3,
		Probability: 0.0,
	})
	for i := 0; i < 10; i++ {
		dump, err = s.Step()
		req.NoError(err)
		req.Empty(dump.Vehicles)
	}
}

func TestSession_TimeWindow(t *testing.T) {
	req := require.New(t)
	s := newTestSession()
	s.AddCells(straightRoad(10))
	trip := constantTrip(1, 0, 9)
	trip.StartTime = 3
	trip.EndTime = 4
	s.AddTrip(trip)

	counts := make([]int, 0, 6)
	for i := 0; i < 6; i++ {
		dump, err := s.Step()
		req.NoError(err)
		counts = append(counts, len(dump.Vehicles))
	}
	// Nothing before tick 3, one spawn on ticks 3 and 4, none after
	req.Equal([]int{0, 0, 1, 2, 2, 2}, counts)
}
