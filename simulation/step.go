package simulation

import (
	"fmt"
	"math"
	"sort"

	"github.com/LdDl/micro-traffic-sim-grpc/domain"
)

// Step advances the session by exactly one tick: traffic lights move
// through their phases, every vehicle tries to advance along its route,
// trips spawn new vehicles at free birth cells. The returned dump reports
// the tick counter after the advance; counters form a gapless increasing
// sequence starting at zero.
func (s *Session) Step() (domain.StepDump, error) {
	if len(s.cells) == 0 {
		return domain.StepDump{}, fmt.Errorf("no cells in the grid")
	}

	s.tick++

	for _, ls := range s.lights {
		ls.advance()
	}
	halted := s.haltedCells()

	s.moveVehicles(halted)
	s.spawnVehicles()

	dump := domain.StepDump{
		Timestamp: s.tick,
		Vehicles:  s.vehicleStates(),
		TLS:       s.lightStates(),
	}
	if s.verbose >= domain.VerboseInfo {
		s.log.Info("Simulation step finished",
			"session_id", s.id, "tick", s.tick, "vehicles", len(dump.Vehicles))
	}
	return dump, nil
}

// haltedCells collects the controlled cells of every group whose current
// signal is not green. A vehicle standing on a halted cell may not leave
// it this tick.
func (s *Session) haltedCells() map[int64]struct{} {
	halted := make(map[int64]struct{})
	for _, ls := range s.lights {
		for _, gs := range ls.currentSignals() {
			if gs.Signal == domain.SignalGreen {
				continue
			}
			for _, g := range ls.light.Groups {
				if g.ID != gs.GroupID {
					continue
				}
				for _, cellID := range g.Cells {
					halted[cellID] = struct{}{}
				}
			}
		}
	}
	return halted
}

func (s *Session) moveVehicles(halted map[int64]struct{}) {
	ids := make([]int64, 0, len(s.vehicles))
	for id := range s.vehicles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		v, ok := s.vehicles[id]
		if !ok {
			// Despawned earlier in this very tick.
			continue
		}
		v.travelTime++
		v.lastCrossed = v.lastCrossed[:0]

		if v.relaxLeft > 0 {
			v.relaxLeft--
			v.speed = 0
			continue
		}

		steps := s.targetSpeed(v)
		moved := 0
		for moved < steps {
			if _, stop := halted[v.cell]; stop {
				break
			}
			next, ok := s.nextCell(v)
			if !ok {
				break
			}
			if _, busy := s.occupied[next]; busy {
				break
			}
			if s.mustYield(v.cell, next) {
				break
			}
			s.advanceVehicle(v, next)
			moved++
			if _, alive := s.vehicles[v.id]; !alive {
				break
			}
			if v.relaxLeft > 0 {
				break
			}
		}
		v.speed = moved
	}
}

// targetSpeed accelerates by one per tick up to the speed limit of the
// current cell. Blocking agents never move.
func (s *Session) targetSpeed(v *vehicle) int {
	if v.behaviour == domain.BehaviourBlock {
		return 0
	}
	limit := 1
	if c, ok := s.cells[v.cell]; ok && c.SpeedLimit > 0 {
		limit = c.SpeedLimit
	}
	want := v.speed + 1
	if want > limit {
		want = limit
	}
	if want < 1 {
		want = 1
	}
	return want
}

// nextCell picks the outgoing link that leads toward the vehicle's next
// waypoint (transit or destination). The forward link wins when no link
// matches directly; a vehicle with no usable link stays put.
func (s *Session) nextCell(v *vehicle) (int64, bool) {
	c, ok := s.cells[v.cell]
	if !ok {
		return 0, false
	}
	goal := v.target
	if len(v.transits) > 0 {
		goal = v.transits[0]
	}
	for _, n := range c.Neighbors() {
		if n == goal {
			return n, true
		}
	}
	if c.ForwardNode != domain.NoLink {
		return c.ForwardNode, true
	}
	for _, n := range c.Neighbors() {
		return n, true
	}
	return 0, false
}

// mustYield applies conflict-zone priority: the losing movement waits
// while the winning movement's source cell is occupied.
func (s *Session) mustYield(from, to int64) bool {
	for _, z := range s.zones {
		first := z.FirstEdge.Source == from && z.FirstEdge.Target == to
		second := z.SecondEdge.Source == from && z.SecondEdge.Target == to
		if !first && !second {
			continue
		}
		switch z.Winner {
		case domain.ConflictWinnerFirst:
			if second {
				if _, busy := s.occupied[z.FirstEdge.Source]; busy {
					return true
				}
			}
		case domain.ConflictWinnerSecond:
			if first {
				if _, busy := s.occupied[z.SecondEdge.Source]; busy {
					return true
				}
			}
		default:
			// Equal or undefined priority: first come, first served.
		}
	}
	return false
}

func (s *Session) advanceVehicle(v *vehicle, next int64) {
	prev := v.cell
	delete(s.occupied, prev)
	v.lastCrossed = append(v.lastCrossed, prev)
	v.cell = next
	v.bearing = s.bearing(prev, next)

	if len(v.transits) > 0 && v.transits[0] == next {
		v.transits = v.transits[1:]
		v.relaxLeft = v.relaxTime
	}

	if c, ok := s.cells[next]; ok && c.ZoneType == domain.ZoneDeath {
		delete(s.vehicles, v.id)
		return
	}
	s.occupied[next] = v.id
}

func (s *Session) bearing(from, to int64) float64 {
	a, okA := s.cells[from]
	b, okB := s.cells[to]
	if !okA || !okB {
		return 0
	}
	deg := math.Atan2(b.Point.Y-a.Point.Y, b.Point.X-a.Point.X) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// spawnVehicles runs every generator whose time window covers the
// current tick and whose birth cell is free.
func (s *Session) spawnVehicles() {
	for _, t := range s.trips {
		if t.StartTime > 0 && s.tick < int64(t.StartTime) {
			continue
		}
		if t.EndTime > 0 && s.tick > int64(t.EndTime) {
			continue
		}
		if _, busy := s.occupied[t.FromNode]; busy {
			continue
		}
		if _, ok := s.cells[t.FromNode]; !ok {
			continue
		}

		spawn := false
		switch t.Type {
		case domain.TripConstant:
			period := int64(t.Time)
			if period < 1 {
				period = 1
			}
			spawn = s.tick%period == 0
		case domain.TripRandom:
			spawn = s.rng.Float64() < t.Probability
		}
		if !spawn {
			continue
		}

		s.nextVehID++
		v := &vehicle{
			id:        s.nextVehID,
			tripID:    t.ID,
			agentType: t.AgentType,
			behaviour: t.BehaviourType,
			speed:     t.InitialSpeed,
			cell:      t.FromNode,
			transits:  append([]int64(nil), t.Transits...),
			relaxTime: t.RelaxTime,
			target:    t.ToNode,
		}
		s.vehicles[v.id] = v
		s.occupied[v.cell] = v.id
		if s.verbose >= domain.VerboseDebug {
			s.log.Debug("Vehicle spawned",
				"session_id", s.id, "vehicle_id", v.id, "trip_id", t.ID, "cell", v.cell)
		}
	}
}

func (s *Session) vehicleStates() []domain.VehicleState {
	ids := make([]int64, 0, len(s.vehicles))
	for id := range s.vehicles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]domain.VehicleState, 0, len(ids))
	for _, id := range ids {
		v := s.vehicles[id]
		point := domain.Point{SRID: s.srid}
		if c, ok := s.cells[v.cell]; ok {
			point = c.Point
		}
		out = append(out, domain.VehicleState{
			ID:                v.id,
			Type:              v.agentType,
			Speed:             v.speed,
			Bearing:           v.bearing,
			Cell:              v.cell,
			IntermediateCells: append([]int64(nil), v.lastCrossed...),
			Point:             point,
			TravelTime:        v.travelTime,
			TripID:            v.tripID,
			TailCells:         append([]int64(nil), v.tail...),
		})
	}
	return out
}

func (s *Session) lightStates() []domain.TLState {
	out := make([]domain.TLState, 0, len(s.lights))
	for _, ls := range s.lights {
		out = append(out, domain.TLState{ID: ls.light.ID, Groups: ls.currentSignals()})
	}
	return out
}
