package domain

import "fmt"

// SignalType is one state of a traffic-light group.
type SignalType int

const (
	SignalRed SignalType = iota
	SignalGreen
	SignalYellow
	SignalRedYellow
)

func (s SignalType) String() string {
	switch s {
	case SignalGreen:
		return "g"
	case SignalYellow:
		return "y"
	case SignalRedYellow:
		return "ry"
	default:
		return "r"
	}
}

// ParseSignal maps a wire token to a SignalType. Unlike the numeric enum
// conversions there is no Undefined fallback here: an unknown token is a
// hard error and the caller must reject the whole message.
func ParseSignal(token string) (SignalType, error) {
	switch token {
	case "r", "red":
		return SignalRed, nil
	case "g", "green":
		return SignalGreen, nil
	case "y", "yellow":
		return SignalYellow, nil
	case "ry", "redyellow":
		return SignalRedYellow, nil
	default:
		return SignalRed, fmt.Errorf("signal type '%s' not supported", token)
	}
}

// GroupType tells which kind of agents a signal group controls.
type GroupType int

const (
	GroupUndefined GroupType = iota
	GroupVehicle
	GroupPedestrian
)

// TrafficLightGroup is a set of controlled cells sharing one signal row:
// Signals[i] is the group's state during phase i.
type TrafficLightGroup struct {
	ID              int64
	Label           string
	Cells           []int64
	Signals         []SignalType
	Geometry        []Point
	Type            GroupType
	CrosswalkLength float64
}

// TrafficLight is an intersection controller. PhaseTimes[i] is the
// duration (in ticks) of phase i; every group carries one signal per
// phase.
type TrafficLight struct {
	ID         int64
	Point      *Point
	Groups     []TrafficLightGroup
	PhaseTimes []int
}
