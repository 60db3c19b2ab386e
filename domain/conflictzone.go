package domain

// ConflictWinnerType designates priority between two crossing movements.
type ConflictWinnerType int

const (
	ConflictWinnerUndefined ConflictWinnerType = iota
	ConflictWinnerEqual
	ConflictWinnerFirst
	ConflictWinnerSecond
)

func (w ConflictWinnerType) String() string {
	switch w {
	case ConflictWinnerEqual:
		return "equal"
	case ConflictWinnerFirst:
		return "first"
	case ConflictWinnerSecond:
		return "second"
	default:
		return "undefined"
	}
}

// ConflictZoneType is reserved for future zone classification.
type ConflictZoneType int

const (
	ConflictZoneUndefined ConflictZoneType = iota
)

// ConflictEdge is one directed movement through a conflict area.
type ConflictEdge struct {
	Source int64
	Target int64
}

// ConflictZone is a declared priority rule between two crossing
// movements at an unregulated or overlapping intersection.
type ConflictZone struct {
	ID         int64
	FirstEdge  ConflictEdge
	SecondEdge ConflictEdge
	Winner     ConflictWinnerType
	ZoneType   ConflictZoneType
}
