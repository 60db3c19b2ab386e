package domain

// SRID is the spatial reference of a session's world.
type SRID int

const (
	// SRIDEuclidean is a plain Cartesian plane, units are meters.
	SRIDEuclidean SRID = 0
	// SRIDWGS84 is geographic coordinates (EPSG:4326), units are degrees.
	SRIDWGS84 SRID = 4326
)

func (s SRID) String() string {
	switch s {
	case SRIDWGS84:
		return "WGS84"
	default:
		return "Euclidean"
	}
}

// Point is a 2D coordinate interpreted in the SRID it carries.
type Point struct {
	X    float64
	Y    float64
	SRID SRID
}

func NewPoint(x, y float64, srid SRID) Point {
	return Point{X: x, Y: y, SRID: srid}
}
