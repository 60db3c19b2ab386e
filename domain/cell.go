package domain

// NoLink marks an absent neighbor link of a cell.
const NoLink int64 = -1

// Cell is a single element of the road grid. A cell has at most three
// outgoing links (left, forward, right) referencing other cell IDs.
type Cell struct {
	ID          int64
	Point       Point
	ZoneType    ZoneType
	SpeedLimit  int
	LeftNode    int64
	ForwardNode int64
	RightNode   int64
	MesoLinkID  int64
}

// Neighbors returns the outgoing links that are actually set.
func (c Cell) Neighbors() []int64 {
	out := make([]int64, 0, 3)
	for _, n := range []int64{c.LeftNode, c.ForwardNode, c.RightNode} {
		if n != NoLink {
			out = append(out, n)
		}
	}
	return out
}
