package coord

// Direction is one of the four orthogonal unit steps.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every Direction clockwise from North.
var Directions = [4]Direction{North, East, South, West}

// Rotation is a quarter turn.
type Rotation uint8

const (
	// Clockwise turns North into East.
	Clockwise Rotation = iota
	// CounterClockwise turns North into West.
	CounterClockwise
)

// deltas is indexed by Direction.
var deltas = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Delta returns the (dx, dy) unit step of d.
func (d Direction) Delta() (dx, dy int) {
	v := deltas[d&3]
	return v[0], v[1]
}

// Rotate turns d by a quarter in the given sense.
func (d Direction) Rotate(r Rotation) Direction {
	if r == Clockwise {
		return (d + 1) & 3
	}
	return (d + 3) & 3
}

// String returns the compass name of d.
func (d Direction) String() string {
	switch d & 3 {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	default:
		return "west"
	}
}
