package graph

// Direction tells whether a port consumes or produces data
type Direction int

const (
	DirectionUnknown Direction = iota
	Input
	Output
)

func (d Direction) String() string {
	switch d {
	case Input:
		return "input"
	case Output:
		return "output"
	default:
		return "unknown"
	}
}

// Opposite returns the direction a port must have to connect to d
func (d Direction) Opposite() Direction {
	switch d {
	case Input:
		return Output
	case Output:
		return Input
	default:
		return DirectionUnknown
	}
}
