package graph

import "nodegraph/internal/geometry"

// Default node metrics
const (
	DefaultBaseWidth  = 125
	DefaultBaseHeight = 50
	DefaultPortWidth  = 20
	DefaultPortHeight = 15
	DefaultPortGap    = 5
)

// Layout holds the metrics a node derives its geometry from
type Layout struct {
	Base    geometry.Size
	Port    geometry.Size
	PortGap float64
}

// DefaultLayout returns the stock node metrics
func DefaultLayout() Layout {
	return Layout{
		Base:    geometry.Size{W: DefaultBaseWidth, H: DefaultBaseHeight},
		Port:    geometry.Size{W: DefaultPortWidth, H: DefaultPortHeight},
		PortGap: DefaultPortGap,
	}
}

// IsZero reports whether no metric has been set
func (l Layout) IsZero() bool {
	return l == Layout{}
}

// body computes the node-local body rect. A row of port height is reserved
// on top for output markers, and the right edge grows by one port height per
// populated side.
func (l Layout) body(hasInputs, hasOutputs bool) geometry.Rect {
	r := geometry.Rect{W: l.Base.W, H: l.Base.H}
	if hasOutputs {
		r.Y += l.Port.H
		r.W += l.Port.H
	}
	if hasInputs {
		r.W += l.Port.H
	}
	return r
}

// portRect places port index of direction dir relative to the node origin.
// Outputs sit on the top edge, inputs on the bottom edge of the body.
func (l Layout) portRect(dir Direction, index int, body geometry.Rect) geometry.Rect {
	x := float64(index) * (l.Port.W + l.PortGap)
	y := 0.0
	if dir == Input {
		y = body.Bottom()
	}
	return geometry.RectAt(geometry.Pt(x, y), l.Port)
}
