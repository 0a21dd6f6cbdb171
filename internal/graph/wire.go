package graph

import (
	"nodegraph/internal/geometry"
)

// Wire is a directed edge from an output port to an input port
type Wire struct {
	id          string
	source      *Port
	destination *Port
	canvas      *Canvas
	revision    uint64
}

func (w *Wire) ID() string { return w.id }

func (w *Wire) Source() *Port { return w.source }

func (w *Wire) Destination() *Port { return w.destination }

// Attached reports whether the wire is still indexed by a canvas
func (w *Wire) Attached() bool { return w.canvas != nil }

// Revision is bumped every time the wire geometry is invalidated
func (w *Wire) Revision() uint64 { return w.revision }

// Endpoints returns the current scene centers of source and destination
func (w *Wire) Endpoints() (geometry.Point, geometry.Point) {
	return w.source.Center(), w.destination.Center()
}

// Bounds spans the current centers of both endpoint ports. It is recomputed
// on every call since either node may have moved.
func (w *Wire) Bounds() geometry.Rect {
	return geometry.Span(w.Endpoints())
}

// Other returns the endpoint opposite to p, or nil if p is not an endpoint
func (w *Wire) Other(p *Port) *Port {
	switch p {
	case w.source:
		return w.destination
	case w.destination:
		return w.source
	default:
		return nil
	}
}

// Involves reports whether either endpoint belongs to n
func (w *Wire) Involves(n *Node) bool {
	return w.source.node == n || w.destination.node == n
}

func (w *Wire) String() string {
	return w.source.String() + " -> " + w.destination.String()
}

func (w *Wire) invalidate() {
	w.revision++
	if w.canvas != nil {
		w.canvas.publish(Event{Type: EventWireGeometryChanged, Wire: w})
	}
}

func (w *Wire) teardown() {
	if w.canvas == nil {
		return
	}
	canvas := w.canvas
	canvas.dropWire(w)
	w.canvas = nil
	canvas.publish(Event{Type: EventWireRemoved, Wire: w})
}
