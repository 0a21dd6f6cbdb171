package graph

import (
	"fmt"

	"nodegraph/internal/geometry"
)

// Port is a connection point owned by exactly one node
type Port struct {
	name      string
	label     string
	direction Direction
	index     int
	node      *Node
	local     geometry.Rect

	// peer and wire are set and cleared together
	peer *Port
	wire *Wire
}

func (p *Port) Name() string { return p.name }

func (p *Port) Label() string { return p.label }

func (p *Port) Direction() Direction { return p.direction }

func (p *Port) Index() int { return p.index }

func (p *Port) Node() *Node { return p.node }

// Peer returns the port on the other end of the wire, or nil
func (p *Port) Peer() *Port { return p.peer }

// Wire returns the attached wire, or nil
func (p *Port) Wire() *Wire { return p.wire }

// Connected reports whether the port holds a wire
func (p *Port) Connected() bool { return p.wire != nil }

// LocalRect returns the port marker relative to the node origin
func (p *Port) LocalRect() geometry.Rect { return p.local }

// SceneRect returns the port marker in scene coordinates
func (p *Port) SceneRect() geometry.Rect {
	return p.local.Translate(p.node.position)
}

// Center returns the marker midpoint in scene coordinates
func (p *Port) Center() geometry.Point {
	return p.SceneRect().Center()
}

func (p *Port) String() string {
	if p == nil {
		return "<nil>"
	}
	if p.node == nil {
		return p.name
	}
	return p.node.name + "." + p.name
}

// Connect wires p to other. The wire always runs from the output port to the
// input port, whichever side initiated the call. Existing connections on
// either port are torn down first.
func (p *Port) Connect(other *Port) (*Wire, error) {
	if other == nil {
		return nil, fmt.Errorf("%w: cannot connect %s to nil", ErrInvalidPort, p)
	}
	if p.direction == other.direction {
		return nil, fmt.Errorf("%w: %s and %s are both %s ports",
			ErrInvalidDirection, p, other, p.direction)
	}
	if p.node == other.node {
		return nil, fmt.Errorf("%w: %s and %s", ErrSameNode, p, other)
	}

	canvas := p.node.canvas
	if canvas == nil {
		return nil, fmt.Errorf("%w: %s", ErrDetachedNode, p.node.name)
	}
	if other.node.canvas == nil {
		return nil, fmt.Errorf("%w: %s", ErrDetachedNode, other.node.name)
	}
	if other.node.canvas != canvas {
		return nil, fmt.Errorf("%w: %s and %s", ErrForeignCanvas, p, other)
	}

	p.Disconnect()
	other.Disconnect()

	src, dst := p, other
	if src.direction == Input {
		src, dst = dst, src
	}

	wire := canvas.createWire(src, dst)
	src.attach(dst, wire)
	dst.attach(src, wire)
	canvas.publish(Event{Type: EventWireCreated, Wire: wire})
	wire.invalidate()

	return wire, nil
}

// Disconnect removes the attached wire from both endpoints and from the
// canvas. It is a no-op on an unconnected port.
func (p *Port) Disconnect() {
	wire := p.wire
	if wire == nil {
		return
	}
	peer := p.peer

	p.detach()
	if peer != nil {
		peer.detach()
	}
	wire.teardown()
}

func (p *Port) attach(peer *Port, wire *Wire) {
	p.peer = peer
	p.wire = wire
}

func (p *Port) detach() {
	p.peer = nil
	p.wire = nil
}
