package graph

import (
	"fmt"
	"slices"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
)

// Canvas owns nodes and wires and mediates the click-to-connect protocol
type Canvas struct {
	nodes   []*Node
	byID    map[string]*Node
	wires   []*Wire
	pending *Port
	bus     *EventBus
	log     logr.Logger
}

// Option configures a Canvas
type Option func(*Canvas)

// WithLogger sets the logger used for connection diagnostics
func WithLogger(log logr.Logger) Option {
	return func(c *Canvas) {
		c.log = log
	}
}

// WithEventBus publishes canvas events on bus instead of a private one
func WithEventBus(bus *EventBus) Option {
	return func(c *Canvas) {
		c.bus = bus
	}
}

// NewCanvas creates an empty canvas in the idle state
func NewCanvas(opts ...Option) *Canvas {
	c := &Canvas{
		nodes: make([]*Node, 0),
		byID:  make(map[string]*Node),
		wires: make([]*Wire, 0),
		log:   logr.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.bus == nil {
		c.bus = NewEventBus()
	}
	return c
}

// Events returns the bus canvas events are published on
func (c *Canvas) Events() *EventBus { return c.bus }

// AddNode puts n on the canvas
func (c *Canvas) AddNode(n *Node) error {
	if n == nil {
		return fmt.Errorf("%w: nil node", ErrInvalidNode)
	}
	if n.canvas != nil {
		return fmt.Errorf("%w: %s", ErrNodeAttached, n.name)
	}
	n.canvas = c
	c.nodes = append(c.nodes, n)
	c.byID[n.id] = n
	c.log.V(2).Info("node added", "node", n.name, "id", n.id)
	c.publish(Event{Type: EventNodeAdded, Node: n})
	return nil
}

// RemoveNode severs every wire touching n and drops it from the canvas
func (c *Canvas) RemoveNode(n *Node) error {
	if n == nil || n.canvas != c {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, n)
	}
	n.Remove()
	return nil
}

// Node looks up a node by ID
func (c *Canvas) Node(id string) (*Node, bool) {
	n, ok := c.byID[id]
	return n, ok
}

// NodesByName returns every node with the given name in insertion order
func (c *Canvas) NodesByName(name string) []*Node {
	var found []*Node
	for _, n := range c.nodes {
		if n.name == name {
			found = append(found, n)
		}
	}
	return found
}

// Nodes returns the nodes in insertion order
func (c *Canvas) Nodes() []*Node {
	return slices.Clone(c.nodes)
}

// Wires returns the wire index in creation order
func (c *Canvas) Wires() []*Wire {
	return slices.Clone(c.wires)
}

// Connect wires two ports directly, bypassing the click protocol
func (c *Canvas) Connect(a, b *Port) (*Wire, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: nil port", ErrInvalidPort)
	}
	if a.node.canvas != c {
		return nil, fmt.Errorf("%w: %s", ErrForeignCanvas, a)
	}
	return a.Connect(b)
}

// createWire is the low-level wire factory used by Port.Connect. Direction
// checks happen in the port.
func (c *Canvas) createWire(src, dst *Port) *Wire {
	w := &Wire{
		id:          uuid.NewString(),
		source:      src,
		destination: dst,
		canvas:      c,
	}
	c.wires = append(c.wires, w)
	return w
}

func (c *Canvas) dropWire(w *Wire) {
	c.wires = slices.DeleteFunc(c.wires, func(x *Wire) bool { return x == w })
}

func (c *Canvas) dropNode(n *Node) {
	if c.pending != nil && c.pending.node == n {
		c.setPending(nil)
	}
	c.nodes = slices.DeleteFunc(c.nodes, func(x *Node) bool { return x == n })
	delete(c.byID, n.id)
	n.canvas = nil
	c.log.V(2).Info("node removed", "node", n.name, "id", n.id)
	c.publish(Event{Type: EventNodeRemoved, Node: n})
}

func (c *Canvas) publish(event Event) {
	c.bus.Publish(event)
}
