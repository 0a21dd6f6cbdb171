package graph

import (
	"fmt"

	"github.com/google/uuid"

	"nodegraph/internal/geometry"
)

// NodeSpec describes a node to build
type NodeSpec struct {
	Name     string
	Label    string // defaults to Name
	Inputs   []string
	Outputs  []string
	Position geometry.Point
	Layout   Layout // zero value means DefaultLayout
}

// Node is a positioned vertex owning ordered input and output ports
type Node struct {
	id       string
	name     string
	label    string
	position geometry.Point
	layout   Layout
	body     geometry.Rect // node-local
	inputs   []*Port
	outputs  []*Port
	canvas   *Canvas
}

// NewNode builds a node and its ports. Port names must be non-empty and
// unique within a direction.
func NewNode(spec NodeSpec) (*Node, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidNode)
	}
	if err := checkPortNames(spec.Name, Input, spec.Inputs); err != nil {
		return nil, err
	}
	if err := checkPortNames(spec.Name, Output, spec.Outputs); err != nil {
		return nil, err
	}

	layout := spec.Layout
	if layout.IsZero() {
		layout = DefaultLayout()
	}
	label := spec.Label
	if label == "" {
		label = spec.Name
	}

	n := &Node{
		id:       uuid.NewString(),
		name:     spec.Name,
		label:    label,
		position: spec.Position,
		layout:   layout,
		body:     layout.body(len(spec.Inputs) > 0, len(spec.Outputs) > 0),
	}
	n.inputs = n.buildPorts(Input, spec.Inputs)
	n.outputs = n.buildPorts(Output, spec.Outputs)

	return n, nil
}

func checkPortNames(node string, dir Direction, names []string) error {
	seen := make(map[string]struct{}, len(names))
	for i, name := range names {
		if name == "" {
			return fmt.Errorf("%w: %s %s port %d has no name", ErrInvalidPort, node, dir, i)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: %s has duplicate %s port %q", ErrInvalidPort, node, dir, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

func (n *Node) buildPorts(dir Direction, names []string) []*Port {
	ports := make([]*Port, 0, len(names))
	for i, name := range names {
		ports = append(ports, &Port{
			name:      name,
			label:     name,
			direction: dir,
			index:     i,
			node:      n,
			local:     n.layout.portRect(dir, i, n.body),
		})
	}
	return ports
}

func (n *Node) ID() string { return n.id }

func (n *Node) Name() string { return n.name }

func (n *Node) Label() string { return n.label }

func (n *Node) Position() geometry.Point { return n.position }

func (n *Node) Layout() Layout { return n.layout }

// Canvas returns the canvas the node is on, or nil
func (n *Node) Canvas() *Canvas { return n.canvas }

// Size returns the body size
func (n *Node) Size() geometry.Size { return n.body.Size() }

// Body returns the body rect in scene coordinates
func (n *Node) Body() geometry.Rect {
	return n.body.Translate(n.position)
}

// Bounds returns the body and every port marker in scene coordinates
func (n *Node) Bounds() geometry.Rect {
	r := n.body
	for _, p := range n.Ports() {
		r = r.Union(p.local)
	}
	return r.Translate(n.position)
}

// Inputs returns the input ports in order
func (n *Node) Inputs() []*Port {
	return append([]*Port(nil), n.inputs...)
}

// Outputs returns the output ports in order
func (n *Node) Outputs() []*Port {
	return append([]*Port(nil), n.outputs...)
}

// Ports returns inputs followed by outputs
func (n *Node) Ports() []*Port {
	ports := make([]*Port, 0, len(n.inputs)+len(n.outputs))
	ports = append(ports, n.inputs...)
	return append(ports, n.outputs...)
}

// Input looks up an input port by name
func (n *Node) Input(name string) *Port {
	return findPort(n.inputs, name)
}

// Output looks up an output port by name
func (n *Node) Output(name string) *Port {
	return findPort(n.outputs, name)
}

func findPort(ports []*Port, name string) *Port {
	for _, p := range ports {
		if p.name == name {
			return p
		}
	}
	return nil
}

// Wires returns the wires attached to any port of the node
func (n *Node) Wires() []*Wire {
	var wires []*Wire
	for _, p := range n.Ports() {
		if p.wire != nil {
			wires = append(wires, p.wire)
		}
	}
	return wires
}

// Move places the node at pos. Every attached wire is invalidated since its
// endpoint coordinates follow the node.
func (n *Node) Move(pos geometry.Point) {
	if pos == n.position {
		return
	}
	n.position = pos
	if n.canvas != nil {
		n.canvas.publish(Event{Type: EventNodeMoved, Node: n})
	}
	for _, w := range n.Wires() {
		w.invalidate()
	}
}

// MoveBy translates the node by (dx, dy)
func (n *Node) MoveBy(dx, dy float64) {
	n.Move(n.position.Add(geometry.Pt(dx, dy)))
}

// Remove disconnects every port, then takes the node off its canvas
func (n *Node) Remove() {
	for _, p := range n.Ports() {
		p.Disconnect()
	}
	if n.canvas != nil {
		n.canvas.dropNode(n)
	}
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return n.name
}
