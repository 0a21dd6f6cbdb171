package graph

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"nodegraph/internal/geometry"
)

// fixture is a canvas with four nodes of two inputs and two outputs each
type fixture struct {
	canvas *Canvas
	nodes  []*Node
	ports  []*Port
}

func newFixture() *fixture {
	f := &fixture{canvas: NewCanvas()}
	for i, name := range []string{"a", "b", "c", "d"} {
		n, _ := NewNode(NodeSpec{
			Name:     name,
			Inputs:   []string{"i0", "i1"},
			Outputs:  []string{"o0", "o1"},
			Position: geometry.Pt(float64(i*200), 0),
		})
		f.canvas.AddNode(n)
		f.nodes = append(f.nodes, n)
		f.ports = append(f.ports, n.Ports()...)
	}
	return f
}

// apply decodes op into one user-level mutation
func (f *fixture) apply(op int) {
	port := f.ports[(op/8)%len(f.ports)]
	other := f.ports[(op/128)%len(f.ports)]
	node := f.nodes[(op/8)%len(f.nodes)]

	switch op % 8 {
	case 0, 1:
		f.canvas.OnPortClicked(port)
	case 2:
		port.Connect(other)
	case 3:
		port.Disconnect()
	case 4:
		node.Move(geometry.Pt(float64(op%500), float64(op%300)))
	case 5:
		if node.Canvas() == nil {
			f.canvas.AddNode(node)
		} else {
			f.canvas.RemoveNode(node)
		}
	case 6:
		f.canvas.CancelPending()
	case 7:
		f.canvas.Connect(port, other)
	}
}

func (f *fixture) connectedPorts() int {
	n := 0
	for _, p := range f.ports {
		if p.Connected() {
			n++
		}
	}
	return n
}

func TestGraphInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	ops := gen.SliceOf(gen.IntRange(0, 1<<16))

	properties.Property("canvas stays consistent", prop.ForAll(
		func(seq []int) bool {
			f := newFixture()
			for _, op := range seq {
				f.apply(op)
				if f.canvas.Validate() != nil {
					return false
				}
			}
			return true
		},
		ops,
	))

	properties.Property("connections are symmetric", prop.ForAll(
		func(seq []int) bool {
			f := newFixture()
			for _, op := range seq {
				f.apply(op)
			}
			for _, p := range f.ports {
				if p.Peer() == nil {
					if p.Wire() != nil {
						return false
					}
					continue
				}
				if p.Peer().Peer() != p || p.Peer().Wire() != p.Wire() {
					return false
				}
			}
			return true
		},
		ops,
	))

	properties.Property("wires join an output and an input of different nodes", prop.ForAll(
		func(seq []int) bool {
			f := newFixture()
			for _, op := range seq {
				f.apply(op)
			}
			for _, w := range f.canvas.Wires() {
				if w.Source().Direction() != Output || w.Destination().Direction() != Input {
					return false
				}
				if w.Source().Node() == w.Destination().Node() {
					return false
				}
			}
			return true
		},
		ops,
	))

	properties.Property("each port holds at most one wire", prop.ForAll(
		func(seq []int) bool {
			f := newFixture()
			for _, op := range seq {
				f.apply(op)
			}
			seen := make(map[*Port]int)
			for _, w := range f.canvas.Wires() {
				seen[w.Source()]++
				seen[w.Destination()]++
			}
			for _, count := range seen {
				if count > 1 {
					return false
				}
			}
			return len(f.canvas.Wires())*2 == f.connectedPorts()
		},
		ops,
	))

	properties.Property("wire bounds track node positions", prop.ForAll(
		func(seq []int, x, y float64) bool {
			f := newFixture()
			for _, op := range seq {
				f.apply(op)
			}
			a := f.nodes[0]
			if a.Canvas() == nil {
				f.canvas.AddNode(a)
			}
			f.canvas.Connect(a.Output("o0"), f.nodes[1].Input("i0"))
			a.Move(geometry.Pt(x, y))
			for _, w := range a.Wires() {
				if w.Bounds() != geometry.Span(w.Source().Center(), w.Destination().Center()) {
					return false
				}
				if w.Source() == a.Output("o0") && w.Source().Center() != geometry.Pt(x+10, y+7.5) {
					return false
				}
			}
			return true
		},
		ops,
		gen.Float64Range(-1000, 1000),
		gen.Float64Range(-1000, 1000),
	))

	properties.TestingRun(t)
}
