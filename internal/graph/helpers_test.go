package graph

import (
	"testing"

	"github.com/go-logr/logr/testr"

	"nodegraph/internal/geometry"
)

func newTestCanvas(t *testing.T) *Canvas {
	t.Helper()
	return NewCanvas(WithLogger(testr.NewWithOptions(t, testr.Options{Verbosity: 2})))
}

func addNode(t *testing.T, c *Canvas, name string, inputs, outputs []string, pos geometry.Point) *Node {
	t.Helper()
	n, err := NewNode(NodeSpec{Name: name, Inputs: inputs, Outputs: outputs, Position: pos})
	if err != nil {
		t.Fatalf("NewNode(%s) failed: %v", name, err)
	}
	if err := c.AddNode(n); err != nil {
		t.Fatalf("AddNode(%s) failed: %v", name, err)
	}
	return n
}

func recordEvents(c *Canvas) *[]Event {
	events := &[]Event{}
	c.Events().Subscribe(func(e Event) {
		*events = append(*events, e)
	})
	return events
}

func countEvents(events []Event, typ EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func assertValid(t *testing.T, c *Canvas) {
	t.Helper()
	if err := c.Validate(); err != nil {
		t.Fatalf("expected valid canvas, got: %v", err)
	}
}
