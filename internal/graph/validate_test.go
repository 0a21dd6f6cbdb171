package graph

import (
	"errors"
	"testing"

	"go.uber.org/multierr"

	"nodegraph/internal/geometry"
)

func TestValidate(t *testing.T) {
	build := func(t *testing.T) (*Canvas, *Node, *Node, *Wire) {
		c := newTestCanvas(t)
		a := addNode(t, c, "A", nil, []string{"out"}, geometry.Pt(0, 0))
		b := addNode(t, c, "B", []string{"in"}, nil, geometry.Pt(0, 100))
		w, err := a.Output("out").Connect(b.Input("in"))
		if err != nil {
			t.Fatalf("Connect failed: %v", err)
		}
		return c, a, b, w
	}

	t.Run("consistent canvas", func(t *testing.T) {
		c, _, _, _ := build(t)
		assertValid(t, c)
	})

	t.Run("dangling wire endpoint", func(t *testing.T) {
		c, a, _, _ := build(t)
		// drop A behind the canvas' back, leaving its wire in place
		c.dropNode(a)

		err := c.Validate()
		if !errors.Is(err, ErrDanglingReference) {
			t.Fatalf("expected ErrDanglingReference, got %v", err)
		}
		if len(multierr.Errors(err)) < 2 {
			t.Errorf("expected wire and peer violations, got %v", err)
		}
	})

	t.Run("asymmetric peers", func(t *testing.T) {
		c, a, _, _ := build(t)
		a.Output("out").peer = nil

		if err := c.Validate(); !errors.Is(err, ErrInvariant) {
			t.Errorf("expected ErrInvariant, got %v", err)
		}
	})

	t.Run("unindexed wire", func(t *testing.T) {
		c, _, _, w := build(t)
		c.dropWire(w)

		if err := c.Validate(); !errors.Is(err, ErrDanglingReference) {
			t.Errorf("expected ErrDanglingReference, got %v", err)
		}
	})

	t.Run("reversed wire", func(t *testing.T) {
		c, _, _, w := build(t)
		w.source, w.destination = w.destination, w.source

		if err := c.Validate(); !errors.Is(err, ErrInvariant) {
			t.Errorf("expected ErrInvariant, got %v", err)
		}
	})
}
