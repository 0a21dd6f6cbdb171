package graph

import (
	"fmt"
	"slices"

	"go.uber.org/multierr"
)

// Validate checks the ownership and connection invariants of the whole
// canvas and returns every violation found. Violations wrap either
// ErrDanglingReference or ErrInvariant.
func (c *Canvas) Validate() error {
	var errs error

	for _, n := range c.nodes {
		if n.canvas != c {
			errs = multierr.Append(errs, fmt.Errorf("%w: node %s does not point back at canvas", ErrInvariant, n))
		}
		errs = multierr.Append(errs, c.validatePorts(n, Input, n.inputs))
		errs = multierr.Append(errs, c.validatePorts(n, Output, n.outputs))
	}

	for _, w := range c.wires {
		errs = multierr.Append(errs, c.validateWire(w))
	}

	if c.pending != nil && !c.owns(c.pending.node) {
		errs = multierr.Append(errs, fmt.Errorf("%w: pending port %s", ErrDanglingReference, c.pending))
	}

	return errs
}

func (c *Canvas) validatePorts(n *Node, dir Direction, ports []*Port) error {
	var errs error
	for i, p := range ports {
		if p.node != n || p.direction != dir || p.index != i {
			errs = multierr.Append(errs, fmt.Errorf("%w: port %s misplaced (direction %s, index %d)",
				ErrInvariant, p, p.direction, p.index))
		}
		if (p.peer == nil) != (p.wire == nil) {
			errs = multierr.Append(errs, fmt.Errorf("%w: port %s has peer without wire", ErrInvariant, p))
			continue
		}
		if p.wire == nil {
			continue
		}
		if p.peer.peer != p || p.peer.wire != p.wire {
			errs = multierr.Append(errs, fmt.Errorf("%w: port %s and %s are not symmetric", ErrInvariant, p, p.peer))
		}
		if !c.owns(p.peer.node) {
			errs = multierr.Append(errs, fmt.Errorf("%w: port %s peers with %s", ErrDanglingReference, p, p.peer))
		}
		if p.wire.canvas != c || !slices.Contains(c.wires, p.wire) {
			errs = multierr.Append(errs, fmt.Errorf("%w: port %s holds unindexed wire", ErrDanglingReference, p))
		}
	}
	return errs
}

func (c *Canvas) validateWire(w *Wire) error {
	var errs error
	src, dst := w.source, w.destination
	if src.direction != Output || dst.direction != Input {
		errs = multierr.Append(errs, fmt.Errorf("%w: wire %s runs %s -> %s",
			ErrInvariant, w, src.direction, dst.direction))
	}
	if src.node == dst.node {
		errs = multierr.Append(errs, fmt.Errorf("%w: wire %s loops on one node", ErrInvariant, w))
	}
	if src.wire != w || dst.wire != w {
		errs = multierr.Append(errs, fmt.Errorf("%w: wire %s not held by its endpoints", ErrInvariant, w))
	}
	if !c.owns(src.node) || !c.owns(dst.node) {
		errs = multierr.Append(errs, fmt.Errorf("%w: wire %s", ErrDanglingReference, w))
	}
	return errs
}

func (c *Canvas) owns(n *Node) bool {
	if n == nil {
		return false
	}
	owned, ok := c.byID[n.id]
	return ok && owned == n
}
