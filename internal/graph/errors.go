package graph

import "errors"

var (
	// ErrInvalidDirection is returned when two ports of the same direction are connected.
	ErrInvalidDirection = errors.New("ports have the same direction")

	// ErrSameNode is returned when a node is wired to itself.
	ErrSameNode = errors.New("ports belong to the same node")

	// ErrDetachedNode is returned when a port's node is not on a canvas.
	ErrDetachedNode = errors.New("node is not on a canvas")

	// ErrForeignCanvas is returned when two ports live on different canvases.
	ErrForeignCanvas = errors.New("nodes are on different canvases")

	ErrInvalidPort = errors.New("invalid port")
	ErrInvalidNode = errors.New("invalid node")

	// ErrNodeAttached is returned when adding a node that already has a canvas.
	ErrNodeAttached = errors.New("node already on a canvas")

	ErrNodeNotFound = errors.New("node not found")

	// ErrDanglingReference marks a wire or port pointing at a node the canvas
	// no longer owns. It signals a programming error, not a user mistake.
	ErrDanglingReference = errors.New("dangling reference")

	// ErrInvariant marks any other broken connection invariant.
	ErrInvariant = errors.New("invariant violated")
)
