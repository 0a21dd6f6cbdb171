// Package graph is the connection model of the node editor.
//
// # Core Types
//
// Node is a positioned vertex owning an ordered list of input ports and an
// ordered list of output ports. Its body geometry is derived from the port
// counts and the Layout it was built with.
//
// Port is a connection point of a single Direction. A port holds at most one
// connection; the peer and the wire are always set or cleared together.
//
// Wire is a directed edge from an output port to an input port. It stores the
// two ports, never coordinates: Bounds is recomputed from the live endpoint
// positions on every call.
//
// Canvas owns nodes and the wire index and implements the two-click
// connection protocol (OnPortClicked). Every Canvas carries its own pending
// selection, so independent editors can coexist.
//
// # Notifications
//
// Mutations publish Events on the canvas EventBus. Listeners run
// synchronously inside the mutating call and are meant to schedule repaints;
// they must not mutate the canvas.
//
// # Thread Safety
//
// Canvas and everything it owns is NOT safe for concurrent use. All mutations
// must come from a single goroutine; see package interact for a serialized
// event entry point.
package graph
