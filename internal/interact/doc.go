// Package interact turns inbound editor input into canvas operations.
//
// A Session is the single entry point for pointer, keyboard and drag
// events. It holds one mutex for its whole lifetime, so an event source
// running on several goroutines can drive one canvas:
//
//	s := interact.NewSession(canvas, interact.WithSpawn(myFunc, geometry.Pt(0, 0)))
//	s.PointerDown(node.Output("out"))
//	s.PointerDown(other.Input("in"))
//	err := s.KeyPress(interact.KeySpace)
//
// Listeners on the canvas event bus run inside the session lock and must
// not call back into the session.
package interact
