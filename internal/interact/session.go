package interact

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-logr/logr"

	"nodegraph/internal/geometry"
	"nodegraph/internal/graph"
	"nodegraph/internal/introspect"
)

// ErrNoSpawnCallable is returned by KeyPress(KeySpace) when the session has
// nothing to spawn
var ErrNoSpawnCallable = errors.New("no spawn callable configured")

// Session routes editor input to a canvas, one event at a time
type Session struct {
	mu       sync.Mutex
	canvas   *graph.Canvas
	factory  *introspect.Factory
	spawn    any
	spawnAt  geometry.Point
	selected *graph.Node
	log      logr.Logger
}

// Option configures a Session
type Option func(*Session)

// WithFactory sets the factory used to spawn nodes
func WithFactory(f *introspect.Factory) Option {
	return func(s *Session) {
		s.factory = f
	}
}

// WithSpawn sets the callable KeySpace turns into a node, and where the node
// appears
func WithSpawn(fn any, at geometry.Point) Option {
	return func(s *Session) {
		s.spawn = fn
		s.spawnAt = at
	}
}

func WithLogger(log logr.Logger) Option {
	return func(s *Session) {
		s.log = log
	}
}

// NewSession creates a session driving canvas
func NewSession(canvas *graph.Canvas, opts ...Option) *Session {
	s := &Session{
		canvas: canvas,
		log:    logr.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.factory == nil {
		s.factory = introspect.NewFactory(introspect.WithLogger(s.log))
	}
	canvas.Events().Subscribe(func(e graph.Event) {
		// runs under s.mu when the removal came through the session
		if e.Type == graph.EventNodeRemoved && e.Node == s.selected {
			s.selected = nil
		}
	})
	return s
}

// Canvas returns the canvas the session drives
func (s *Session) Canvas() *graph.Canvas {
	return s.canvas
}

// Selected returns the selected node, or nil
func (s *Session) Selected() *graph.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// PointerDown handles a press on target: a port advances the connection
// protocol, a node becomes the selection and nil clears the selection. The
// wire is returned when the press completed a connection.
func (s *Session) PointerDown(target any) *graph.Wire {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch t := target.(type) {
	case *graph.Port:
		return s.canvas.OnPortClicked(t)
	case *graph.Node:
		if t == nil {
			s.selected = nil
			return nil
		}
		if t.Canvas() != s.canvas {
			s.log.V(1).Info("ignoring press on foreign node", "node", t.String())
			return nil
		}
		s.selected = t
	case nil:
		s.selected = nil
	default:
		s.log.V(1).Info("ignoring press on unknown target", "type", fmt.Sprintf("%T", target))
	}
	return nil
}

// KeyPress handles a key. Only spawning can fail.
func (s *Session) KeyPress(k Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch k {
	case KeyEscape:
		s.canvas.CancelPending()
	case KeyDelete:
		if s.selected == nil {
			return nil
		}
		n := s.selected
		s.selected = nil
		if err := s.canvas.RemoveNode(n); err != nil {
			s.log.V(1).Info("selected node already gone", "node", n.String())
		}
	case KeySpace:
		return s.spawnNode()
	default:
		s.log.V(1).Info("ignoring key", "key", k.String())
	}
	return nil
}

func (s *Session) spawnNode() error {
	if s.spawn == nil {
		return ErrNoSpawnCallable
	}
	n, err := s.factory.FromCallableAt(s.spawn, s.spawnAt)
	if err != nil {
		return fmt.Errorf("spawn node: %w", err)
	}
	if err := s.canvas.AddNode(n); err != nil {
		return fmt.Errorf("spawn node: %w", err)
	}
	s.selected = n
	s.log.Info("spawned node", "node", n.String(), "inputs", len(n.Inputs()))
	return nil
}

// NodeDragged moves n to pos
func (s *Session) NodeDragged(n *graph.Node, pos geometry.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n == nil || n.Canvas() != s.canvas {
		return fmt.Errorf("drag %s: %w", n, graph.ErrNodeNotFound)
	}
	n.Move(pos)
	return nil
}

// Do runs fn with exclusive access to the canvas
func (s *Session) Do(fn func(c *graph.Canvas)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.canvas)
}
