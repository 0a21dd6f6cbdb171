package graph

// State is the phase of the click-to-connect protocol
type State int

const (
	// StateIdle means no port is selected
	StateIdle State = iota
	// StatePending means one port is selected and awaits a second click
	StatePending
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	default:
		return "unknown"
	}
}

// State returns the current protocol state
func (c *Canvas) State() State {
	if c.pending != nil {
		return StatePending
	}
	return StateIdle
}

// Pending returns the first port of an in-progress connection, or nil
func (c *Canvas) Pending() *Port { return c.pending }

// OnPortClicked advances the connection protocol:
//
//	Idle        --click(p)-->        Pending(p)
//	Pending(p)  --click(p)-->        Idle  (aborted)
//	Pending(p)  --click(q), q!=p --> Idle  (p.Connect(q) attempted)
//
// The created wire is returned. Rejected connections are logged and yield
// nil; they never escape as errors.
func (c *Canvas) OnPortClicked(p *Port) *Wire {
	if p == nil || p.node == nil || p.node.canvas != c {
		c.log.V(1).Info("ignoring click on port outside canvas", "port", p.String())
		return nil
	}

	first := c.pending
	if first == nil {
		c.setPending(p)
		return nil
	}
	c.setPending(nil)

	if first == p {
		c.log.V(1).Info("connection aborted", "port", p.String())
		return nil
	}

	wire, err := first.Connect(p)
	if err != nil {
		c.log.V(1).Info("connection rejected", "from", first.String(), "to", p.String(), "reason", err.Error())
		return nil
	}
	c.log.V(1).Info("wire created", "wire", wire.String(), "id", wire.id)
	return wire
}

// CancelPending aborts an in-progress connection. It reports whether a
// selection was cleared.
func (c *Canvas) CancelPending() bool {
	if c.pending == nil {
		return false
	}
	c.log.V(1).Info("connection cancelled", "port", c.pending.String())
	c.setPending(nil)
	return true
}

func (c *Canvas) setPending(p *Port) {
	if c.pending == p {
		return
	}
	c.pending = p
	c.publish(Event{Type: EventPendingChanged, Port: p})
}
