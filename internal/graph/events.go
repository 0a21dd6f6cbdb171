package graph

// EventType defines the type of event
type EventType string

const (
	EventNodeAdded           EventType = "node_added"
	EventNodeRemoved         EventType = "node_removed"
	EventNodeMoved           EventType = "node_moved"
	EventWireCreated         EventType = "wire_created"
	EventWireRemoved         EventType = "wire_removed"
	EventWireGeometryChanged EventType = "wire_geometry_changed"
	EventPendingChanged      EventType = "pending_changed"
)

// Event represents a change on a canvas. Only the fields relevant to the
// type are set.
type Event struct {
	Type EventType
	Node *Node
	Wire *Wire
	Port *Port
}

// Listener receives events synchronously
type Listener func(Event)

type subscription struct {
	id int
	fn Listener
}

// EventBus fans canvas events out to listeners in subscription order
type EventBus struct {
	subscribers []subscription
	nextID      int
}

// NewEventBus creates a new event bus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make([]subscription, 0),
	}
}

// Subscribe registers fn and returns a function that removes it again
func (eb *EventBus) Subscribe(fn Listener) func() {
	eb.nextID++
	id := eb.nextID
	eb.subscribers = append(eb.subscribers, subscription{id: id, fn: fn})
	return func() {
		for i, s := range eb.subscribers {
			if s.id == id {
				eb.subscribers = append(eb.subscribers[:i:i], eb.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Publish sends an event to all subscribers
func (eb *EventBus) Publish(event Event) {
	if eb == nil {
		return
	}
	for _, s := range eb.subscribers {
		s.fn(event)
	}
}
