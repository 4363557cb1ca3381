package ecs

// EventKind identifies what happened during a tick.
type EventKind string

const (
	// EventPhaseChanged carries the new ai.Phase of an enemy.
	EventPhaseChanged EventKind = "phase_changed"
	// EventLayerChanged carries a LayerChange.
	EventLayerChanged EventKind = "layer_changed"
	EventEnemyHit     EventKind = "enemy_hit"
	EventEnemyDied    EventKind = "enemy_died"
	EventPlayerHit    EventKind = "player_hit"
)

// LayerChange is the payload of EventLayerChanged.
type LayerChange struct {
	From, To int
	Fell     bool
}

// Event is a simulation notification for the outer loop.
type Event struct {
	Kind   EventKind
	Entity Entity
	Data   any
}

// EventQueue is a FIFO filled by systems and drained by the caller.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all queued events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
