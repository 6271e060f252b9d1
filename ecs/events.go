package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventStateChanged      = "state_changed"
	EventAnimationFinished = "animation_finished"
)

// StateChangedEvent is emitted when an animation FSM enters a new state.
type StateChangedEvent struct {
	Entity Entity
	From   string
	To     string
}

// AnimationFinishedEvent is emitted once when a play-once clip reaches its
// last frame.
type AnimationFinishedEvent struct {
	Entity Entity
	Clip   string
}

// EventQueue is a simple FIFO queue.
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

// Peek returns the pending events without clearing them.
func (q *EventQueue) Peek() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
