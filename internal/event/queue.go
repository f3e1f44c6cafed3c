package event

// Queue buffers the events of the current tick in FIFO order.
// It has a single consumer, which drains it once per tick.
type Queue struct {
	events []Event
}

// Push appends events in order.
func (q *Queue) Push(events ...Event) {
	q.events = append(q.events, events...)
}

// Len returns the number of pending events.
func (q *Queue) Len() int { return len(q.events) }

// Events returns a copy of the pending events for read-only inspection.
func (q *Queue) Events() []Event {
	out := make([]Event, len(q.events))
	copy(out, q.events)
	return out
}

// Drain returns all pending events in FIFO order and empties the queue.
func (q *Queue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

// Clear drops all pending events.
func (q *Queue) Clear() { q.events = nil }
