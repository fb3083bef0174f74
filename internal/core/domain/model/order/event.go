package order

import "ordering/internal/core/domain/model/kernel"

// EventKind tells subscribers what happened to a line.
type EventKind int

const (
	// LineChanged is published after a line was inserted or updated.
	LineChanged EventKind = iota + 1
	// LineCancelled is published after a line was removed.
	LineCancelled
)

func (k EventKind) String() string {
	switch k {
	case LineChanged:
		return "changed"
	case LineCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Event is a change notification of an order context. Line is only set for
// LineChanged.
type Event struct {
	Kind   EventKind
	LineID kernel.UUID
	Line   *Line
}

// NewLineChangedEvent describes a stored line.
func NewLineChangedEvent(line Line) Event {
	id, _ := line.ID()
	return Event{Kind: LineChanged, LineID: id, Line: &line}
}

// NewLineCancelledEvent describes a removed line.
func NewLineCancelledEvent(id kernel.UUID) Event {
	return Event{Kind: LineCancelled, LineID: id}
}
