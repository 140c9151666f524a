package game

import (
	"snake-arena/game/types"
)

// Mode selects who plays a round
type Mode int

const (
	Competitive Mode = iota // Player against the enemies
	Observer                // Enemies only, chasing the food
)

func (m Mode) String() string {
	if m == Observer {
		return "observer"
	}
	return "competitive"
}

// EventKind enumerates the input events a frontend can produce
type EventKind int

const (
	EventDirection  EventKind = iota // Direction change for the player
	EventModeSelect                  // Start a round in Mode from the menu
	EventRestart                     // New round in the same mode
	EventMenu                        // Back to the menu
	EventQuit                        // Terminate
)

// Event is one input item. Direction is set for EventDirection, Mode for
// EventModeSelect.
type Event struct {
	Kind      EventKind
	Direction types.Direction
	Mode      Mode
}

func DirectionEvent(d types.Direction) Event {
	return Event{Kind: EventDirection, Direction: d}
}

func ModeEvent(m Mode) Event {
	return Event{Kind: EventModeSelect, Mode: m}
}

// InputSource yields queued events without blocking
type InputSource interface {
	Next() (Event, bool)
}

// RenderSink receives a snapshot after every step
type RenderSink interface {
	Render(Snapshot)
}

// ChanInput is an InputSource fed through a buffered channel. Frontends
// push from their own goroutine; the game drains on its tick.
type ChanInput struct {
	C chan Event
}

func NewChanInput(size int) *ChanInput {
	return &ChanInput{C: make(chan Event, size)}
}

func (in *ChanInput) Next() (Event, bool) {
	select {
	case e := <-in.C:
		return e, true
	default:
		return Event{}, false
	}
}

// Send queues e, dropping it when the buffer is full
func (in *ChanInput) Send(e Event) bool {
	select {
	case in.C <- e:
		return true
	default:
		return false
	}
}

// SinkFunc adapts a function to RenderSink
type SinkFunc func(Snapshot)

func (f SinkFunc) Render(s Snapshot) { f(s) }

type nopSink struct{}

func (nopSink) Render(Snapshot) {}

type nopInput struct{}

func (nopInput) Next() (Event, bool) { return Event{}, false }
