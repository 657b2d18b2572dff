package chronometer

// EventType defines the type of chronometer event.
type EventType string

const EventChange EventType = "change"

// Event is delivered synchronously from the update that produced it.
type Event struct {
	Type    EventType
	Display Display
}
