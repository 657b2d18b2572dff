package countdown

// EventType defines the type of countdown event.
type EventType string

const (
	EventTick   EventType = "tick"
	EventFinish EventType = "finish"
)

// Event is delivered synchronously from the tick that produced it.
type Event struct {
	Type       EventType
	MillisLeft int64
	Frame      Frame
}
