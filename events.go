package glide

// EventType identifies an engine event.
type EventType uint8

const (
	EventTriggerEnter  EventType = iota // a toggle trigger became active
	EventTriggerLeave                   // a toggle trigger became inactive
	EventPinStart                       // a pinned trigger started holding its element
	EventPinEnd                         // a pinned trigger released its element
	EventLockChanged                    // the scroll lock changed state
	EventIntroComplete                  // the intro sequence finished
)

// String returns a short name for the event type.
func (t EventType) String() string {
	switch t {
	case EventTriggerEnter:
		return "trigger_enter"
	case EventTriggerLeave:
		return "trigger_leave"
	case EventPinStart:
		return "pin_start"
	case EventPinEnd:
		return "pin_end"
	case EventLockChanged:
		return "lock_changed"
	case EventIntroComplete:
		return "intro_complete"
	default:
		return "unknown"
	}
}

// Event carries engine state changes to an EventSink.
type Event struct {
	Type      EventType
	TriggerID string
	Direction Direction
	Progress  float64
	// Locked is valid for EventLockChanged.
	Locked bool
	// Err is set on EventIntroComplete when the intro was force-completed.
	Err error
}

// EventSink is the interface for optional event forwarding, e.g. into an
// ECS world (see the ecs subpackage).
type EventSink interface {
	EmitEvent(event Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(Event)

// EmitEvent calls f(event).
func (f EventSinkFunc) EmitEvent(event Event) { f(event) }

type multiSink []EventSink

func (m multiSink) EmitEvent(event Event) {
	for _, s := range m {
		s.EmitEvent(event)
	}
}
