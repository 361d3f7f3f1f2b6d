package rhb

// EventKind names an input to the character machine.
type EventKind int

const (
	EventRun EventKind = iota
	EventSlide
	EventJump
	EventUpdate
	EventKnockOut
	EventLand
)

func (k EventKind) String() string {
	switch k {
	case EventRun:
		return "run"
	case EventSlide:
		return "slide"
	case EventJump:
		return "jump"
	case EventUpdate:
		return "update"
	case EventKnockOut:
		return "knock_out"
	case EventLand:
		return "land"
	default:
		return "unknown"
	}
}

// Event is a machine input. Y is the surface top for EventLand.
type Event struct {
	Kind EventKind
	Y    int
}

// Run, Slide, Jump, Update and KnockOut are the payload-free events.
var (
	Run      = Event{Kind: EventRun}
	Slide    = Event{Kind: EventSlide}
	Jump     = Event{Kind: EventJump}
	Update   = Event{Kind: EventUpdate}
	KnockOut = Event{Kind: EventKnockOut}
)

// Land is the event for touching a surface whose top is at y.
func Land(y int) Event {
	return Event{Kind: EventLand, Y: y}
}

// Transition applies e to s. Pairs without a transition return s unchanged.
func Transition(s State, e Event) State {
	switch state := s.(type) {
	case Idle:
		switch e.Kind {
		case EventRun:
			return state.Run()
		case EventUpdate:
			return state.Update()
		}
	case Running:
		switch e.Kind {
		case EventSlide:
			return state.Slide()
		case EventJump:
			return state.Jump()
		case EventKnockOut:
			return state.KnockOut()
		case EventLand:
			return state.LandOn(e.Y)
		case EventUpdate:
			return state.Update()
		}
	case Sliding:
		switch e.Kind {
		case EventKnockOut:
			return state.KnockOut()
		case EventLand:
			return state.LandOn(e.Y)
		case EventUpdate:
			return state.Update().Into()
		}
	case Jumping:
		switch e.Kind {
		case EventKnockOut:
			return state.KnockOut()
		case EventLand:
			return state.LandOn(e.Y)
		case EventUpdate:
			return state.Update().Into()
		}
	case Falling:
		if e.Kind == EventUpdate {
			return state.Update().Into()
		}
	case KnockedOut:
	}
	return s
}
