package types

import "fmt"

// Event is an input to the decision core. Go has no union types, so the
// variants below implement a sealed interface and are dispatched by type
// switch.
type Event interface {
	isEvent()
}

// DestinationSelected is a floor button pressed inside the car.
type DestinationSelected struct {
	Floor int
}

// RequestPressed is a landing call button, tagged with the desired travel
// direction.
type RequestPressed struct {
	Floor int
	Dir   Direction
}

// FloorReached is the position sensor firing as the car passes a floor.
type FloorReached struct {
	Floor int
}

// TimerExpired is the door timer firing after the loading period.
type TimerExpired struct{}

func (DestinationSelected) isEvent() {}
func (RequestPressed) isEvent()      {}
func (FloorReached) isEvent()        {}
func (TimerExpired) isEvent()        {}

func EventName(e Event) string {
	switch e := e.(type) {
	case DestinationSelected:
		return fmt.Sprintf("DestinationSelected(%d)", e.Floor)
	case RequestPressed:
		return fmt.Sprintf("RequestPressed(%d, %s)", e.Floor, e.Dir)
	case FloorReached:
		return fmt.Sprintf("FloorReached(%d)", e.Floor)
	case TimerExpired:
		return "TimerExpired"
	default:
		return "UnknownEvent"
	}
}
