package types

// Direction of hoist motor travel. The numeric values make the next floor in
// the direction of travel Floor+int(dir).
type Direction int

const (
	None Direction = 0
	Up   Direction = 1
	Down Direction = -1
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case None:
		return "None"
	default:
		return "Undefined"
	}
}

type DoorMotion int

const (
	DoorNone DoorMotion = iota
	DoorOpen
	DoorClose
)

func (m DoorMotion) String() string {
	switch m {
	case DoorOpen:
		return "Open"
	case DoorClose:
		return "Close"
	case DoorNone:
		return "None"
	default:
		return "Undefined"
	}
}

// Behaviour is the operational state of the car. It decides which events are
// legal and how they are handled.
type Behaviour int

const (
	Idle Behaviour = iota
	Moving
	Loading
)

func (b Behaviour) String() string {
	switch b {
	case Idle:
		return "Idle"
	case Moving:
		return "Moving"
	case Loading:
		return "Loading"
	default:
		return "Undefined"
	}
}
