package types

import "fmt"

// ControlOutput is a command for the motor/door/timer drivers. Outputs from
// one event dispatch are ordered and must be consumed in order.
type ControlOutput interface {
	isControlOutput()
}

// HoistMotor runs the hoist motor. Dir is never None.
type HoistMotor struct {
	Dir Direction
}

// DoorMotor drives the door. Motion is never DoorNone.
type DoorMotor struct {
	Motion DoorMotion
}

// StopMotor halts the hoist motor.
type StopMotor struct{}

// SetTimer arms the door timer.
type SetTimer struct{}

func (HoistMotor) isControlOutput() {}
func (DoorMotor) isControlOutput()  {}
func (StopMotor) isControlOutput()  {}
func (SetTimer) isControlOutput()   {}

func OutputName(out ControlOutput) string {
	switch out := out.(type) {
	case HoistMotor:
		return fmt.Sprintf("HoistMotor(%s)", out.Dir)
	case DoorMotor:
		return fmt.Sprintf("DoorMotor(%s)", out.Motion)
	case StopMotor:
		return "StopMotor"
	case SetTimer:
		return "SetTimer"
	default:
		return "UnknownOutput"
	}
}
