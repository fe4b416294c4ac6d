// Package fsm holds the per-behaviour transition functions of the car. Each
// handler takes the shared elevator record and one event, mutates the record
// through the elevator package, and returns the control outputs for the
// drivers in the order they must run.
package fsm

import (
	"errors"
	"fmt"

	"liftcore/src/elevator"
	"liftcore/src/types"
)

// ErrUnsupportedEvent marks an event the current behaviour has no transition
// for. It signals a caller bug, not a recoverable runtime condition.
var ErrUnsupportedEvent = errors.New("unsupported event in state")

// HandleEvent dispatches ev to the handler for the car's current behaviour.
func HandleEvent(elev *elevator.Elevator, ev types.Event) ([]types.ControlOutput, error) {
	switch elev.Behaviour {
	case types.Idle:
		return handleIdle(elev, ev)
	case types.Moving:
		return handleMoving(elev, ev)
	case types.Loading:
		return handleLoading(elev, ev)
	default:
		return nil, fmt.Errorf("unknown behaviour %d", elev.Behaviour)
	}
}

func unsupported(elev *elevator.Elevator, ev types.Event) error {
	return fmt.Errorf("%w: %s while %s", ErrUnsupportedEvent, types.EventName(ev), elev.Behaviour)
}

func handleIdle(elev *elevator.Elevator, ev types.Event) ([]types.ControlOutput, error) {
	// Idle entry guarantees no pending work and no direction.
	if elev.HasWork() || elev.Dir != types.None {
		return nil, fmt.Errorf("idle car with pending work: %s", elev)
	}
	switch ev := ev.(type) {
	case types.RequestPressed:
		if err := elevator.CheckRequest(ev.Floor, ev.Dir); err != nil {
			return nil, err
		}
		if ev.Floor == elev.Floor {
			// The car is already there, just let passengers in.
			elev.Behaviour = types.Loading
			return []types.ControlOutput{types.SetTimer{}}, nil
		}
		if err := elev.ReceiveRequest(ev.Floor, ev.Dir); err != nil {
			return nil, err
		}
		elev.Behaviour = types.Moving
		return []types.ControlOutput{types.HoistMotor{Dir: elev.Dir}}, nil

	case types.DestinationSelected:
		if ev.Floor == elev.Floor {
			elev.Behaviour = types.Loading
			return []types.ControlOutput{types.DoorMotor{Motion: types.DoorOpen}, types.SetTimer{}}, nil
		}
		if err := elev.ReceiveDestination(ev.Floor); err != nil {
			return nil, err
		}
		elev.Behaviour = types.Moving
		return []types.ControlOutput{types.HoistMotor{Dir: elev.Dir}}, nil

	default:
		return nil, unsupported(elev, ev)
	}
}

func handleMoving(elev *elevator.Elevator, ev types.Event) ([]types.ControlOutput, error) {
	switch ev := ev.(type) {
	case types.FloorReached:
		open, err := elev.ReachFloor(ev.Floor)
		if err != nil {
			return nil, err
		}
		if open {
			elev.Behaviour = types.Loading
			return []types.ControlOutput{
				types.StopMotor{},
				types.DoorMotor{Motion: types.DoorOpen},
				types.SetTimer{},
			}, nil
		}
		return []types.ControlOutput{types.HoistMotor{Dir: elev.Dir}}, nil

	case types.DestinationSelected:
		// A moving car does not stop for a selection of the floor it is on;
		// the destination is recorded and served on a later pass.
		if err := elev.ReceiveDestination(ev.Floor); err != nil {
			return nil, err
		}
		return []types.ControlOutput{types.HoistMotor{Dir: elev.Dir}}, nil

	case types.RequestPressed:
		// Cannot stop mid-travel, record only.
		if err := elev.ReceiveRequest(ev.Floor, ev.Dir); err != nil {
			return nil, err
		}
		return []types.ControlOutput{types.HoistMotor{Dir: elev.Dir}}, nil

	default:
		return nil, unsupported(elev, ev)
	}
}

func handleLoading(elev *elevator.Elevator, ev types.Event) ([]types.ControlOutput, error) {
	switch ev := ev.(type) {
	case types.DestinationSelected:
		if ev.Floor != elev.Floor {
			if err := elev.ReceiveDestination(ev.Floor); err != nil {
				return nil, err
			}
		}
		// Selecting the floor the door is open at is a no-op.
		return nil, nil

	case types.RequestPressed:
		if err := elev.ReceiveRequest(ev.Floor, ev.Dir); err != nil {
			return nil, err
		}
		return nil, nil

	case types.TimerExpired:
		if elev.CloseDoor() {
			elev.Behaviour = types.Moving
			return []types.ControlOutput{
				types.DoorMotor{Motion: types.DoorClose},
				types.HoistMotor{Dir: elev.Dir},
			}, nil
		}
		elev.Behaviour = types.Idle
		return []types.ControlOutput{types.DoorMotor{Motion: types.DoorClose}}, nil

	default:
		return nil, unsupported(elev, ev)
	}
}
