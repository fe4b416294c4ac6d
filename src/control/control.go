// Package control is the boundary to the motor, door and timer drivers. The
// decision core knows nothing about the hardware; it hands an ordered list of
// outputs to a Sink.
package control

import (
	"errors"
	"fmt"

	"liftcore/src/logger"
	"liftcore/src/types"
)

// ErrIllegalOutput marks an output no correct core can emit, such as a hoist
// command without a direction.
var ErrIllegalOutput = errors.New("illegal control output")

// Sink consumes the ordered control outputs produced by one event dispatch.
type Sink interface {
	HandleOutputs(outputs []types.ControlOutput) error
}

// Console logs every command; it stands in for the real drivers.
type Console struct{}

func (Console) HandleOutputs(outputs []types.ControlOutput) error {
	log := logger.Get()
	for _, out := range outputs {
		if err := checkOutput(out); err != nil {
			return err
		}
		switch out := out.(type) {
		case types.HoistMotor:
			log.Info().Stringer("direction", out.Dir).Msg("running hoist motor")
		case types.DoorMotor:
			log.Info().Stringer("motion", out.Motion).Msg("door motor")
		case types.StopMotor:
			log.Info().Msg("stopping hoist motor")
		case types.SetTimer:
			log.Info().Msg("arming door timer")
		}
	}
	return nil
}

// Recorder validates outputs and keeps them in order. Quiet stand-in used by
// the explorer and the tests.
type Recorder struct {
	Outputs []types.ControlOutput
}

func (r *Recorder) HandleOutputs(outputs []types.ControlOutput) error {
	for _, out := range outputs {
		if err := checkOutput(out); err != nil {
			return err
		}
	}
	r.Outputs = append(r.Outputs, outputs...)
	return nil
}

func checkOutput(out types.ControlOutput) error {
	switch out := out.(type) {
	case types.HoistMotor:
		if out.Dir == types.None {
			return fmt.Errorf("%w: hoist motor without direction", ErrIllegalOutput)
		}
	case types.DoorMotor:
		if out.Motion == types.DoorNone {
			return fmt.Errorf("%w: door motor without motion", ErrIllegalOutput)
		}
	case types.StopMotor, types.SetTimer:
	default:
		return fmt.Errorf("%w: unknown output %T", ErrIllegalOutput, out)
	}
	return nil
}
