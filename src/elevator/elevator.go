// Package elevator owns the mutable car data and the direction-selection
// algorithm. All mutation goes through the methods here; the fsm package
// decides which of them an event triggers.
package elevator

import (
	"errors"
	"fmt"

	"github.com/tiendc/go-deepcopy"

	"liftcore/src/config"
	"liftcore/src/types"
)

var (
	// ErrOutOfRange marks a floor value outside the configured shaft range.
	ErrOutOfRange = errors.New("floor out of range")
	// ErrIllegalRequest marks a physically impossible request or sensor
	// reading. These signal a malformed event source or a core bug and must
	// abort rather than be silently corrected.
	ErrIllegalRequest = errors.New("illegal request")
	// ErrInvariant marks a configuration that violates the car's physical
	// invariants.
	ErrInvariant = errors.New("invariant violated")
)

type Elevator struct {
	Floor        int
	Dir          types.Direction
	Behaviour    types.Behaviour
	Destinations FloorSet
	UpRequests   FloorSet
	DownRequests FloorSet
}

// New returns a car resting at initialFloor: Idle, no direction, no pending
// work.
func New(initialFloor int) (*Elevator, error) {
	if initialFloor < config.MinFloor || initialFloor > config.MaxFloor {
		return nil, fmt.Errorf("%w: initial floor %d", ErrOutOfRange, initialFloor)
	}
	return &Elevator{
		Floor:        initialFloor,
		Dir:          types.None,
		Behaviour:    types.Idle,
		Destinations: FloorSet{},
		UpRequests:   FloorSet{},
		DownRequests: FloorSet{},
	}, nil
}

// CheckRequest rejects landing calls that cannot be travelled from: a down
// call at the bottom floor, an up call at the top floor, or any floor outside
// the shaft. Applies in every behaviour.
func CheckRequest(floor int, dir types.Direction) error {
	if floor < config.MinFloor || floor > config.MaxFloor {
		return fmt.Errorf("%w: request at floor %d", ErrOutOfRange, floor)
	}
	switch dir {
	case types.Down:
		if floor == config.MinFloor {
			return fmt.Errorf("%w: down request at bottom floor %d", ErrIllegalRequest, floor)
		}
	case types.Up:
		if floor == config.MaxFloor {
			return fmt.Errorf("%w: up request at top floor %d", ErrIllegalRequest, floor)
		}
	default:
		return fmt.Errorf("%w: request without direction at floor %d", ErrIllegalRequest, floor)
	}
	return nil
}

// ReceiveRequest records a landing call and recomputes the travel direction.
func (e *Elevator) ReceiveRequest(floor int, dir types.Direction) error {
	if err := CheckRequest(floor, dir); err != nil {
		return err
	}
	if dir == types.Up {
		e.UpRequests.Add(floor)
	} else {
		e.DownRequests.Add(floor)
	}
	e.updateDirection()
	return nil
}

// ReceiveDestination records a cab selection and recomputes the travel
// direction. A destination equal to the current floor is legal while moving;
// it is served when the scan next brings the car back.
func (e *Elevator) ReceiveDestination(floor int) error {
	if floor < config.MinFloor || floor > config.MaxFloor {
		return fmt.Errorf("%w: destination floor %d", ErrOutOfRange, floor)
	}
	e.Destinations.Add(floor)
	e.updateDirection()
	return nil
}

// ReachFloor advances the car to an adjacent floor, clears the work that is
// due there (drop-offs always, pickups only in the direction of travel) and
// recomputes direction. It reports whether the door must open.
func (e *Elevator) ReachFloor(floor int) (bool, error) {
	if floor < config.MinFloor || floor > config.MaxFloor {
		return false, fmt.Errorf("%w: floor sensor at %d", ErrOutOfRange, floor)
	}
	if e.Dir == types.None {
		return false, fmt.Errorf("%w: floor sensor while stationary at %d", ErrIllegalRequest, e.Floor)
	}
	if d := floor - e.Floor; d != 1 && d != -1 {
		return false, fmt.Errorf("%w: floor sensor jumped from %d to %d", ErrIllegalRequest, e.Floor, floor)
	}
	e.Floor = floor

	open := false
	if e.Destinations.Has(floor) {
		e.Destinations.Remove(floor)
		open = true
	}
	if e.Dir == types.Up && e.UpRequests.Has(floor) {
		e.UpRequests.Remove(floor)
		open = true
	}
	if e.Dir == types.Down && e.DownRequests.Has(floor) {
		e.DownRequests.Remove(floor)
		open = true
	}
	e.updateDirection()
	return open, nil
}

// CloseDoor recomputes direction at the end of the loading period and reports
// whether the car must move again.
func (e *Elevator) CloseDoor() bool {
	e.updateDirection()
	return e.Dir != types.None
}

// HasWork reports whether any destination or landing call is pending.
func (e *Elevator) HasWork() bool {
	return !e.Destinations.Empty() || !e.UpRequests.Empty() || !e.DownRequests.Empty()
}

// Validate checks the physical invariants that must hold in every reachable
// configuration.
func (e *Elevator) Validate() error {
	if e.Floor < config.MinFloor || e.Floor > config.MaxFloor {
		return fmt.Errorf("%w: car at floor %d", ErrInvariant, e.Floor)
	}
	if e.Floor == config.MinFloor && e.Dir == types.Down {
		return fmt.Errorf("%w: going down at bottom floor", ErrInvariant)
	}
	if e.Floor == config.MaxFloor && e.Dir == types.Up {
		return fmt.Errorf("%w: going up at top floor", ErrInvariant)
	}
	if e.Behaviour == types.Idle {
		if e.Dir != types.None {
			return fmt.Errorf("%w: idle with direction %s", ErrInvariant, e.Dir)
		}
		if e.HasWork() {
			return fmt.Errorf("%w: idle with pending work", ErrInvariant)
		}
	}
	if e.DownRequests.Has(config.MinFloor) {
		return fmt.Errorf("%w: down request recorded at bottom floor", ErrInvariant)
	}
	if e.UpRequests.Has(config.MaxFloor) {
		return fmt.Errorf("%w: up request recorded at top floor", ErrInvariant)
	}
	return nil
}

// Clone forks an independent copy sharing no mutable state with the receiver.
func (e *Elevator) Clone() *Elevator {
	fork := new(Elevator)
	if err := deepcopy.Copy(fork, e); err != nil {
		panic(err)
	}
	return fork
}

// Key is the canonical identity of the configuration: two cars with equal
// keys are the same node regardless of how they got there.
func (e *Elevator) Key() string {
	return fmt.Sprintf("%s|%d|%s|%v|%v|%v",
		e.Behaviour, e.Floor, e.Dir,
		e.Destinations.Sorted(), e.UpRequests.Sorted(), e.DownRequests.Sorted())
}

func (e *Elevator) String() string {
	return fmt.Sprintf("Elevator{behaviour:%s floor:%d dir:%s dest:%v up:%v down:%v}",
		e.Behaviour, e.Floor, e.Dir,
		e.Destinations.Sorted(), e.UpRequests.Sorted(), e.DownRequests.Sorted())
}
