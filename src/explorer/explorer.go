// Package explorer enumerates every car configuration reachable from the
// canonical start by breadth-first search, proving the decision core never
// deadlocks and never violates its physical invariants.
package explorer

import (
	"errors"
	"fmt"

	"liftcore/src/config"
	"liftcore/src/control"
	"liftcore/src/elevator"
	"liftcore/src/fsm"
	"liftcore/src/logger"
	"liftcore/src/types"
)

// ErrDeadlock marks a reachable configuration with no legal next event.
var ErrDeadlock = errors.New("deadlock detected")

type Stats struct {
	Visited     int // distinct configurations seen
	Expanded    int // configurations taken off the frontier
	Transitions int // event applications, including ones hitting seen nodes
}

// Explore walks the whole reachable state space from a car resting at the
// bottom floor. It returns an error on the first deadlock, invariant
// violation or illegal control output.
func Explore() (Stats, error) {
	start, err := elevator.New(config.MinFloor)
	if err != nil {
		return Stats{}, err
	}
	frontier := []*elevator.Elevator{start}
	seen := map[string]bool{start.Key(): true}

	var stats Stats
	for len(frontier) > 0 {
		node := frontier[0]
		frontier = frontier[1:]
		stats.Expanded++

		if err := node.Validate(); err != nil {
			return stats, fmt.Errorf("reachable configuration is invalid: %w: %s", err, node)
		}
		succs, err := Successors(node)
		if err != nil {
			return stats, err
		}
		if len(succs) == 0 {
			return stats, fmt.Errorf("%w: %s", ErrDeadlock, node)
		}
		stats.Transitions += len(succs)

		for _, succ := range succs {
			key := succ.Key()
			if !seen[key] {
				seen[key] = true
				frontier = append(frontier, succ)
			}
		}
		if stats.Expanded%10000 == 0 {
			logger.Get().Debug().
				Int("expanded", stats.Expanded).
				Int("seen", len(seen)).
				Int("frontier", len(frontier)).
				Msg("exploring")
		}
	}
	stats.Visited = len(seen)
	return stats, nil
}

// Successors applies every event legal in the node's behaviour to an
// independent copy of the node: every destination button, every landing call
// that can exist, one sensor step when moving and the door timer when
// loading. The timer branch is taken unconditionally so the search stays
// exhaustive.
func Successors(node *elevator.Elevator) ([]*elevator.Elevator, error) {
	var succs []*elevator.Elevator
	apply := func(ev types.Event) error {
		fork := node.Clone()
		outputs, err := fsm.HandleEvent(fork, ev)
		if err != nil {
			return fmt.Errorf("applying %s to %s: %w", types.EventName(ev), node, err)
		}
		var sink control.Recorder
		if err := sink.HandleOutputs(outputs); err != nil {
			return fmt.Errorf("outputs of %s on %s: %w", types.EventName(ev), node, err)
		}
		succs = append(succs, fork)
		return nil
	}

	for floor := config.MinFloor; floor <= config.MaxFloor; floor++ {
		if err := apply(types.DestinationSelected{Floor: floor}); err != nil {
			return nil, err
		}
	}
	for floor := config.MinFloor; floor < config.MaxFloor; floor++ {
		if err := apply(types.RequestPressed{Floor: floor, Dir: types.Up}); err != nil {
			return nil, err
		}
	}
	for floor := config.MinFloor + 1; floor <= config.MaxFloor; floor++ {
		if err := apply(types.RequestPressed{Floor: floor, Dir: types.Down}); err != nil {
			return nil, err
		}
	}

	switch node.Behaviour {
	case types.Moving:
		if node.Dir == types.None {
			return nil, fmt.Errorf("moving without direction: %s", node)
		}
		if err := apply(types.FloorReached{Floor: node.Floor + int(node.Dir)}); err != nil {
			return nil, err
		}
	case types.Loading:
		if err := apply(types.TimerExpired{}); err != nil {
			return nil, err
		}
	}
	return succs, nil
}
