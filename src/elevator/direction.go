package elevator

import (
	"liftcore/src/config"
	"liftcore/src/types"
)

// updateDirection recomputes the travel direction after every mutation. The
// next direction is purely a function of the current direction, the pending
// destinations and the pending landing calls:
//
//  1. nothing pending: no direction.
//  2. at the bottom or top floor the shaft boundary overrides everything.
//  3. starting from rest, go where the majority of pending floors is,
//     resolving destinations before landing calls.
//  4. already moving: keep going while anything remains ahead, reverse only
//     when nothing does. The car runs to the highest/lowest wanted floor
//     before turning back.
func (e *Elevator) updateDirection() {
	e.Dir = e.nextDirection()
}

func (e *Elevator) nextDirection() types.Direction {
	if !e.HasWork() {
		return types.None
	}
	if e.Floor == config.MinFloor {
		return types.Up
	}
	if e.Floor == config.MaxFloor {
		return types.Down
	}
	switch e.Dir {
	case types.None:
		if !e.Destinations.Empty() {
			return e.majorityDirection(e.Destinations)
		}
		return e.majorityDirection(e.UpRequests, e.DownRequests)
	case types.Up:
		if e.countAtOrAbove(e.Destinations) > 0 {
			return types.Up
		}
		if e.countAtOrAbove(e.UpRequests, e.DownRequests) > 0 {
			return types.Up
		}
		return types.Down
	default:
		if e.countAtOrBelow(e.Destinations) > 0 {
			return types.Down
		}
		if e.countAtOrBelow(e.UpRequests, e.DownRequests) > 0 {
			return types.Down
		}
		return types.Up
	}
}

// majorityDirection picks the side of the current floor holding at least half
// of the given floors. Up wins an exact split.
func (e *Elevator) majorityDirection(sets ...FloorSet) types.Direction {
	total := 0
	above := 0
	for _, s := range sets {
		for floor := range s {
			total++
			if floor >= e.Floor {
				above++
			}
		}
	}
	if 2*above >= total {
		return types.Up
	}
	return types.Down
}

func (e *Elevator) countAtOrAbove(sets ...FloorSet) int {
	n := 0
	for _, s := range sets {
		for floor := range s {
			if floor >= e.Floor {
				n++
			}
		}
	}
	return n
}

func (e *Elevator) countAtOrBelow(sets ...FloorSet) int {
	n := 0
	for _, s := range sets {
		for floor := range s {
			if floor <= e.Floor {
				n++
			}
		}
	}
	return n
}
