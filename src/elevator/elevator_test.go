package elevator

import (
	"errors"
	"testing"

	"liftcore/src/config"
	"liftcore/src/types"
)

func newAt(t *testing.T, floor int) *Elevator {
	t.Helper()
	e, err := New(floor)
	if err != nil {
		t.Fatalf("New(%d): %v", floor, err)
	}
	return e
}

func TestNewStartsAtRest(t *testing.T) {
	e := newAt(t, 1)
	if e.Behaviour != types.Idle || e.Dir != types.None || e.Floor != 1 {
		t.Errorf("Expected idle at floor 1 with no direction, got %v", e)
	}
	if e.HasWork() {
		t.Errorf("Expected no pending work, got %v", e)
	}
}

func TestNewRejectsOutOfRangeFloor(t *testing.T) {
	for _, floor := range []int{config.MinFloor - 1, config.MaxFloor + 1} {
		if _, err := New(floor); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("New(%d): expected ErrOutOfRange, got %v", floor, err)
		}
	}
}

func TestBoundaryRequestsRejected(t *testing.T) {
	e := newAt(t, 3)
	if err := e.ReceiveRequest(config.MinFloor, types.Down); !errors.Is(err, ErrIllegalRequest) {
		t.Errorf("down request at bottom floor: expected ErrIllegalRequest, got %v", err)
	}
	if err := e.ReceiveRequest(config.MaxFloor, types.Up); !errors.Is(err, ErrIllegalRequest) {
		t.Errorf("up request at top floor: expected ErrIllegalRequest, got %v", err)
	}
	if err := e.ReceiveRequest(2, types.None); !errors.Is(err, ErrIllegalRequest) {
		t.Errorf("request without direction: expected ErrIllegalRequest, got %v", err)
	}
	if err := e.ReceiveRequest(config.MaxFloor+1, types.Up); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("request beyond shaft: expected ErrOutOfRange, got %v", err)
	}
	if e.HasWork() {
		t.Errorf("Expected rejected requests to leave no state, got %v", e)
	}
}

func TestDestinationOutOfRangeRejected(t *testing.T) {
	e := newAt(t, 1)
	if err := e.ReceiveDestination(config.MaxFloor + 1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange, got %v", err)
	}
}

func TestIdleDirectionPrefersDestinations(t *testing.T) {
	// From rest, drop-offs decide the direction even when landing calls point
	// the other way.
	e := newAt(t, 3)
	e.UpRequests.Add(1)
	e.UpRequests.Add(2)
	if err := e.ReceiveDestination(5); err != nil {
		t.Fatalf("ReceiveDestination: %v", err)
	}
	if e.Dir != types.Up {
		t.Errorf("Expected Up towards destination, got %v", e.Dir)
	}
}

func TestIdleDirectionMajorityOfRequests(t *testing.T) {
	e := newAt(t, 3)
	e.DownRequests.Add(2)
	e.UpRequests.Add(2)
	if err := e.ReceiveRequest(2, types.Down); err != nil {
		t.Fatalf("ReceiveRequest: %v", err)
	}
	if e.Dir != types.Down {
		t.Errorf("Expected Down towards request majority, got %v", e.Dir)
	}
}

func TestIdleDirectionTieGoesUp(t *testing.T) {
	// One candidate below, one at-or-above: an exact split goes up.
	e := newAt(t, 3)
	e.Destinations.Add(1)
	if err := e.ReceiveDestination(5); err != nil {
		t.Fatalf("ReceiveDestination: %v", err)
	}
	if e.Dir != types.Up {
		t.Errorf("Expected tie to go Up, got %v", e.Dir)
	}
}

func TestBoundaryFloorOverridesDirection(t *testing.T) {
	bottom := newAt(t, config.MinFloor)
	if err := bottom.ReceiveDestination(config.MinFloor); err != nil {
		t.Fatalf("ReceiveDestination: %v", err)
	}
	if bottom.Dir != types.Up {
		t.Errorf("Expected Up at bottom floor, got %v", bottom.Dir)
	}

	top := newAt(t, config.MaxFloor)
	if err := top.ReceiveDestination(config.MaxFloor); err != nil {
		t.Fatalf("ReceiveDestination: %v", err)
	}
	if top.Dir != types.Down {
		t.Errorf("Expected Down at top floor, got %v", top.Dir)
	}
}

func TestMovingKeepsDirectionWhileWorkAhead(t *testing.T) {
	e := newAt(t, 2)
	if err := e.ReceiveDestination(4); err != nil {
		t.Fatalf("ReceiveDestination: %v", err)
	}
	if e.Dir != types.Up {
		t.Fatalf("Expected Up, got %v", e.Dir)
	}
	e.DownRequests.Add(2) // behind the car, must not turn it around

	open, err := e.ReachFloor(3)
	if err != nil {
		t.Fatalf("ReachFloor(3): %v", err)
	}
	if open {
		t.Error("Expected no stop at floor 3")
	}
	if e.Dir != types.Up {
		t.Errorf("Expected Up kept with drop-off ahead, got %v", e.Dir)
	}

	open, err = e.ReachFloor(4)
	if err != nil {
		t.Fatalf("ReachFloor(4): %v", err)
	}
	if !open {
		t.Error("Expected door to open for drop-off at floor 4")
	}
	if e.Dir != types.Down {
		t.Errorf("Expected reversal towards remaining call below, got %v", e.Dir)
	}
}

func TestReachFloorPicksUpOnlyInTravelDirection(t *testing.T) {
	e := newAt(t, 1)
	if err := e.ReceiveRequest(3, types.Down); err != nil {
		t.Fatalf("ReceiveRequest: %v", err)
	}
	if err := e.ReceiveRequest(3, types.Up); err != nil {
		t.Fatalf("ReceiveRequest: %v", err)
	}
	if _, err := e.ReachFloor(2); err != nil {
		t.Fatalf("ReachFloor(2): %v", err)
	}
	open, err := e.ReachFloor(3)
	if err != nil {
		t.Fatalf("ReachFloor(3): %v", err)
	}
	if !open {
		t.Error("Expected pickup of the up call at floor 3")
	}
	if e.UpRequests.Has(3) {
		t.Error("Expected up call cleared")
	}
	if !e.DownRequests.Has(3) {
		t.Error("Expected down call kept for the return pass")
	}
}

func TestReachFloorRejectsNonAdjacent(t *testing.T) {
	e := newAt(t, 1)
	if err := e.ReceiveDestination(5); err != nil {
		t.Fatalf("ReceiveDestination: %v", err)
	}
	if _, err := e.ReachFloor(3); !errors.Is(err, ErrIllegalRequest) {
		t.Errorf("Expected ErrIllegalRequest for a two-floor jump, got %v", err)
	}
}

func TestReachFloorRejectsWhileStationary(t *testing.T) {
	e := newAt(t, 2)
	if _, err := e.ReachFloor(3); !errors.Is(err, ErrIllegalRequest) {
		t.Errorf("Expected ErrIllegalRequest without direction, got %v", err)
	}
}

func TestCloseDoor(t *testing.T) {
	e := newAt(t, 2)
	if e.CloseDoor() {
		t.Error("Expected no further travel with nothing pending")
	}
	if err := e.ReceiveDestination(4); err != nil {
		t.Fatalf("ReceiveDestination: %v", err)
	}
	if !e.CloseDoor() {
		t.Error("Expected further travel with a destination pending")
	}
	if e.Dir != types.Up {
		t.Errorf("Expected Up, got %v", e.Dir)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	e := newAt(t, 2)
	if err := e.ReceiveDestination(4); err != nil {
		t.Fatalf("ReceiveDestination: %v", err)
	}
	fork := e.Clone()
	fork.Destinations.Add(5)
	fork.Floor = 3
	if e.Destinations.Has(5) {
		t.Error("Expected original destinations untouched by fork mutation")
	}
	if e.Floor != 2 {
		t.Errorf("Expected original floor 2, got %d", e.Floor)
	}
}

func TestKeyIsCanonical(t *testing.T) {
	a := newAt(t, 2)
	a.Destinations.Add(4)
	a.Destinations.Add(3)
	b := newAt(t, 2)
	b.Destinations.Add(3)
	b.Destinations.Add(4)
	if a.Key() != b.Key() {
		t.Errorf("Expected equal keys, got %q and %q", a.Key(), b.Key())
	}
	b.UpRequests.Add(2)
	if a.Key() == b.Key() {
		t.Errorf("Expected different keys, both %q", a.Key())
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Elevator)
	}{
		{"down at bottom", func(e *Elevator) { e.Dir = types.Down }},
		{"idle with direction", func(e *Elevator) { e.Floor = 3; e.Dir = types.Up }},
		{"idle with work", func(e *Elevator) { e.Floor = 3; e.Behaviour = types.Idle; e.Destinations.Add(4) }},
		{"down request at bottom", func(e *Elevator) { e.Behaviour = types.Loading; e.DownRequests.Add(config.MinFloor) }},
		{"up request at top", func(e *Elevator) { e.Behaviour = types.Loading; e.UpRequests.Add(config.MaxFloor) }},
		{"floor out of range", func(e *Elevator) { e.Floor = config.MaxFloor + 1 }},
	}
	for _, tc := range cases {
		e := newAt(t, config.MinFloor)
		tc.mutate(e)
		if err := e.Validate(); !errors.Is(err, ErrInvariant) {
			t.Errorf("%s: expected ErrInvariant, got %v", tc.name, err)
		}
	}

	ok := newAt(t, 3)
	if err := ok.Validate(); err != nil {
		t.Errorf("Expected valid car, got %v", err)
	}
}
