package timer

import (
	"time"

	"liftcore/src/logger"
)

type Action int

const (
	Start Action = iota
	Stop
)

// Run drives a single-shot timer that starts disarmed. Start re-arms it for
// the full duration, Stop disarms it. Used for the door timer and for the
// simulated travel sensor in the interactive runner.
func Run(d time.Duration, timeout chan<- bool, action <-chan Action) {
	t := time.NewTimer(d)
	drainStop(t)
	for {
		select {
		case a := <-action:
			switch a {
			case Start:
				drainStop(t)
				t.Reset(d)
			case Stop:
				drainStop(t)
			}
		case <-t.C:
			timeout <- true
			logger.Get().Debug().Dur("duration", d).Msg("timer expired")
		}
	}
}

// drainStop stops the timer and empties its channel so Reset starts clean.
func drainStop(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
