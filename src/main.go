package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/eiannone/keyboard"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"liftcore/src/config"
	"liftcore/src/control"
	"liftcore/src/elevator"
	"liftcore/src/explorer"
	"liftcore/src/fsm"
	"liftcore/src/logger"
	"liftcore/src/timer"
	"liftcore/src/types"
)

func main() {
	check := flag.Bool("check", false, "explore the whole reachable state space and exit")
	trace := flag.Bool("trace", false, "run the scripted multi-floor pickup scenario and exit")
	configPath := flag.String("config", "", "path to a YAML config file (defaults to $LIFTCORE_CONFIG)")
	flag.Parse()

	// .env is optional; ignore a missing file.
	_ = godotenv.Load()

	path := *configPath
	if path == "" {
		path = os.Getenv("LIFTCORE_CONFIG")
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid log level:", cfg.LogLevel)
		os.Exit(1)
	}
	log := logger.GetConfigured(level)

	switch {
	case *check:
		stats, err := explorer.Explore()
		if err != nil {
			log.Fatal().Err(err).Msg("state-space exploration failed")
		}
		log.Info().
			Int("visited", stats.Visited).
			Int("expanded", stats.Expanded).
			Int("transitions", stats.Transitions).
			Msg("no deadlocks, all invariants hold in every reachable configuration")
	case *trace:
		runTrace(log)
	default:
		runInteractive(log, cfg)
	}
}

// runTrace replays a pickup-at-multiple-floors scenario and checks the car's
// behaviour and position after every event.
func runTrace(log *zerolog.Logger) {
	type step struct {
		event     types.Event
		behaviour types.Behaviour
		floor     int
	}
	steps := []step{
		{types.RequestPressed{Floor: 2, Dir: types.Up}, types.Moving, 1},
		{types.FloorReached{Floor: 2}, types.Loading, 2},
		{types.TimerExpired{}, types.Idle, 2},
		{types.DestinationSelected{Floor: 5}, types.Moving, 2},
		{types.RequestPressed{Floor: 4, Dir: types.Up}, types.Moving, 2},
		{types.FloorReached{Floor: 3}, types.Moving, 3},
		{types.FloorReached{Floor: 4}, types.Loading, 4},
		{types.TimerExpired{}, types.Moving, 4},
		{types.DestinationSelected{Floor: 5}, types.Moving, 4},
		{types.FloorReached{Floor: 5}, types.Loading, 5},
		{types.TimerExpired{}, types.Idle, 5},
	}

	elev, err := elevator.New(config.MinFloor)
	if err != nil {
		log.Fatal().Err(err).Msg("creating car")
	}
	sink := control.Console{}
	for _, s := range steps {
		log.Info().Str("event", types.EventName(s.event)).Msg("dispatching")
		outputs, err := fsm.HandleEvent(elev, s.event)
		if err != nil {
			log.Fatal().Err(err).Stringer("car", elev).Msg("event dispatch failed")
		}
		if err := sink.HandleOutputs(outputs); err != nil {
			log.Fatal().Err(err).Msg("control output rejected")
		}
		if elev.Behaviour != s.behaviour || elev.Floor != s.floor {
			log.Fatal().
				Stringer("car", elev).
				Stringer("wantBehaviour", s.behaviour).
				Int("wantFloor", s.floor).
				Msg("trace diverged")
		}
		log.Info().Stringer("car", elev).Msg("ok")
	}
	log.Info().Msg("trace complete")
}

// runInteractive drives the car from the keyboard. Digits select a cab
// destination; 'u' or 'd' followed by a digit places a landing call. The
// timer goroutines play the door timer and the floor sensor.
func runInteractive(log *zerolog.Logger, cfg config.Config) {
	elev, err := elevator.New(config.MinFloor)
	if err != nil {
		log.Fatal().Err(err).Msg("creating car")
	}
	sink := control.Console{}

	doorTimeout := make(chan bool, 1)
	doorAction := make(chan timer.Action, 1)
	travelTimeout := make(chan bool, 1)
	travelAction := make(chan timer.Action, 1)
	go timer.Run(cfg.DoorOpenDuration, doorTimeout, doorAction)
	go timer.Run(cfg.TravelDuration, travelTimeout, travelAction)

	keys := make(chan rune)
	go pollKeys(log, keys)

	fmt.Printf("floors %d-%d | digit: cab destination | u/d then digit: landing call | q: quit\n",
		config.MinFloor, config.MaxFloor)

	dispatch := func(ev types.Event) {
		outputs, err := fsm.HandleEvent(elev, ev)
		if err != nil {
			// Any illegal event or request is a hard stop of the car.
			log.Fatal().Err(err).Stringer("car", elev).Msg("event dispatch failed")
		}
		if err := sink.HandleOutputs(outputs); err != nil {
			log.Fatal().Err(err).Msg("control output rejected")
		}
		for _, out := range outputs {
			switch out.(type) {
			case types.SetTimer:
				doorAction <- timer.Start
			case types.HoistMotor:
				travelAction <- timer.Start
			case types.StopMotor:
				travelAction <- timer.Stop
			}
		}
		log.Info().Stringer("car", elev).Str("event", types.EventName(ev)).Msg("event handled")
	}

	pendingDir := types.None
	for {
		select {
		case ch := <-keys:
			switch {
			case ch == 'q':
				log.Info().Msg("shutting down")
				return
			case ch == 'u':
				pendingDir = types.Up
			case ch == 'd':
				pendingDir = types.Down
			case ch >= '0' && ch <= '9':
				floor := int(ch - '0')
				if pendingDir != types.None {
					dispatch(types.RequestPressed{Floor: floor, Dir: pendingDir})
					pendingDir = types.None
				} else {
					dispatch(types.DestinationSelected{Floor: floor})
				}
			}
		case <-doorTimeout:
			if elev.Behaviour == types.Loading {
				dispatch(types.TimerExpired{})
			}
		case <-travelTimeout:
			if elev.Behaviour == types.Moving {
				dispatch(types.FloorReached{Floor: elev.Floor + int(elev.Dir)})
			}
		}
	}
}

func pollKeys(log *zerolog.Logger, keys chan<- rune) {
	for {
		ch, key, err := keyboard.GetSingleKey()
		if err != nil {
			log.Fatal().Err(err).Msg("reading keyboard")
		}
		if key == keyboard.KeyCtrlC {
			keys <- 'q'
			return
		}
		keys <- ch
	}
}
