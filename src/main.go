package main

import (
	"flag"
	"fmt"

	"github.com/eiannone/keyboard"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/xyproto/randomstring"

	"liftbank/src/config"
	"liftbank/src/dispatcher"
	"liftbank/src/logger"
	"liftbank/src/sim"
)

const runIDLen = 10

func main() {
	configPath := flag.String("config", "", "Path to a yaml simulation config. Defaults to the built-in script")
	ticks := flag.Int("ticks", -1, "Override the number of ticks to run")
	seed := flag.Int64("seed", 0, "Use a seeded random request source instead of the script")
	prob := flag.Float64("prob", 0.2, "Per-tick request probability for the random source")
	runID := flag.String("id", "", "Identifier for this run. Defaults to a random string")
	interactive := flag.Bool("interactive", false, "Drive the simulation tick by tick from the keyboard")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	// Optional .env overrides, same keys as the flags.
	if envFile, err := godotenv.Read(".env"); err == nil {
		if *configPath == "" {
			*configPath = envFile["LIFTBANK_CONFIG"]
		}
		if envFile["LIFTBANK_DEBUG"] == "true" {
			*debug = true
		}
	}

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log := logger.GetLoggerConfigured(level)

	if *runID == "" {
		*runID = randomstring.EnglishFrequencyString(runIDLen)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("Cannot load config")
		}
	}
	if *ticks >= 0 {
		cfg.TotalTicks = *ticks
	}

	log.Info().Str("run", *runID).Int("elevators", cfg.Elevators).
		Int("minFloor", cfg.MinFloor).Int("maxFloor", cfg.MaxFloor).
		Msg("Starting elevator bank simulation")

	disp := dispatcher.New(cfg.Elevators, cfg.MinFloor, cfg.MaxFloor, cfg.StartFloor)

	if *interactive {
		runInteractive(disp, cfg, *seed, *prob)
		return
	}

	var source sim.Source
	if *seed != 0 {
		source = sim.NewRandomSource(*seed, *prob, cfg.MinFloor, cfg.MaxFloor)
	} else {
		scripted, err := sim.NewScriptedSource(cfg.Script)
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid script")
		}
		source = scripted
	}

	runner := &sim.Runner{
		Dispatcher: disp,
		Source:     source,
		TotalTicks: cfg.TotalTicks,
		PrintEvery: cfg.PrintEvery,
	}
	runner.Run()
}

// runInteractive advances one tick per keypress: r queues a random request,
// q or Ctrl-C quits, anything else just ticks.
func runInteractive(disp *dispatcher.Dispatcher, cfg config.Config, seed int64, prob float64) {
	log := logger.GetLogger()
	if seed == 0 {
		seed = 1
	}
	random := sim.NewRandomSource(seed, prob, cfg.MinFloor, cfg.MaxFloor)

	fmt.Println("[any key] tick  [r] random request  [q] quit")
	tick := 0
	for {
		char, key, err := keyboard.GetSingleKey()
		if err != nil {
			log.Fatal().Err(err).Msg("Keyboard read failed")
		}
		if char == 'q' || key == keyboard.KeyCtrlC {
			break
		}
		if char == 'r' {
			r := random.Generate(tick)
			if err := disp.Submit(r); err != nil {
				log.Warn().Err(err).Msg("Rejected request")
				continue
			}
			fmt.Printf("queued %v\n", r)
			continue
		}
		fmt.Print(disp.Tick(tick))
		tick++
	}
	log.Info().Int("ticks", tick).Int("stillWaiting", disp.WaitingCount()).
		Msg("Simulation stopped")
}
