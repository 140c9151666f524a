package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"snake-arena/config"
	"snake-arena/game"
	"snake-arena/ui"
	"snake-arena/ui/terminal"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults are used when empty)")
	speed := flag.Int("speed", 0, "Tick interval in milliseconds, overrides ticks_per_second (lower = faster)")
	seed := flag.Uint64("seed", 0, "Random seed, 0 for a time based seed")
	frontend := flag.String("ui", "", "Frontend: window or terminal")
	debug := flag.Bool("debug", false, "Check invariants every tick and log violations")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("%+v", err)
		}
	}
	if *speed > 0 {
		cfg.TicksPerSecond = int(time.Second / (time.Duration(*speed) * time.Millisecond))
		if cfg.TicksPerSecond < 1 {
			cfg.TicksPerSecond = 1
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *frontend != "" {
		cfg.Frontend = *frontend
	}
	if *debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("%+v", err)
	}

	logger, closeLog, err := openLog(cfg)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	defer closeLog()

	seedValue := cfg.ResolveSeed()
	logger.Printf("seed %d, grid %dx%d, %d enemies", seedValue, cfg.Width, cfg.Height, cfg.Enemies)
	rng := rand.New(rand.NewSource(seedValue))

	switch cfg.Frontend {
	case config.FrontendTerminal:
		err = runTerminal(cfg, rng, logger)
	default:
		runWindow(cfg, rng, logger)
	}
	if err != nil {
		closeLog()
		log.Fatalf("%+v", err)
	}
}

// openLog sends the log to log_file when set. Without one the window
// frontend logs to stderr and the terminal frontend, which owns the
// screen, stays silent.
func openLog(cfg config.Config) (*log.Logger, func(), error) {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "open log file %s", cfg.LogFile)
		}
		return log.New(f, "snake: ", log.LstdFlags), func() { f.Close() }, nil
	}
	if cfg.Frontend == config.FrontendTerminal {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	return log.New(os.Stderr, "snake: ", log.LstdFlags), func() {}, nil
}

func runWindow(cfg config.Config, rng *rand.Rand, logger *log.Logger) {
	width, height := ui.WindowSize(cfg.Grid(), cfg.CellSize)
	rl.InitWindow(width, height, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	input := game.NewChanInput(64)
	renderer := ui.NewRenderer()
	g := game.NewGame(cfg, game.Options{Input: input, Sink: renderer, Rand: rng, Logger: logger})
	g.Step()

	lastUpdate := time.Now()
	updateInterval := cfg.TickInterval()

	for !rl.WindowShouldClose() {
		ui.PollKeys(input, g.Phase())

		// Update game state at fixed interval
		if time.Since(lastUpdate) >= updateInterval {
			if !g.Step() {
				break
			}
			lastUpdate = time.Now()
		}

		renderer.Draw()
	}
}

func runTerminal(cfg config.Config, rng *rand.Rand, logger *log.Logger) error {
	input := game.NewChanInput(64)
	term, err := terminal.New(input)
	if err != nil {
		return err
	}
	defer term.Close()
	term.Start()

	g := game.NewGame(cfg, game.Options{Input: input, Sink: term, Rand: rng, Logger: logger})
	g.Step()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(cfg.TickInterval())
	defer ticker.Stop()

	if err := g.Run(ctx, ticker.C); err != nil && !errors.Is(err, context.Canceled) {
		return errors.Wrap(err, "run")
	}
	return nil
}
