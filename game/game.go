package game

import (
	"context"
	"io"
	"log"
	"time"

	"golang.org/x/exp/rand"

	"snake-arena/config"
	"snake-arena/game/manager"
	"snake-arena/game/types"
)

// Options carries the collaborators injected into a Game. Zero values get
// a silent sink, an empty input, a seeded random source and a discarding
// logger.
type Options struct {
	Input  InputSource
	Sink   RenderSink
	Rand   types.Rand
	Logger *log.Logger
}

// Game drives the Menu, Playing and RoundOver phases. It is not safe for
// concurrent use: only the goroutine calling Step may touch it.
type Game struct {
	cfg    config.Config
	input  InputSource
	sink   RenderSink
	rng    types.Rand
	logger *log.Logger
	stats  *manager.StateManager

	phase    Phase
	round    *Round
	lastMode Mode // Mode of the latest round, picks the stats shown
	done     bool
}

func NewGame(cfg config.Config, opts Options) *Game {
	g := &Game{
		cfg:    cfg,
		input:  opts.Input,
		sink:   opts.Sink,
		rng:    opts.Rand,
		logger: opts.Logger,
		stats:  manager.NewStateManager(),
		phase:  PhaseMenu,
	}
	if g.input == nil {
		g.input = nopInput{}
	}
	if g.sink == nil {
		g.sink = nopSink{}
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(cfg.ResolveSeed()))
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard, "", 0)
	}
	return g
}

func (g *Game) Phase() Phase {
	return g.phase
}

// Round is the current or last finished round; nil in the menu
func (g *Game) Round() *Round {
	return g.round
}

func (g *Game) Stats() *manager.StateManager {
	return g.stats
}

// Done reports whether the game was terminated
func (g *Game) Done() bool {
	return g.done
}

// Step performs one whole update and renders the result. It returns false
// once the game has terminated.
func (g *Game) Step() bool {
	if g.done {
		return false
	}
	switch g.phase {
	case PhaseMenu:
		g.stepMenu()
	case PhasePlaying:
		g.stepPlaying()
	case PhaseRoundOver:
		g.stepRoundOver()
	}
	if g.done {
		return false
	}
	g.sink.Render(g.Snapshot())
	return true
}

func (g *Game) stepMenu() {
	for {
		ev, ok := g.input.Next()
		if !ok {
			return
		}
		switch ev.Kind {
		case EventQuit:
			g.quit()
			return
		case EventModeSelect:
			g.startRound(ev.Mode)
			return
		}
	}
}

// stepPlaying drains events up to the first direction request, which is
// the only one applied this tick. Later events stay queued for the next.
func (g *Game) stepPlaying() {
	var dir *types.Direction
	for dir == nil {
		ev, ok := g.input.Next()
		if !ok {
			break
		}
		switch ev.Kind {
		case EventQuit:
			g.finishRound("quit")
			g.quit()
			return
		case EventMenu:
			g.finishRound("stopped")
			return
		case EventDirection:
			d := ev.Direction
			dir = &d
		}
	}

	r := g.round
	r.Step(dir)
	if g.cfg.Debug {
		if err := r.CheckInvariants(); err != nil {
			g.logger.Printf("round %s tick %d: invariant violated: %v", r.ID, r.Tick, err)
		}
	}
	if r.Over {
		g.finishRound("player died")
	}
}

func (g *Game) stepRoundOver() {
	for {
		ev, ok := g.input.Next()
		if !ok {
			return
		}
		switch ev.Kind {
		case EventQuit:
			g.quit()
			return
		case EventRestart:
			g.startRound(g.round.Mode)
			return
		case EventMenu:
			g.phase = PhaseMenu
			g.round = nil
			return
		}
	}
}

func (g *Game) startRound(mode Mode) {
	g.round = NewRound(g.cfg, mode, g.rng, g.logger)
	g.lastMode = mode
	g.phase = PhasePlaying
	g.logger.Printf("round %s started (%s, %d enemies)", g.round.ID, mode, g.cfg.Enemies)
}

func (g *Game) finishRound(reason string) {
	r := g.round
	r.Over = true
	g.phase = PhaseRoundOver
	g.stats.AddRound(manager.RoundResult{
		RoundID:     r.ID,
		Competitive: r.Mode == Competitive,
		PlayerScore: r.PlayerScore,
		EnemyScore:  r.EnemyScore,
		Ticks:       r.Tick,
	})
	g.logger.Printf("round %s over after %d ticks: %s, player %d enemy %d",
		r.ID, r.Tick, reason, r.PlayerScore, r.EnemyScore)
}

func (g *Game) quit() {
	g.done = true
	g.logger.Printf("quit")
}

// Snapshot is a copy of the current state for rendering
func (g *Game) Snapshot() Snapshot {
	var snap Snapshot
	if g.round != nil {
		snap = g.round.snapshot()
	} else {
		snap.Grid = g.cfg.Grid()
	}
	snap.Phase = g.phase
	snap.Session = g.stats.Summary(g.lastMode == Competitive)
	return snap
}

// Run steps once per tick until the game terminates or ctx is cancelled.
// Cancellation is only observed between ticks.
func (g *Game) Run(ctx context.Context, ticks <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticks:
			if !g.Step() {
				return nil
			}
		}
	}
}
