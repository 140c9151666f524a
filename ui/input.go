package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arena/game"
	"snake-arena/game/types"
)

type binding struct {
	key   int32
	event game.Event
}

// Bindings maps window keys to game events. Arrow keys steer in play and
// also start a round from the menu, so they are listed twice.
var Bindings = []binding{
	{rl.KeyUp, game.DirectionEvent(types.Up)},
	{rl.KeyDown, game.DirectionEvent(types.Down)},
	{rl.KeyLeft, game.DirectionEvent(types.Left)},
	{rl.KeyRight, game.DirectionEvent(types.Right)},
	{rl.KeyEnter, game.ModeEvent(game.Competitive)},
	{rl.KeySpace, game.ModeEvent(game.Competitive)},
	{rl.KeyW, game.ModeEvent(game.Observer)},
	{rl.KeyR, game.Event{Kind: game.EventRestart}},
	{rl.KeyM, game.Event{Kind: game.EventMenu}},
	{rl.KeyQ, game.Event{Kind: game.EventQuit}},
}

// PollKeys queues an event for every bound key pressed this frame. In the
// menu an arrow key also starts a competitive round.
func PollKeys(in *game.ChanInput, phase game.Phase) {
	for _, b := range Bindings {
		if !rl.IsKeyPressed(b.key) {
			continue
		}
		if phase == game.PhaseMenu && b.event.Kind == game.EventDirection {
			in.Send(game.ModeEvent(game.Competitive))
		}
		in.Send(b.event)
	}
}
