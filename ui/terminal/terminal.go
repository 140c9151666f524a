// Package terminal draws the arena with tcell and turns key presses into
// game events.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"snake-arena/game"
	"snake-arena/game/entity"
	"snake-arena/game/manager"
	"snake-arena/game/types"
)

var (
	defStyle    = tcell.StyleDefault.Background(tcell.ColorDefault).Foreground(tcell.ColorDefault)
	wallStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	foodStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	titleStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

var enemyStyles = []tcell.Style{
	tcell.StyleDefault.Foreground(tcell.ColorBlue),
	tcell.StyleDefault.Foreground(tcell.ColorPurple),
	tcell.StyleDefault.Foreground(tcell.ColorOrange),
	tcell.StyleDefault.Foreground(tcell.ColorTeal),
}

// Terminal is a RenderSink drawing on a tcell screen. Each grid cell takes
// two columns so the board looks square.
type Terminal struct {
	screen tcell.Screen
	input  *game.ChanInput
	events chan tcell.Event
	quit   chan struct{}
}

// New opens the real terminal
func New(input *game.ChanInput) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "open terminal")
	}
	return NewWithScreen(screen, input)
}

// NewWithScreen initialises the given screen, used with simulation screens
func NewWithScreen(screen tcell.Screen, input *game.ChanInput) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init terminal")
	}
	screen.SetStyle(defStyle)
	screen.HideCursor()
	return &Terminal{
		screen: screen,
		input:  input,
		events: make(chan tcell.Event, 100),
		quit:   make(chan struct{}),
	}, nil
}

// Start forwards key presses to the input queue until Close
func (t *Terminal) Start() {
	go t.screen.ChannelEvents(t.events, t.quit)
	go func() {
		for ev := range t.events {
			key, ok := ev.(*tcell.EventKey)
			if !ok {
				continue
			}
			if e, ok := KeyEvent(key); ok {
				t.input.Send(e)
			}
		}
	}()
}

// Close stops event forwarding and restores the terminal
func (t *Terminal) Close() {
	close(t.quit)
	t.screen.Fini()
}

// KeyEvent maps a key press to a game event. Arrows and hjkl steer; p or
// enter plays; w watches; r restarts; m or escape opens the menu; q or
// ctrl-c quits.
func KeyEvent(ev *tcell.EventKey) (game.Event, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.DirectionEvent(types.Up), true
	case tcell.KeyDown:
		return game.DirectionEvent(types.Down), true
	case tcell.KeyLeft:
		return game.DirectionEvent(types.Left), true
	case tcell.KeyRight:
		return game.DirectionEvent(types.Right), true
	case tcell.KeyEnter:
		return game.ModeEvent(game.Competitive), true
	case tcell.KeyEscape:
		return game.Event{Kind: game.EventMenu}, true
	case tcell.KeyCtrlC:
		return game.Event{Kind: game.EventQuit}, true
	case tcell.KeyRune:
	default:
		return game.Event{}, false
	}

	switch ev.Rune() {
	case 'k':
		return game.DirectionEvent(types.Up), true
	case 'j':
		return game.DirectionEvent(types.Down), true
	case 'h':
		return game.DirectionEvent(types.Left), true
	case 'l':
		return game.DirectionEvent(types.Right), true
	case 'p', ' ':
		return game.ModeEvent(game.Competitive), true
	case 'w':
		return game.ModeEvent(game.Observer), true
	case 'r':
		return game.Event{Kind: game.EventRestart}, true
	case 'm':
		return game.Event{Kind: game.EventMenu}, true
	case 'q':
		return game.Event{Kind: game.EventQuit}, true
	}
	return game.Event{}, false
}

// Render draws one snapshot and shows it
func (t *Terminal) Render(snap game.Snapshot) {
	t.screen.Clear()

	if snap.Phase == game.PhaseMenu {
		t.drawMenu(snap)
		t.screen.Show()
		return
	}

	for _, c := range snap.Cells {
		r, style := glyph(c)
		t.set(c.Pos, r, style)
	}

	status := fmt.Sprintf(" %s  tick %d  player %d  enemies %d ",
		snap.Mode, snap.Tick, snap.PlayerScore, snap.EnemyScore)
	t.text(0, snap.Grid.Height, status, textStyle)

	if snap.Phase == game.PhaseRoundOver {
		lines := []string{
			"GAME OVER",
			fmt.Sprintf("score %d  best %d  %s rounds %d", scoreOf(snap), snap.Session.HighScore, sessionLabel(snap.Session), snap.Session.Rounds),
			"r restart   m menu   q quit",
		}
		t.centered(snap.Grid, lines)
	}
	t.screen.Show()
}

func (t *Terminal) drawMenu(snap game.Snapshot) {
	lines := []string{
		"SNAKE ARENA",
		"",
		"p / enter   play against the enemies",
		"w           watch the enemies",
		"q           quit",
		"",
		"arrows or hjkl steer",
	}
	if snap.Session.Rounds > 0 {
		lines = append(lines, "", fmt.Sprintf("%s rounds %d  best %d  mean %.1f  median %.1f",
			sessionLabel(snap.Session), snap.Session.Rounds, snap.Session.HighScore, snap.Session.MeanScore, snap.Session.MedianScore))
	}
	t.centered(snap.Grid, lines)
}

func scoreOf(snap game.Snapshot) int {
	if snap.Mode == game.Observer {
		return snap.EnemyScore
	}
	return snap.PlayerScore
}

func sessionLabel(s manager.Summary) string {
	if s.Competitive {
		return "played"
	}
	return "watched"
}

func glyph(c game.Cell) (rune, tcell.Style) {
	switch c.Kind {
	case entity.KindWall:
		return '█', wallStyle
	case entity.KindFood:
		return '●', foodStyle
	}
	style := playerStyle
	if c.Owner == entity.Enemy {
		style = enemyStyles[c.SnakeID%len(enemyStyles)]
	}
	switch c.Role {
	case entity.Head:
		return '@', style.Bold(true)
	case entity.Tail:
		return '·', style
	default:
		return 'o', style
	}
}

func (t *Terminal) set(p types.Point, r rune, style tcell.Style) {
	fill := ' '
	if r == '█' {
		fill = r
	}
	t.screen.SetContent(2*p.X, p.Y, r, nil, style)
	t.screen.SetContent(2*p.X+1, p.Y, fill, nil, style)
}

func (t *Terminal) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (t *Terminal) centered(grid types.Grid, lines []string) {
	top := grid.Height/2 - len(lines)/2
	for i, line := range lines {
		style := textStyle
		if i == 0 {
			style = titleStyle
		}
		x := grid.Width - len([]rune(line))/2
		if x < 0 {
			x = 0
		}
		t.text(x, top+i, line, style)
	}
}
