package manager

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// RoundResult is the final tally of one finished round
type RoundResult struct {
	RoundID     string
	Competitive bool
	PlayerScore int
	EnemyScore  int
	Ticks       int
}

// Summary is the session view of one mode shown between rounds.
// Competitive rounds are scored by the player's points, observer rounds by
// the enemies' points.
type Summary struct {
	Competitive bool
	Rounds      int // Rounds played in this mode
	TotalRounds int // Rounds played in either mode
	HighScore   int
	MeanScore   float64
	MedianScore float64
	MeanTicks   float64
	LastScore   int
}

type tally struct {
	highScore int
	scores    []float64
	ticks     []float64
}

func (t *tally) add(score, ticks int) {
	t.scores = append(t.scores, float64(score))
	t.ticks = append(t.ticks, float64(ticks))
	if score > t.highScore {
		t.highScore = score
	}
}

// StateManager keeps in-memory statistics for the current session, one
// tally per mode. Nothing is persisted.
type StateManager struct {
	played  tally
	watched tally
	rounds  int
}

func NewStateManager() *StateManager {
	return &StateManager{}
}

// AddRound records a finished round in the tally of its mode
func (sm *StateManager) AddRound(r RoundResult) {
	sm.rounds++
	if r.Competitive {
		sm.played.add(r.PlayerScore, r.Ticks)
	} else {
		sm.watched.add(r.EnemyScore, r.Ticks)
	}
}

// Summary reports the competitive tally, or the observer one when
// competitive is false
func (sm *StateManager) Summary(competitive bool) Summary {
	t := &sm.watched
	if competitive {
		t = &sm.played
	}
	s := Summary{
		Competitive: competitive,
		Rounds:      len(t.scores),
		TotalRounds: sm.rounds,
		HighScore:   t.highScore,
	}
	if len(t.scores) == 0 {
		return s
	}
	s.LastScore = int(t.scores[len(t.scores)-1])
	s.MeanScore = stat.Mean(t.scores, nil)
	s.MeanTicks = stat.Mean(t.ticks, nil)

	sorted := append([]float64(nil), t.scores...)
	sort.Float64s(sorted)
	s.MedianScore = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	return s
}
