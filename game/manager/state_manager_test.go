package manager

import (
	"testing"
)

func TestStateManagerSummary(t *testing.T) {
	sm := NewStateManager()
	if s := sm.Summary(true); s.Rounds != 0 || s.MeanScore != 0 {
		t.Fatalf("empty summary = %+v", s)
	}

	sm.AddRound(RoundResult{RoundID: "a", Competitive: true, PlayerScore: 1, EnemyScore: 9, Ticks: 10})
	sm.AddRound(RoundResult{RoundID: "b", Competitive: true, PlayerScore: 5, Ticks: 30})
	sm.AddRound(RoundResult{RoundID: "c", Competitive: true, PlayerScore: 3, EnemyScore: 2, Ticks: 20})

	s := sm.Summary(true)
	want := Summary{Competitive: true, Rounds: 3, TotalRounds: 3, HighScore: 5, MeanScore: 3, MedianScore: 3, MeanTicks: 20, LastScore: 3}
	if s != want {
		t.Errorf("summary = %+v, want %+v", s, want)
	}
}

func TestStateManagerKeepsModesApart(t *testing.T) {
	sm := NewStateManager()
	sm.AddRound(RoundResult{Competitive: true, PlayerScore: 2, EnemyScore: 40, Ticks: 50})
	sm.AddRound(RoundResult{Competitive: false, PlayerScore: 0, EnemyScore: 12, Ticks: 400})
	sm.AddRound(RoundResult{Competitive: false, EnemyScore: 8, Ticks: 200})

	played := sm.Summary(true)
	if played.Rounds != 1 || played.HighScore != 2 || played.MeanTicks != 50 {
		t.Errorf("competitive summary = %+v, enemy points leaked in", played)
	}
	watched := sm.Summary(false)
	want := Summary{Rounds: 2, TotalRounds: 3, HighScore: 12, MeanScore: 10, MedianScore: 8, MeanTicks: 300, LastScore: 8}
	if watched != want {
		t.Errorf("observer summary = %+v, want %+v", watched, want)
	}
}
