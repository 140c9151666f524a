package game

import (
	"testing"

	"golang.org/x/exp/rand"

	"snake-arena/config"
	"snake-arena/game/entity"
	"snake-arena/game/types"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.InnerWalls = 0
	cfg.Enemies = 0
	cfg.Seed = 1
	return cfg
}

func newTestRound(t *testing.T, cfg config.Config, mode Mode) *Round {
	t.Helper()
	return NewRound(cfg, mode, rand.New(rand.NewSource(cfg.Seed)), nil)
}

func mustHold(t *testing.T, r *Round) {
	t.Helper()
	if err := r.CheckInvariants(); err != nil {
		t.Fatalf("tick %d: %v", r.Tick, err)
	}
}

func dirp(d types.Direction) *types.Direction {
	return &d
}

func TestNewRoundLayout(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 5
	r := newTestRound(t, cfg, Competitive)

	if r.Player == nil || r.Player.Head() != PlayerStart(r.Grid) || r.Player.Direction != types.Right {
		t.Fatalf("player = %+v", r.Player)
	}
	if r.Walls.Has(r.Grid.Step(r.Player.Head(), types.Right)) {
		t.Error("wall directly in front of the player")
	}
	if got := len(r.Enemies()); got != cfg.Enemies {
		t.Errorf("enemies = %d, want %d", got, cfg.Enemies)
	}
	if !r.Food.Placed {
		t.Error("food not placed")
	}
	if len(r.ID) != 36 {
		t.Errorf("round id %q is not a uuid", r.ID)
	}
	mustHold(t, r)

	obs := newTestRound(t, cfg, Observer)
	if obs.Player != nil {
		t.Error("observer round has a player")
	}
}

func TestEatingGrowsOnTheSameTick(t *testing.T) {
	r := newTestRound(t, testConfig(), Competitive)
	p := r.Player
	oldTail := p.Tail()
	ahead := r.Grid.Step(p.Head(), types.Right)
	r.Food.Place(ahead)

	r.Step(nil)

	if p.Len() != 5 {
		t.Fatalf("length = %d, want 5", p.Len())
	}
	if p.Body[3] != oldTail || p.Tail() != oldTail {
		t.Errorf("new segment and tail = %+v %+v, want both at %+v", p.Body[3], p.Tail(), oldTail)
	}
	if r.Food.Pos == ahead || r.Occupancy().HasSegment(r.Food.Pos) || r.Walls.Has(r.Food.Pos) {
		t.Errorf("food respawned on an occupied cell %+v", r.Food.Pos)
	}
	if r.PlayerScore != 1 {
		t.Errorf("score = %d, want 1", r.PlayerScore)
	}
	mustHold(t, r)

	r.Food.Place(types.Point{X: 3, Y: 25})
	r.Step(nil)
	if p.Len() != 5 || p.Grew {
		t.Errorf("length %d grew %v after a plain tick", p.Len(), p.Grew)
	}
	mustHold(t, r)
}

func TestSelfCollisionOnExactTick(t *testing.T) {
	r := newTestRound(t, testConfig(), Competitive)
	r.Food.Place(types.Point{X: 3, Y: 25})
	p := r.Player
	h := p.Head()
	p.Body = append(p.Body, types.Point{X: h.X - 4, Y: h.Y})

	turns := []types.Direction{types.Down, types.Left, types.Up}
	for i, d := range turns {
		r.Step(dirp(d))
		if last := i == len(turns)-1; r.Over != last {
			t.Fatalf("tick %d: over = %v", r.Tick, r.Over)
		}
		if !r.Over {
			mustHold(t, r)
		}
	}
	if !p.Dead || r.Tick != 3 {
		t.Errorf("player dead %v at tick %d, want dead at tick 3", p.Dead, r.Tick)
	}
}

func TestEnemyRespawnTiming(t *testing.T) {
	cfg := testConfig()
	cfg.Enemies = 1
	cfg.RespawnDelay = 4
	r := newTestRound(t, cfg, Competitive)

	// Corner trap: every legal move of the enemy hits a wall.
	r.Walls = entity.NewWalls(append(entity.BorderCells(r.Grid), types.Point{X: 2, Y: 1})...)
	r.Food.Place(types.Point{X: 5, Y: 20})
	e := r.Enemies()[0]
	e.Snake = entity.NewSnake(1, entity.Enemy, r.Grid, types.Point{X: 1, Y: 1}, types.Up)

	r.Step(nil)
	died := r.Tick
	if !e.Snake.Dead {
		t.Fatal("enemy survived the trap")
	}
	if !e.Controller.Fallback {
		t.Error("enemy should have fallen back without a path")
	}
	if r.PlayerScore != 1 {
		t.Errorf("player score = %d, want 1 for the enemy wall death", r.PlayerScore)
	}

	for r.Tick < died+cfg.RespawnDelay-1 {
		r.Step(nil)
		if r.Occupancy().Contains(1) {
			t.Fatalf("enemy present at tick %d, died at %d", r.Tick, died)
		}
		mustHold(t, r)
	}

	r.Step(nil)
	if !r.Occupancy().Contains(1) || e.Snake.Dead {
		t.Fatalf("enemy absent at tick %d", r.Tick)
	}
	s := e.Snake
	if s.Len() != types.MinSnakeLength {
		t.Errorf("respawned length = %d", s.Len())
	}
	layout := entity.Layout(r.Grid, s.Head(), s.Direction)
	for i := range layout {
		if s.Body[i] != layout[i] {
			t.Fatalf("respawned body %v, want default layout %v", s.Body, layout)
		}
	}
	mustHold(t, r)
}

func TestInvariantsHoldOverLongRuns(t *testing.T) {
	for seed := uint64(1); seed <= 8; seed++ {
		cfg := config.Default()
		cfg.Seed = seed
		cfg.Enemies = 4
		cfg.RespawnDelay = 3
		r := newTestRound(t, cfg, Observer)

		prev := make(map[*entity.Snake]types.Direction)
		for i := 0; i < 400; i++ {
			before := make(map[*entity.Snake]int)
			for _, s := range r.Snakes() {
				before[s] = s.Len()
			}
			food := r.Food.Pos

			r.Step(nil)
			mustHold(t, r)

			for _, s := range r.Snakes() {
				if d, ok := prev[s]; ok && s.Direction == d.Opposite() {
					t.Fatalf("seed %d tick %d: snake %d reversed", seed, r.Tick, s.ID)
				}
				prev[s] = s.Direction

				n, ok := before[s]
				if !ok {
					continue
				}
				want := n
				if s.Head() == food {
					want++
				}
				if s.Len() != want {
					t.Fatalf("seed %d tick %d: snake %d length %d, want %d", seed, r.Tick, s.ID, s.Len(), want)
				}
			}
		}
	}
}

func TestPlayerCannotReverse(t *testing.T) {
	r := newTestRound(t, testConfig(), Competitive)
	r.Food.Place(types.Point{X: 3, Y: 3})
	r.Step(dirp(types.Left))
	if r.Player.Direction != types.Right {
		t.Errorf("direction = %v after a reversal request", r.Player.Direction)
	}
	r.Step(dirp(types.Up))
	r.Step(dirp(types.Down))
	if r.Player.Direction != types.Up {
		t.Errorf("direction = %v, want up", r.Player.Direction)
	}
}

func TestCheckInvariantsReportsOverlap(t *testing.T) {
	r := newTestRound(t, testConfig(), Competitive)
	r.Player.Body[2] = r.Player.Body[0]
	if err := r.CheckInvariants(); err == nil {
		t.Error("overlapping segments not reported")
	}
}

// placeEnemy swaps the round's only enemy for a fresh snake at head
func placeEnemy(r *Round, head types.Point, dir types.Direction) *entity.Snake {
	e := r.Enemies()[0]
	e.Snake = entity.NewSnake(1, entity.Enemy, r.Grid, head, dir)
	return e.Snake
}

func TestEnemyDoesNotPlanThroughAnEatersTail(t *testing.T) {
	cfg := testConfig()
	cfg.Enemies = 1
	r := newTestRound(t, cfg, Competitive)
	h := r.Player.Head()
	tail := r.Player.Tail()

	// The enemy sits right behind the player's tail. With the cells above
	// and below it walled, the shortest route to the player's head runs
	// through that tail, which stays put because the player eats this tick.
	r.Food.Place(r.Grid.Step(h, types.Right))
	enemyHead := r.Grid.Step(tail, types.Left)
	r.Walls = entity.NewWalls(append(entity.BorderCells(r.Grid),
		r.Grid.Step(tail, types.Up),
		r.Grid.Step(enemyHead, types.Down))...)
	enemy := placeEnemy(r, enemyHead, types.Right)

	out := r.Step(nil)

	if r.Player.Len() != types.MinSnakeLength+1 || r.Player.Tail() != tail {
		t.Fatalf("player body %v, want it grown with the tail kept at %+v", r.Player.Body, tail)
	}
	if enemy.Dead || enemy.Head() == tail {
		t.Fatalf("enemy moved into the eater's tail: head %+v deaths %+v", enemy.Head(), out.Deaths)
	}
	if enemy.Direction != types.Up {
		t.Errorf("enemy went %v, want up around the wall", enemy.Direction)
	}
	mustHold(t, r)
}

func TestTwoSnakesReachingTheFoodTogether(t *testing.T) {
	cfg := testConfig()
	cfg.Enemies = 1
	r := newTestRound(t, cfg, Competitive)
	h := r.Player.Head()
	food := r.Grid.Step(h, types.Right)
	r.Food.Place(food)
	enemy := placeEnemy(r, r.Grid.Step(food, types.Right), types.Left)

	out := r.Step(nil)

	if !r.Player.Dead || !enemy.Dead || !r.Over {
		t.Fatalf("player dead %v enemy dead %v over %v, want both dead", r.Player.Dead, enemy.Dead, r.Over)
	}
	if len(out.Deaths) != 2 || out.FoodEaten() {
		t.Errorf("outcome = %+v, want two deaths and no meal", out)
	}
	if r.PlayerScore != 1 || r.EnemyScore != 1 {
		t.Errorf("scores player %d enemy %d, want one each", r.PlayerScore, r.EnemyScore)
	}
	if r.Food.Pos != food {
		t.Errorf("food moved to %+v although nobody ate it", r.Food.Pos)
	}
}

func TestGrowthGapPassesInvariants(t *testing.T) {
	r := newTestRound(t, testConfig(), Competitive)
	p := r.Player
	r.Food.Place(r.Grid.Step(p.Head(), types.Right))
	r.Step(nil)

	// The last body segment's old cell was dropped, so the body has a
	// one cell gap right before the doubled tail.
	if _, ok := r.Grid.DirectionTo(p.Body[2], p.Body[3]); ok {
		t.Fatalf("body %v has no gap after growth", p.Body)
	}
	mustHold(t, r)

	r.Food.Place(types.Point{X: 3, Y: 25})
	for i := 0; i < types.MinSnakeLength+1; i++ {
		r.Step(nil)
		mustHold(t, r)
	}
	for i := 1; i < p.Len(); i++ {
		if _, ok := r.Grid.DirectionTo(p.Body[i-1], p.Body[i]); !ok {
			t.Errorf("gap still in %v after the tail moved past it", p.Body)
			break
		}
	}
}

func TestCheckInvariantsReportsDetachedHead(t *testing.T) {
	r := newTestRound(t, testConfig(), Competitive)
	r.Player.Body[0] = r.Grid.Step(r.Grid.Step(r.Player.Body[0], types.Up), types.Up)
	if err := r.CheckInvariants(); err == nil {
		t.Error("head two cells from its neck not reported")
	}
}
