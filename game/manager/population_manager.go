package manager

import (
	"snake-arena/ai"
	"snake-arena/game/entity"
	"snake-arena/game/types"
)

const (
	spawnAttempts  = 1000
	spawnClearance = 5 // Preferred wrapped distance from every live head
)

// Enemy pairs an AI snake with its controller and respawn countdown
type Enemy struct {
	Snake      *entity.Snake
	Controller *ai.Controller
	Countdown  int // Ticks left before respawn, meaningful while dead

	fresh bool // Died this tick; the countdown starts next tick
}

type PopulationManager struct {
	grid         types.Grid
	rng          types.Rand
	collisionMgr *CollisionManager
	respawnDelay int
	aiOpts       ai.Options
	enemies      []*Enemy
}

func NewPopulationManager(grid types.Grid, rng types.Rand, collisionMgr *CollisionManager, respawnDelay int, aiOpts ai.Options) *PopulationManager {
	return &PopulationManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
		respawnDelay: respawnDelay,
		aiOpts:       aiOpts,
	}
}

// InitializePopulation spawns n enemies with IDs starting at firstID.
// Enemies that find no room start dead and retry on later ticks.
func (pm *PopulationManager) InitializePopulation(n, firstID int, walls *entity.Walls, others []*entity.Snake, food *entity.Food) {
	pm.enemies = pm.enemies[:0]
	for i := 0; i < n; i++ {
		id := firstID + i
		e := &Enemy{Controller: ai.NewController(pm.aiOpts, pm.rng)}
		s, ok := pm.SpawnSnake(id, walls, pm.withEnemies(others), food)
		if !ok {
			s = &entity.Snake{ID: id, Owner: entity.Enemy, Dead: true}
		}
		e.Snake = s
		pm.enemies = append(pm.enemies, e)
	}
}

// Enemies returns every enemy, dead or alive
func (pm *PopulationManager) Enemies() []*Enemy {
	return pm.enemies
}

// Snakes returns the live enemy snakes
func (pm *PopulationManager) Snakes() []*entity.Snake {
	live := make([]*entity.Snake, 0, len(pm.enemies))
	for _, e := range pm.enemies {
		if !e.Snake.Dead {
			live = append(live, e.Snake)
		}
	}
	return live
}

// Kill starts the respawn countdown of the enemy owning s. The controller
// keeps its last decision until the snake respawns.
func (pm *PopulationManager) Kill(s *entity.Snake) {
	for _, e := range pm.enemies {
		if e.Snake == s {
			s.Dead = true
			e.Countdown = pm.respawnDelay
			e.fresh = true
			return
		}
	}
}

// Update counts down every dead enemy and respawns those whose countdown
// reached zero. An enemy killed this tick starts counting on the next one,
// so it reappears exactly respawnDelay ticks after its death. Returns the
// snakes that respawned.
func (pm *PopulationManager) Update(walls *entity.Walls, others []*entity.Snake, food *entity.Food) []*entity.Snake {
	var respawned []*entity.Snake
	for _, e := range pm.enemies {
		if !e.Snake.Dead {
			continue
		}
		if e.fresh {
			e.fresh = false
			continue
		}
		if e.Countdown > 0 {
			e.Countdown--
		}
		if e.Countdown > 0 {
			continue
		}
		s, ok := pm.SpawnSnake(e.Snake.ID, walls, pm.withEnemies(others), food)
		if !ok {
			continue
		}
		e.Snake = s
		e.Controller.Reset()
		respawned = append(respawned, s)
	}
	return respawned
}

// SpawnSnake places a minimum length enemy with a random head and heading.
// Every segment and the cell ahead of the head must be free of walls,
// snakes and food. For the first half of the attempts the head must also
// keep spawnClearance from every live head.
func (pm *PopulationManager) SpawnSnake(id int, walls *entity.Walls, snakes []*entity.Snake, food *entity.Food) (*entity.Snake, bool) {
	free := func(p types.Point) bool {
		if food != nil && food.Placed && p == food.Pos {
			return false
		}
		return pm.collisionMgr.ValidateSpawnPosition(p, walls, snakes)
	}

	for i := 0; i < spawnAttempts; i++ {
		head := types.Point{
			X: pm.rng.Intn(pm.grid.Width),
			Y: pm.rng.Intn(pm.grid.Height),
		}
		dir := types.Directions[pm.rng.Intn(len(types.Directions))]
		body := entity.Layout(pm.grid, head, dir)

		ok := free(pm.grid.Step(head, dir))
		if ok && i < spawnAttempts/2 {
			ok = pm.clearOfHeads(head, snakes)
		}
		for _, p := range body {
			if !ok {
				break
			}
			ok = free(p)
		}
		if ok {
			return entity.NewSnake(id, entity.Enemy, pm.grid, head, dir), true
		}
	}
	return nil, false
}

func (pm *PopulationManager) clearOfHeads(p types.Point, snakes []*entity.Snake) bool {
	for _, s := range snakes {
		if s == nil || s.Dead {
			continue
		}
		if pm.grid.Distance(p, s.Head()) < spawnClearance {
			return false
		}
	}
	return true
}

func (pm *PopulationManager) withEnemies(others []*entity.Snake) []*entity.Snake {
	all := make([]*entity.Snake, 0, len(others)+len(pm.enemies))
	all = append(all, others...)
	return append(all, pm.Snakes()...)
}
