package factory

import (
	"github.com/automoto/prism-runner/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Arena is the static geometry of the sparring ground.
type Arena struct {
	Width, Height float64
	FloorY        float64 // top edge of the floor
	PlayerSpawnX  float64
	EnemySpawnX   []float64
}

// CreateArena builds a walled floor with one platform and a climbable
// column from config.Sim, with spawn points for enemies enemies.
func CreateArena(w donburi.World, space *resolv.Space, enemies int) Arena {
	width := float64(config.Sim.ArenaWidth)
	height := float64(config.Sim.ArenaHeight)
	ground := float64(config.Sim.GroundHeight)
	floorY := height - ground
	wall := 32.0

	CreateGround(w, space, 0, floorY, width, ground)
	CreateGround(w, space, 0, 0, wall, floorY)
	CreateGround(w, space, width-wall, 0, wall, floorY)

	CreatePlatform(w, space, width*0.25, floorY-220, 320, 16)
	CreateClimbable(w, space, width*0.1, floorY-480, 64, 480)

	arena := Arena{
		Width:        width,
		Height:       height,
		FloorY:       floorY,
		PlayerSpawnX: width * 0.15,
	}
	for i := 0; i < enemies; i++ {
		x := width*0.45 + float64(i)*400
		if x > width-wall-config.Enemy.CollisionWidth {
			x = width - wall - config.Enemy.CollisionWidth
		}
		arena.EnemySpawnX = append(arena.EnemySpawnX, x)
	}
	return arena
}
