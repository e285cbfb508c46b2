package tags

import "github.com/yohamta/donburi"

var (
	Player    = donburi.NewTag().SetName("Player")
	Enemy     = donburi.NewTag().SetName("Enemy")
	Hitbox    = donburi.NewTag().SetName("Hitbox")
	Effect    = donburi.NewTag().SetName("Effect")
	Ground    = donburi.NewTag().SetName("Ground")
	Climbable = donburi.NewTag().SetName("Climbable")
)

// Resolv tags for physics collision
const (
	ResolvSolid     = "solid"
	ResolvPlatform  = "platform" // one-way, lands from above only
	ResolvPlayer    = "Player"
	ResolvEnemy     = "Enemy"
	ResolvClimbable = "climbable"
	ResolvHitbox    = "hitbox"
)
