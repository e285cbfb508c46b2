package components

import (
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Inconstancy float64 // per-actor jitter on the perceived target distance
	Aggro       bool
	Target      *donburi.Entry
}

var Enemy = donburi.NewComponentType[EnemyData]()
