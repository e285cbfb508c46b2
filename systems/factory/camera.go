package factory

import (
	"github.com/automoto/prism-runner/archetypes"
	"github.com/automoto/prism-runner/components"
	"github.com/yohamta/donburi"
)

func CreateCamera(w donburi.World, target *donburi.Entry) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.Set(camera, &components.CameraData{Target: target})
	components.ScreenShake.Set(camera, &components.ScreenShakeData{})
	return camera
}
