package scripts

import (
	"Haunt3D/internal/behaviour"

	"github.com/go-gl/mathgl/mgl32"
)

// RotateScript spins its object around the world Y axis
type RotateScript struct {
	behaviour.BaseComponent
	Speed float32 // degrees per second
}

func init() {
	behaviour.RegisterScript("RotateScript", func(props behaviour.Properties) behaviour.Component {
		return &RotateScript{Speed: props.Float32("speed", 45.0)}
	})
}

func (r *RotateScript) Update(deltaTime float32) {
	transform := r.GetGameObject().Transform
	transform.Rotate(mgl32.Vec3{0, 1, 0}, mgl32.DegToRad(r.Speed*deltaTime))
}
