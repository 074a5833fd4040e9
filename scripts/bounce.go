package scripts

import (
	"math"

	"Haunt3D/internal/behaviour"
)

// BounceScript bobs its object up and down around its starting height
type BounceScript struct {
	behaviour.BaseComponent
	Height float32
	Speed  float32
	startY float32
	time   float32
}

func init() {
	behaviour.RegisterScript("BounceScript", func(props behaviour.Properties) behaviour.Component {
		return &BounceScript{
			Height: props.Float32("height", 5.0),
			Speed:  props.Float32("speed", 2.0),
		}
	})
}

func (b *BounceScript) Start() {
	b.startY = b.GetGameObject().Transform.Position.Y()
}

func (b *BounceScript) Update(deltaTime float32) {
	b.time += deltaTime * b.Speed
	offset := float32(math.Sin(float64(b.time))) * b.Height
	b.GetGameObject().Transform.Position[1] = b.startY + offset
}
