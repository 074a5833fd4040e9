package behaviour

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform holds an object's local placement relative to its parent
type Transform struct {
	BaseComponent
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
	Parent   *Transform
	Children []*Transform
}

// Transform methods
func (t *Transform) Translate(delta mgl32.Vec3) {
	t.Position = t.Position.Add(delta)
}

func (t *Transform) Rotate(axis mgl32.Vec3, angle float32) {
	rotation := mgl32.QuatRotate(angle, axis)
	t.Rotation = t.Rotation.Mul(rotation)
}

func (t *Transform) SetPosition(pos mgl32.Vec3) {
	t.Position = pos
}

func (t *Transform) SetRotation(rot mgl32.Quat) {
	t.Rotation = rot
}

func (t *Transform) SetScale(scale mgl32.Vec3) {
	t.Scale = scale
}

// SetEulerDegrees sets the local rotation from pitch/yaw/roll in degrees
func (t *Transform) SetEulerDegrees(x, y, z float32) {
	t.Rotation = mgl32.AnglesToQuat(mgl32.DegToRad(y), mgl32.DegToRad(x), mgl32.DegToRad(z), mgl32.YXZ)
}

// SetParent moves t under parent, detaching it from any previous parent.
// A nil parent makes t a root.
func (t *Transform) SetParent(parent *Transform) {
	if t.Parent == parent {
		return
	}
	if t.Parent != nil {
		siblings := t.Parent.Children
		for i, c := range siblings {
			if c == t {
				t.Parent.Children = append(siblings[:i], siblings[i+1:]...)
				break
			}
		}
	}
	t.Parent = parent
	if parent != nil {
		parent.Children = append(parent.Children, t)
	}
}

// IsChildOf reports whether t is other or sits anywhere below it
func (t *Transform) IsChildOf(other *Transform) bool {
	if other == nil {
		return false
	}
	for cur := t; cur != nil; cur = cur.Parent {
		if cur == other {
			return true
		}
	}
	return false
}

// WorldRotation composes the rotations of every ancestor
func (t *Transform) WorldRotation() mgl32.Quat {
	if t.Parent == nil {
		return t.Rotation
	}
	return t.Parent.WorldRotation().Mul(t.Rotation)
}

// WorldPosition resolves the local position through every ancestor
func (t *Transform) WorldPosition() mgl32.Vec3 {
	if t.Parent == nil {
		return t.Position
	}
	return t.Parent.TransformPoint(t.Position)
}

// WorldScale multiplies the scale of every ancestor. Rotation is ignored.
func (t *Transform) WorldScale() mgl32.Vec3 {
	if t.Parent == nil {
		return t.Scale
	}
	ps := t.Parent.WorldScale()
	return mgl32.Vec3{t.Scale[0] * ps[0], t.Scale[1] * ps[1], t.Scale[2] * ps[2]}
}

// TransformPoint maps a point in t's local space to world space
func (t *Transform) TransformPoint(local mgl32.Vec3) mgl32.Vec3 {
	s := t.WorldScale()
	scaled := mgl32.Vec3{local[0] * s[0], local[1] * s[1], local[2] * s[2]}
	return t.WorldPosition().Add(t.WorldRotation().Rotate(scaled))
}

func (t *Transform) Forward() mgl32.Vec3 {
	return t.WorldRotation().Rotate(mgl32.Vec3{0, 0, -1})
}

func (t *Transform) Up() mgl32.Vec3 {
	return t.WorldRotation().Rotate(mgl32.Vec3{0, 1, 0})
}

func (t *Transform) Right() mgl32.Vec3 {
	return t.WorldRotation().Rotate(mgl32.Vec3{1, 0, 0})
}
