package camera

import (
	"math"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/rtshell/logging"
	"github.com/bloeys/rtshell/points"
	"github.com/veandco/go-sdl2/sdl"
)

// KeyState reports whether a key is currently held
type KeyState interface {
	KeyDown(sc sdl.Scancode) bool
}

// KeyBinding applies an action to the camera position every frame its key is held
type KeyBinding struct {
	Key    sdl.Scancode
	Action func(o *Orbit, dt float32)
}

// Orbit is a camera that moves its position around the origin.
// The shader is expected to always look at the origin from Pos.
type Orbit struct {
	Pos      gglm.Vec3
	StartPos gglm.Vec3

	// RotSpeedDeg is how many degrees per second the rotation keys turn
	RotSpeedDeg float32

	// LegacyRotateZ makes roll use the X axis rotation of older versions
	LegacyRotateZ bool

	Bindings []KeyBinding
}

func NewOrbit(startPos gglm.Vec3, rotSpeedDeg float32, legacyRotateZ bool) Orbit {
	return Orbit{
		Pos:           startPos,
		StartPos:      startPos,
		RotSpeedDeg:   rotSpeedDeg,
		LegacyRotateZ: legacyRotateZ,
		Bindings:      DefaultBindings(),
	}
}

// DefaultBindings returns:
//   - '=' and '-': Move up and down
//   - 'w' and 's': Move towards and away from the origin
//   - 'a' and 'd': Rotate around the Y axis
//   - 'q' and 'e': Rotate around the Z axis
//   - 'r': Reset to the start position
func DefaultBindings() []KeyBinding {
	return []KeyBinding{
		{Key: sdl.SCANCODE_EQUALS, Action: func(o *Orbit, dt float32) {
			offset := gglm.NewVec3(0, dt, 0)
			points.Translation(&o.Pos, &offset)
		}},
		{Key: sdl.SCANCODE_MINUS, Action: func(o *Orbit, dt float32) {
			offset := gglm.NewVec3(0, -dt, 0)
			points.Translation(&o.Pos, &offset)
		}},
		{Key: sdl.SCANCODE_W, Action: func(o *Orbit, dt float32) {
			points.Scale(&o.Pos, 1-dt)
		}},
		{Key: sdl.SCANCODE_S, Action: func(o *Orbit, dt float32) {
			points.Scale(&o.Pos, 1+dt)
		}},
		{Key: sdl.SCANCODE_A, Action: func(o *Orbit, dt float32) {
			points.RotateY(&o.Pos, o.RotSpeedDeg*dt)
		}},
		{Key: sdl.SCANCODE_D, Action: func(o *Orbit, dt float32) {
			points.RotateY(&o.Pos, -o.RotSpeedDeg*dt)
		}},
		{Key: sdl.SCANCODE_Q, Action: func(o *Orbit, dt float32) {
			o.roll(o.RotSpeedDeg * dt)
		}},
		{Key: sdl.SCANCODE_E, Action: func(o *Orbit, dt float32) {
			o.roll(-o.RotSpeedDeg * dt)
		}},
		{Key: sdl.SCANCODE_R, Action: func(o *Orbit, dt float32) {
			o.Reset()
		}},
	}
}

// Update applies every binding whose key is held in the order of Bindings.
//
// If the result is not finite (e.g. a huge dt) the update is dropped and Pos keeps its old value.
func (o *Orbit) Update(keys KeyState, dt float32) {

	oldPos := o.Pos
	for i := 0; i < len(o.Bindings); i++ {

		b := &o.Bindings[i]
		if keys.KeyDown(b.Key) {
			b.Action(o, dt)
		}
	}

	if !isFinite(&o.Pos) {
		logging.WarnLog.Printf("Camera update with dt=%f produced non-finite position %v. Keeping %v\n", dt, o.Pos.Data, oldPos.Data)
		o.Pos = oldPos
	}
}

func (o *Orbit) Reset() {
	o.Pos = o.StartPos
}

func (o *Orbit) roll(angleDeg float32) {

	if o.LegacyRotateZ {
		points.RotateZLegacy(&o.Pos, angleDeg)
		return
	}

	points.RotateZ(&o.Pos, angleDeg)
}

func isFinite(v *gglm.Vec3) bool {

	for i := 0; i < len(v.Data); i++ {

		f := float64(v.Data[i])
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}

	return true
}
