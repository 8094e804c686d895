package components

import (
	"math"

	"fpinteract/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FPSController walks the player on the ground plane and aims the view. It is
// the look provider for focus detection.
type FPSController struct {
	engine.BaseComponent
	Yaw       float32
	Pitch     float32
	MoveSpeed float32
	LookSpeed float32
	EyeHeight float32
	FOV       float32
}

func NewFPSController() *FPSController {
	return &FPSController{
		Yaw:       -90.0,
		MoveSpeed: 4.0,
		LookSpeed: 0.1,
		EyeHeight: 1.6,
		FOV:       60.0,
	}
}

func (f *FPSController) Update(deltaTime float32) {
	mouseDelta := rl.GetMouseDelta()
	f.Look(mouseDelta.X, mouseDelta.Y)

	var forward, strafe float32
	if rl.IsKeyDown(rl.KeyW) {
		forward++
	}
	if rl.IsKeyDown(rl.KeyS) {
		forward--
	}
	if rl.IsKeyDown(rl.KeyD) {
		strafe++
	}
	if rl.IsKeyDown(rl.KeyA) {
		strafe--
	}
	f.Move(forward, strafe, deltaTime)
}

// Look turns the view by a mouse delta. Pitch is clamped short of vertical.
func (f *FPSController) Look(dx, dy float32) {
	f.Yaw += dx * f.LookSpeed
	f.Pitch -= dy * f.LookSpeed

	if f.Pitch > 89 {
		f.Pitch = 89
	}
	if f.Pitch < -89 {
		f.Pitch = -89
	}
}

// Move walks along the view's horizontal heading. Diagonal input is not
// faster than straight input.
func (f *FPSController) Move(forward, strafe, deltaTime float32) {
	g := f.GetGameObject()
	if g == nil {
		return
	}
	fwd, right := f.directions()

	moveDir := rl.Vector3{
		X: fwd.X*forward + right.X*strafe,
		Z: fwd.Z*forward + right.Z*strafe,
	}
	moveLen := float32(math.Sqrt(float64(moveDir.X*moveDir.X + moveDir.Z*moveDir.Z)))
	if moveLen == 0 {
		return
	}
	step := f.MoveSpeed * deltaTime / moveLen
	g.Transform.Position.X += moveDir.X * step
	g.Transform.Position.Z += moveDir.Z * step
}

func (f *FPSController) directions() (forward, right rl.Vector3) {
	yawRad := float64(f.Yaw) * math.Pi / 180
	forward = rl.Vector3{
		X: float32(math.Cos(yawRad)),
		Z: float32(math.Sin(yawRad)),
	}
	right = rl.Vector3{
		X: float32(-math.Sin(yawRad)),
		Z: float32(math.Cos(yawRad)),
	}
	return
}

func (f *FPSController) EyePosition() rl.Vector3 {
	g := f.GetGameObject()
	if g == nil {
		return rl.Vector3{Y: f.EyeHeight}
	}
	eye := g.WorldPosition()
	eye.Y += f.EyeHeight
	return eye
}

func (f *FPSController) LookDirection() rl.Vector3 {
	yawRad := float64(f.Yaw) * math.Pi / 180
	pitchRad := float64(f.Pitch) * math.Pi / 180
	return rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
}

// Camera returns the raylib camera for the current view.
func (f *FPSController) Camera() rl.Camera3D {
	eye := f.EyePosition()
	return rl.Camera3D{
		Position:   eye,
		Target:     rl.Vector3Add(eye, f.LookDirection()),
		Up:         rl.Vector3{Y: 1},
		Fovy:       f.FOV,
		Projection: rl.CameraPerspective,
	}
}
