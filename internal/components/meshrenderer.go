package components

import (
	"fpinteract/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
)

type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Color    rl.Color
	Size     rl.Vector3
	// Pivot is where the mesh is drawn relative to the object, before the
	// object's yaw is applied. A door uses it to swing about its hinge.
	Pivot rl.Vector3
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active || g.Destroyed() || !m.Enabled() {
		return
	}

	pos := g.WorldPosition()

	rl.PushMatrix()
	rl.Translatef(pos.X, pos.Y, pos.Z)
	rl.Rotatef(g.Transform.Rotation.Y, 0, 1, 0)
	switch m.MeshType {
	case MeshCube:
		rl.DrawCubeV(m.Pivot, m.Size, m.Color)
		rl.DrawCubeWiresV(m.Pivot, m.Size, rl.Fade(rl.Black, 0.3))
	case MeshSphere:
		rl.DrawSphere(m.Pivot, m.Size.X, m.Color)
	case MeshPlane:
		rl.DrawPlane(m.Pivot, rl.Vector2{X: m.Size.X, Y: m.Size.Z}, m.Color)
	}
	rl.PopMatrix()
}
