package components

import (
	"testing"

	"fpinteract/internal/engine"

	"github.com/pixil98/go-testutil"
)

func TestRotatorAdvancesBySpeed(t *testing.T) {
	c, err := engine.CreateScript(nil, "Rotator", engine.Props{"speed": 60.0})
	testutil.AssertEqual(t, "error", err, nil)

	g := engine.NewGameObject("Key")
	g.AddComponent(c)
	g.Start()
	g.Update(0.5)

	testutil.AssertEqual(t, "rotation", g.Transform.Rotation.Y, float32(30))
}

func TestRotatorWrapsPastFullTurn(t *testing.T) {
	g := engine.NewGameObject("Key")
	g.Transform.Rotation.Y = 350
	g.AddComponent(&Rotator{Speed: 90})

	g.Update(0.25)

	testutil.AssertEqual(t, "rotation", g.Transform.Rotation.Y, float32(12.5))
}
