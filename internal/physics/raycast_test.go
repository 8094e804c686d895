package physics

import (
	"testing"

	"fpinteract/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pixil98/go-testutil"
)

type testBox struct {
	engine.BaseComponent
	center rl.Vector3
	size   rl.Vector3
}

func (b *testBox) Bounds() AABB {
	return NewAABBFromCenter(b.center, b.size)
}

func boxObject(name string, center rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.AddComponent(&testBox{center: center, size: rl.Vector3{X: 1, Y: 1, Z: 1}})
	return g
}

func TestRaycastHitsNearestBox(t *testing.T) {
	near := boxObject("near", rl.Vector3{Z: 3})
	far := boxObject("far", rl.Vector3{Z: 6})

	hit, ok := Raycast([]*engine.GameObject{far, near}, rl.Vector3{}, rl.Vector3{Z: 1}, 10)

	testutil.AssertEqual(t, "hit", ok, true)
	testutil.AssertEqual(t, "object", hit.GameObject, near)
	testutil.AssertEqual(t, "distance", hit.Distance, float32(2.5))
	testutil.AssertEqual(t, "normal", hit.Normal, rl.Vector3{Z: -1})
}

func TestRaycastRespectsMaxDistance(t *testing.T) {
	box := boxObject("box", rl.Vector3{Z: 3})

	_, ok := Raycast([]*engine.GameObject{box}, rl.Vector3{}, rl.Vector3{Z: 1}, 2)
	testutil.AssertEqual(t, "hit", ok, false)
}

func TestRaycastNormalizesDirection(t *testing.T) {
	box := boxObject("box", rl.Vector3{X: 3})

	hit, ok := Raycast([]*engine.GameObject{box}, rl.Vector3{}, rl.Vector3{X: 5}, 10)
	testutil.AssertEqual(t, "hit", ok, true)
	testutil.AssertEqual(t, "distance", hit.Distance, float32(2.5))
	testutil.AssertEqual(t, "point", hit.Point, rl.Vector3{X: 2.5})
}

func TestRaycastSkips(t *testing.T) {
	inactive := boxObject("inactive", rl.Vector3{Z: 2})
	inactive.Active = false

	disabled := boxObject("disabled", rl.Vector3{Z: 3})
	engine.GetComponent[*testBox](disabled).SetEnabled(false)

	bare := engine.NewGameObject("bare")

	behind := boxObject("behind", rl.Vector3{Z: -3})
	beside := boxObject("beside", rl.Vector3{X: 3, Z: 3})

	objects := []*engine.GameObject{inactive, disabled, bare, behind, beside, nil}
	_, ok := Raycast(objects, rl.Vector3{}, rl.Vector3{Z: 1}, 10)
	testutil.AssertEqual(t, "hit", ok, false)
}

func TestRaycastZeroDirection(t *testing.T) {
	box := boxObject("box", rl.Vector3{})

	_, ok := Raycast([]*engine.GameObject{box}, rl.Vector3{}, rl.Vector3{}, 10)
	testutil.AssertEqual(t, "hit", ok, false)
}

func TestIntersectRayFromInside(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})

	d, ok := box.IntersectRay(rl.Vector3{}, rl.Vector3{Y: 1}, 10)
	testutil.AssertEqual(t, "hit", ok, true)
	testutil.AssertEqual(t, "distance", d, float32(1))
}

func TestAABB(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{X: 1}, rl.Vector3{X: -2, Y: 4, Z: 2})

	testutil.AssertEqual(t, "min", box.Min, rl.Vector3{X: 0, Y: -2, Z: -1})
	testutil.AssertEqual(t, "max", box.Max, rl.Vector3{X: 2, Y: 2, Z: 1})
	testutil.AssertEqual(t, "center", box.Center(), rl.Vector3{X: 1})
	testutil.AssertEqual(t, "size", box.Size(), rl.Vector3{X: 2, Y: 4, Z: 2})
	testutil.AssertEqual(t, "contains", box.Contains(rl.Vector3{X: 1.5}), true)
	testutil.AssertEqual(t, "outside", box.Contains(rl.Vector3{X: 3}), false)
}
