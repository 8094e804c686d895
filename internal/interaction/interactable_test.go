package interaction

import (
	"errors"
	"slices"
	"testing"

	"fpinteract/internal/engine"
	"fpinteract/internal/items"

	"github.com/pixil98/go-testutil"
)

func newPickupScene(item *items.Item) (*engine.Scene, *engine.GameObject, *Interactable, *recordingCollector, *fakeWorld) {
	scene := engine.NewScene("Test")
	world := &fakeWorld{scene: scene}
	scene.World = world

	obj := engine.NewGameObject("KeyPickup")
	inv := &recordingCollector{}
	i := NewInteractable("[F] Pick up", Pickup())
	i.Item = item
	i.Inventory = inv
	obj.AddComponent(i)
	scene.AddGameObject(obj)
	return scene, obj, i, inv, world
}

func TestPickupAddsItemAndDestroys(t *testing.T) {
	key := items.New("Key", "", "")
	scene, obj, i, inv, world := newPickupScene(key)

	if err := i.Interact(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "added", len(inv.added), 1)
	testutil.AssertEqual(t, "added item", inv.added[0], key)
	testutil.AssertEqual(t, "destroy requests", len(world.destroyed), 1)
	testutil.AssertEqual(t, "available", i.Available(), false)

	scene.Flush()
	if slices.Contains(scene.GameObjects, obj) {
		t.Error("picked up object should be removed from the scene")
	}

	// a spent pickup cannot be used again
	if err := i.Interact(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "added after reuse", len(inv.added), 1)
}

func TestPickupWithoutItemLeavesObject(t *testing.T) {
	_, _, i, inv, world := newPickupScene(nil)

	err := i.PickupAndDestroy()

	if !errors.Is(err, engine.ErrMissingItemData) {
		t.Fatalf("expected ErrMissingItemData, got %v", err)
	}
	testutil.AssertEqual(t, "added", len(inv.added), 0)
	testutil.AssertEqual(t, "destroy requests", len(world.destroyed), 0)
	testutil.AssertEqual(t, "available", i.Available(), true)
}

func TestPickupWithoutInventory(t *testing.T) {
	_, _, i, _, world := newPickupScene(items.New("Key", "", ""))
	i.Inventory = nil

	err := i.PickupAndDestroy()

	if !errors.Is(err, engine.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
	testutil.AssertEqual(t, "destroy requests", len(world.destroyed), 0)
}

func TestInteractRunsActionsInOrder(t *testing.T) {
	var order []string
	failure := errors.New("boom")
	i := NewInteractable("[F] Use",
		Custom(func() error { order = append(order, "first"); return failure }),
		Custom(func() error { order = append(order, "second"); return nil }),
	)
	fired := 0
	i.OnInteract.AddListener(func() { fired++ })

	err := i.Interact()

	if !errors.Is(err, failure) {
		t.Errorf("expected joined error to contain the action failure, got %v", err)
	}
	testutil.AssertEqual(t, "actions run", len(order), 2)
	testutil.AssertEqual(t, "first", order[0], "first")
	testutil.AssertEqual(t, "OnInteract", fired, 1)
}

func TestToggleGateUsesSameObjectGate(t *testing.T) {
	obj := engine.NewGameObject("Door")
	gate := &fakeGate{}
	obj.AddComponent(gate)
	i := NewInteractable("[F] Open", ToggleGate(nil))
	obj.AddComponent(i)

	if err := i.Interact(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "toggles", gate.toggles, 1)

	// doors stay usable
	if err := i.Interact(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "toggles", gate.toggles, 2)
}

func TestToggleGateWithoutGate(t *testing.T) {
	obj := engine.NewGameObject("Wall")
	i := NewInteractable("[F] Open", ToggleGate(nil))
	obj.AddComponent(i)

	err := i.Interact()

	if !errors.Is(err, engine.ErrDependencyUnavailable) {
		t.Errorf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestDestroySelfWithoutScene(t *testing.T) {
	obj := engine.NewGameObject("Crate")
	i := NewInteractable("[F] Smash", DestroySelf())
	obj.AddComponent(i)

	if err := i.Interact(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "active", obj.Active, false)
}

func TestInteractableScriptRoundTrip(t *testing.T) {
	catalog := items.NewCatalog()
	key, err := catalog.Define(items.Spec{Name: "Key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inv := &recordingCollector{}
	env := engine.NewScriptEnv(catalog, inv)

	c, err := engine.CreateScript(env, "Interactable", engine.Props{
		"prompt":  "[F] Take key",
		"item":    "Key",
		"actions": []any{"pickup"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	i := c.(*Interactable)
	testutil.AssertEqual(t, "prompt", i.Prompt, "[F] Take key")
	testutil.AssertEqual(t, "item", i.Item, key)
	testutil.AssertEqual(t, "actions", len(i.Actions), 1)

	name, props, ok := engine.SerializeScript(i)
	testutil.AssertEqual(t, "serialized", ok, true)
	testutil.AssertEqual(t, "name", name, "Interactable")
	testutil.AssertEqual(t, "item prop", props["item"], any("Key"))
}

func TestInteractableScriptErrors(t *testing.T) {
	env := engine.NewScriptEnv(items.NewCatalog())

	_, err := engine.CreateScript(env, "Interactable", engine.Props{
		"item":    "Ghost",
		"actions": []any{"fly", "custom"},
	})

	testutil.AssertErrorContains(t, err, `item "Ghost" is not in the catalog`)
	testutil.AssertErrorContains(t, err, `action "fly"`)
	testutil.AssertErrorContains(t, err, `action "custom"`)
}
