package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject
	World       WorldAccess
	pending     []*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
}

// RemoveGameObject removes g and all of its descendants from the scene.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for _, child := range g.Children {
		s.RemoveGameObject(child)
	}
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			break
		}
	}
	g.Scene = nil
}

// Destroy queues g for removal at the end of the tick. The object stops
// updating immediately; Flush performs the removal.
func (s *Scene) Destroy(g *GameObject) {
	if g == nil || g.destroyed {
		return
	}
	g.destroyed = true
	for _, child := range g.Children {
		s.Destroy(child)
	}
	s.pending = append(s.pending, g)
}

// Flush removes every object queued by Destroy.
func (s *Scene) Flush() {
	if len(s.pending) == 0 {
		return
	}
	pending := s.pending
	s.pending = nil
	for _, g := range pending {
		if g.Parent != nil && !g.Parent.destroyed {
			g.Parent.RemoveChild(g)
		}
		if g.Scene == s {
			s.RemoveGameObject(g)
		}
	}
}

// FindByName returns the first object named name.
func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}
