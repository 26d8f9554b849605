package ranged

import "go.uber.org/zap"

// Scene is the top-level object that owns the entity tree. It serves as the
// controller's World (raycasts and overlap queries) and Stage (spawning of
// transient visuals).
type Scene struct {
	root  *Entity
	debug bool
	log   *zap.Logger

	hitBuf []*Entity
}

// NewScene creates a new scene with a pre-created root entity.
func NewScene() *Scene {
	return &Scene{
		root: NewEntity("root"),
		log:  zap.NewNop(),
	}
}

// Root returns the scene's root entity.
func (s *Scene) Root() *Entity {
	return s.root
}

// Add appends e to the root.
func (s *Scene) Add(e *Entity) {
	s.root.AddChild(e)
}

// Spawn attaches e under parent, or under the root when parent is nil.
func (s *Scene) Spawn(parent, e *Entity) {
	if parent == nil {
		parent = s.root
	}
	parent.AddChild(e)
	s.log.Debug("entity spawned",
		zap.String("name", e.Name),
		zap.String("parent", parent.Name))
}

// Despawn removes e and its descendants from the scene and disposes them.
func (s *Scene) Despawn(e *Entity) {
	if e == nil || e.IsDisposed() {
		return
	}
	s.log.Debug("entity despawned", zap.String("name", e.Name))
	e.Dispose()
}

// Walk visits every entity under the root in depth-first order. Returning
// false from fn skips the entity's children.
func (s *Scene) Walk(fn func(e *Entity) bool) {
	walk(s.root, fn)
}

func walk(e *Entity, fn func(*Entity) bool) {
	if !fn(e) {
		return
	}
	for _, child := range e.children {
		walk(child, fn)
	}
}

// Find returns the first entity with the given name, or nil.
func (s *Scene) Find(name string) *Entity {
	var found *Entity
	s.Walk(func(e *Entity) bool {
		if found != nil {
			return false
		}
		if e.Name == name {
			found = e
			return false
		}
		return true
	})
	return found
}

// Entities returns every entity carrying tag, in tree order.
func (s *Scene) Entities(tag Tag) []*Entity {
	var out []*Entity
	s.Walk(func(e *Entity) bool {
		if e.Tag == tag {
			out = append(out, e)
		}
		return true
	})
	return out
}

// SetLogger sets the logger used for spawn bookkeeping and debug warnings.
// A nil logger disables logging.
func (s *Scene) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	s.log = log
	debugLog = log
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-entity
// access panics and tree depth and child count warnings are logged.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that entity
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool
