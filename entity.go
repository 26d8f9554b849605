package ranged

// entityIDCounter is a plain counter (no atomic: the controller and its scene
// are driven from a single goroutine).
var entityIDCounter uint32

func nextEntityID() uint32 {
	entityIDCounter++
	return entityIDCounter
}

// Entity is the fundamental scene element. A single flat struct is used for
// shapes, surfaces, UI elements and the controller's transient visuals.
type Entity struct {
	// Identity
	ID    uint32
	Name  string
	Kind  EntityKind
	Tag   Tag
	Layer Layer

	// Index is the selection index reported to the SelectionSink.
	// Negative means the entity is not indexed.
	Index int

	// Hierarchy
	Parent   *Entity
	children []*Entity

	// Transform (local)
	Position Vec3
	Rotation Quat
	Scale    Vec3

	// Collider, in local units.
	HalfExtents Vec3
	Radius      float64

	// Drawing
	Visible bool
	Color   Color
	Width   float64 // line width for KindLine

	// Points is the world-space polyline of a KindLine entity.
	Points []Vec3

	// Boundary holds the triangulated outline of a KindMesh entity in the
	// parent's local plane.
	Boundary BoundaryMesh

	// Selected mirrors the latest selection state reported for this entity.
	Selected bool

	// Metadata
	UserData any

	// Internal
	disposed bool
}

// entityDefaults sets the common default field values shared by all constructors.
func entityDefaults(e *Entity) {
	e.ID = nextEntityID()
	e.Index = -1
	e.Rotation = QuatIdent()
	e.Scale = Vec3{1, 1, 1}
	e.Color = ColorWhite
	e.Visible = true
}

// NewEntity creates an empty entity with no collider.
func NewEntity(name string) *Entity {
	e := &Entity{Name: name, Kind: KindEmpty}
	entityDefaults(e)
	return e
}

// NewBox creates an entity with an oriented box collider.
func NewBox(name string, halfExtents Vec3) *Entity {
	e := &Entity{Name: name, Kind: KindBox, HalfExtents: halfExtents}
	entityDefaults(e)
	return e
}

// NewSphere creates an entity with a sphere collider.
func NewSphere(name string, radius float64) *Entity {
	e := &Entity{Name: name, Kind: KindSphere, Radius: radius}
	entityDefaults(e)
	return e
}

// NewLine creates a world-space polyline entity.
func NewLine(name string, width float64) *Entity {
	e := &Entity{Name: name, Kind: KindLine, Width: width}
	entityDefaults(e)
	return e
}

// NewBoundary creates an entity that displays a boundary mesh in its
// parent's local plane.
func NewBoundary(name string) *Entity {
	e := &Entity{Name: name, Kind: KindMesh}
	entityDefaults(e)
	return e
}

// HasCollider reports whether the entity takes part in raycasts and overlap
// queries.
func (e *Entity) HasCollider() bool {
	return e.Kind == KindBox || e.Kind == KindSphere
}

// --- Tree manipulation ---

// AddChild appends child to this entity's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this entity (cycle).
func (e *Entity) AddChild(child *Entity) {
	if child == nil {
		panic("ranged: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(e, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, e) {
		panic("ranged: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = e
	e.children = append(e.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(e)
	}
}

// RemoveChild detaches child from this entity.
// Panics if child.Parent != e.
func (e *Entity) RemoveChild(child *Entity) {
	if globalDebug {
		debugCheckDisposed(e, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != e {
		panic("ranged: child's parent is not this entity")
	}
	e.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this entity from its parent.
// No-op if this entity has no parent.
func (e *Entity) RemoveFromParent() {
	if e.Parent == nil {
		return
	}
	e.Parent.RemoveChild(e)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (e *Entity) Children() []*Entity {
	return e.children
}

// NumChildren returns the number of children.
func (e *Entity) NumChildren() int {
	return len(e.children)
}

// --- Disposal ---

// Dispose removes this entity from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (e *Entity) Dispose() {
	if e.disposed {
		return
	}
	e.RemoveFromParent()
	e.dispose()
}

func (e *Entity) dispose() {
	e.disposed = true
	e.ID = 0
	for _, child := range e.children {
		child.Parent = nil
		child.dispose()
	}
	e.children = nil
	e.Parent = nil
	e.Points = nil
	e.Boundary = BoundaryMesh{}
	e.UserData = nil
}

// IsDisposed returns true if this entity has been disposed.
func (e *Entity) IsDisposed() bool {
	return e.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of entity.
func isAncestor(candidate, entity *Entity) bool {
	for p := entity; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from e.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (e *Entity) removeChildByPtr(child *Entity) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			return
		}
	}
}
