package ranged

import "go.uber.org/zap"

// Raycaster answers the controller's per-tick pointer query.
type Raycaster interface {
	Raycast(ray Ray, maxLength float64, ignore LayerMask) (Hit, bool)
}

// World is the environment the controller selects from. Scene implements it.
type World interface {
	Raycaster
	// Eligible returns the entities lasso selection tests for containment.
	Eligible() []*Entity
	OverlapSphere(center Vec3, radius float64, tag Tag) []*Entity
	OverlapBox(box OrientedBox, tag Tag) []*Entity
	SweepSphere(from, to Vec3, radius float64, tag Tag) []*Entity
}

// Stage hosts the controller's transient visuals. Scene implements it.
type Stage interface {
	// Spawn attaches e under parent, or at the top level when parent is nil.
	Spawn(parent, e *Entity)
	// Despawn removes e for good.
	Despawn(e *Entity)
}

// Haptics drives the held device's vibration motor.
type Haptics interface {
	Pulse(p HapticPulse)
}

// SelectionSink receives resolved selection batches as sorted, unique
// indices. Empty batches are never delivered.
type SelectionSink interface {
	EntitiesSelected(indices []int)
	EntitiesDeselected(indices []int)
}

// Pose is the held device's state for one tick.
type Pose struct {
	// Position is the device body position, used by the pull gesture.
	Position Vec3
	// Origin and Forward define the pointer ray.
	Origin  Vec3
	Forward Vec3
}

// Device supplies the current pose of the held device.
type Device interface {
	Pose() Pose
}

// Rig is a Device whose pose is set directly. Hosts update it from their
// input each frame; scripts and tests steer it explicitly.
type Rig struct {
	pose Pose
}

// NewRig creates a rig at position, pointing along forward.
func NewRig(position, forward Vec3) *Rig {
	return &Rig{pose: Pose{Position: position, Origin: position, Forward: forward}}
}

// Pose implements Device.
func (r *Rig) Pose() Pose {
	return r.pose
}

// AimAt points the ray from its origin toward target.
func (r *Rig) AimAt(target Vec3) {
	r.pose.Forward = target.Sub(r.pose.Origin)
}

// MoveTo moves the device body and the ray origin together, keeping the
// aim direction.
func (r *Rig) MoveTo(p Vec3) {
	r.pose.Position = p
	r.pose.Origin = p
}

// SetPose replaces the whole pose.
func (r *Rig) SetPose(p Pose) {
	r.pose = p
}

// PointerValid is the default validity predicate for the pointer tint: a hit
// is valid unless it is empty or lands on the bare selection surface.
func PointerValid(hit Hit, ok bool) bool {
	return ok && hit.Entity != nil && hit.Entity.Tag != TagSurface
}

// Options configures a Controller. Nil collaborators are replaced by inert
// defaults.
type Options struct {
	Config  Config
	World   World
	Stage   Stage
	Haptics Haptics
	Sink    SelectionSink
	Device  Device
	// Surface is the designated selection surface. Entities tagged
	// TagSurface are accepted as well.
	Surface *Entity
	// Validity colors the brush; defaults to PointerValid.
	Validity func(hit Hit, ok bool) bool
	Logger   *zap.Logger
}

type nopHaptics struct{}

func (nopHaptics) Pulse(HapticPulse) {}

type nopSink struct{}

func (nopSink) EntitiesSelected([]int)   {}
func (nopSink) EntitiesDeselected([]int) {}

type nopStage struct{}

func (nopStage) Spawn(parent, e *Entity) {
	if parent != nil {
		parent.AddChild(e)
	}
}

func (nopStage) Despawn(e *Entity) { e.Dispose() }

type fixedDevice struct{}

func (fixedDevice) Pose() Pose { return Pose{Forward: Vec3{0, 0, 1}} }
