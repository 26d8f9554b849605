package ranged

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// gesture is the payload of an in-progress interaction. Exactly one gesture
// exists while the controller is performing; none while idle.
type gesture interface {
	state() InteractionState
	// tick runs the gesture's loop once per simulation step.
	tick(c *Controller)
	// end resolves the gesture on release and tears down its visuals.
	end(c *Controller)
	// cancel tears down the gesture's visuals without resolving it.
	cancel(c *Controller)
}

// Controller is the ranged interaction state machine. All methods must be
// called from the goroutine that drives Tick.
type Controller struct {
	cfg      Config
	world    World
	stage    Stage
	haptics  Haptics
	sink     SelectionSink
	device   Device
	surface  *Entity
	validity func(Hit, bool) bool
	log      *zap.Logger

	enabled  bool
	tool     ToolKind
	gesture  gesture
	reported InteractionState

	hidden    ToolKind
	hasHidden bool

	mode  SelectionMode
	press Interaction

	brush    BrushExtent
	brushViz *Entity

	touch touchpadState

	tweens   []*TweenGroup
	handlers handlerRegistry
}

type touchpadState struct {
	down  bool
	angle float64
}

// NewController creates a disabled controller with no tool selected.
func NewController(opts Options) *Controller {
	cfg := opts.Config
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}
	c := &Controller{
		cfg:      cfg,
		world:    opts.World,
		stage:    opts.Stage,
		haptics:  opts.Haptics,
		sink:     opts.Sink,
		device:   opts.Device,
		surface:  opts.Surface,
		validity: opts.Validity,
		log:      opts.Logger,
	}
	if c.world == nil {
		c.world = emptyWorld{}
	}
	if c.stage == nil {
		c.stage = nopStage{}
	}
	if c.haptics == nil {
		c.haptics = nopHaptics{}
	}
	if c.sink == nil {
		c.sink = nopSink{}
	}
	if c.device == nil {
		c.device = fixedDevice{}
	}
	if c.validity == nil {
		c.validity = PointerValid
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}

	c.brush = BrushExtent{Scale: cfg.Brush.BaseScale, Multiplier: cfg.Brush.InitialMultiplier}
	c.brushViz = NewSphere("ranged-brush", 0.5)
	c.brushViz.Layer = LayerIgnoreRaycast
	c.brushViz.Visible = false
	c.resizeBrush()
	c.stage.Spawn(nil, c.brushViz)
	return c
}

// Config returns the active tuning.
func (c *Controller) Config() Config {
	return c.cfg
}

// SetConfig swaps the tuning. The brush multiplier is kept, so only the
// base scale and bounds of the brush change.
func (c *Controller) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg
	c.brush.Scale = cfg.Brush.BaseScale
	c.resizeBrush()
	c.log.Info("controller config updated")
	return nil
}

// --- Enable / hide ---

// Enable allows tools to be selected.
func (c *Controller) Enable() {
	if c.enabled {
		return
	}
	c.enabled = true
	c.log.Debug("controller enabled")
}

// Disable forces the controller to None. A gesture in progress is allowed to
// finish; its end returns the controller to None.
func (c *Controller) Disable() {
	c.enabled = false
	c.log.Debug("controller disabled", zap.Bool("deferred", c.gesture != nil))
	if c.gesture == nil {
		c.setIdle(ToolNone)
	}
}

// Enabled reports whether tools may be active.
func (c *Controller) Enabled() bool {
	return c.enabled
}

// Hide stores the selected tool and forces None. A gesture in progress is
// cancelled without delivering a selection. Hide does not nest: a second
// call before Show keeps the first stored tool.
func (c *Controller) Hide() {
	if c.hasHidden {
		c.log.Debug("hide ignored, already hidden", zap.Stringer("stored", c.hidden))
		return
	}
	c.hidden = c.tool
	c.hasHidden = true
	c.cancelGesture()
	c.setIdle(ToolNone)
	c.log.Debug("controller hidden", zap.Stringer("stored", c.hidden))
}

// Show restores the tool stored by Hide. Without a pending Hide it does
// nothing.
func (c *Controller) Show() {
	if !c.hasHidden {
		return
	}
	tool := c.hidden
	c.hidden = ToolNone
	c.hasHidden = false
	c.setIdle(tool)
	c.log.Debug("controller shown", zap.Stringer("tool", c.tool))
}

// Hidden reports whether a Hide is pending.
func (c *Controller) Hidden() bool {
	return c.hasHidden
}

// --- Tool selection ---

// SetSelectedTool switches the tool when no gesture is in progress. While
// performing, the request is rejected with a warning pulse and false.
func (c *Controller) SetSelectedTool(kind ToolKind) bool {
	if c.gesture != nil {
		c.haptics.Pulse(c.cfg.Haptics.Warning)
		c.log.Info("tool switch rejected during gesture",
			zap.Stringer("requested", kind),
			zap.Stringer("state", c.State()))
		return false
	}
	c.finishPress()
	c.setIdle(kind)
	return true
}

// SetSelectedToolName is SetSelectedTool for a case-insensitive tool name.
func (c *Controller) SetSelectedToolName(name string) (bool, error) {
	kind, err := ParseToolKind(name)
	if err != nil {
		return false, err
	}
	return c.SetSelectedTool(kind), nil
}

// setIdle moves to the idle state of kind, coerced to None while disabled,
// and publishes the tool icon and trace visibility.
func (c *Controller) setIdle(kind ToolKind) {
	if !c.enabled {
		kind = ToolNone
	}
	c.cancelGesture()
	c.tool = kind
	trace := VisibilityAlwaysOn
	if kind == ToolNone {
		trace = VisibilityAlwaysOff
		c.finishPress()
	}
	fire(c.handlers.toolIcon, kind)
	fire(c.handlers.trace, trace)
	c.notifyState()
}

// begin installs g as the running gesture.
func (c *Controller) begin(g gesture) {
	c.gesture = g
	c.log.Debug("gesture started",
		zap.String("gesture", c.press.ID),
		zap.Stringer("state", g.state()))
	c.notifyState()
}

// cancelGesture aborts a running gesture and releases its visuals.
func (c *Controller) cancelGesture() {
	g := c.gesture
	if g == nil {
		return
	}
	c.gesture = nil
	g.cancel(c)
	c.log.Debug("gesture cancelled",
		zap.String("gesture", c.press.ID),
		zap.Stringer("state", g.state()))
}

// notifyState fires OnStateChange when the composite state differs from the
// last one reported.
func (c *Controller) notifyState() {
	s := c.State()
	if s == c.reported {
		return
	}
	from := c.reported
	c.reported = s
	c.log.Debug("ranged interaction state changed",
		zap.Stringer("from", from),
		zap.Stringer("to", s))
	fire(c.handlers.stateChange, StateChange{From: from, To: s})
}

// --- Press lifecycle ---

func (c *Controller) beginPress(mode SelectionMode) {
	c.mode = mode
	c.press = Interaction{ID: uuid.NewString(), Tool: c.tool, Mode: mode}
	c.log.Debug("interaction started",
		zap.String("gesture", c.press.ID),
		zap.Stringer("mode", mode),
		zap.Stringer("tool", c.tool))
	fire(c.handlers.started, c.press)
}

// finishPress closes the current press, if any.
func (c *Controller) finishPress() {
	if c.mode == ModeNone {
		return
	}
	p := c.press
	c.mode = ModeNone
	c.press = Interaction{}
	c.log.Debug("interaction finished", zap.String("gesture", p.ID))
	fire(c.handlers.finished, p)
}

func (c *Controller) acceptsPress() bool {
	return c.tool != ToolNone && c.gesture == nil && c.mode == ModeNone
}

// TriggerDown handles the primary trigger press. A press on a UI element
// runs ranged interaction whatever the selected tool.
func (c *Controller) TriggerDown() {
	if !c.acceptsPress() {
		return
	}
	c.beginPress(ModeSelecting)
	hit, ok := c.raycast()
	if ok && hit.Entity.Tag.IsUI() {
		c.startInteraction(hit, ok)
		return
	}
	c.startTool(hit, ok)
}

// GripDown handles the secondary grip press, which deselects.
func (c *Controller) GripDown() {
	if !c.acceptsPress() {
		return
	}
	c.beginPress(ModeDeselecting)
	if c.tool == ToolRangedInteraction {
		return
	}
	hit, ok := c.raycast()
	c.startTool(hit, ok)
}

// TriggerUp ends a press started by TriggerDown.
func (c *Controller) TriggerUp() {
	c.release(ModeSelecting)
}

// GripUp ends a press started by GripDown.
func (c *Controller) GripUp() {
	c.release(ModeDeselecting)
}

func (c *Controller) release(mode SelectionMode) {
	if c.mode != mode {
		return
	}
	if g := c.gesture; g != nil {
		c.gesture = nil
		c.log.Debug("gesture ended",
			zap.String("gesture", c.press.ID),
			zap.Stringer("state", g.state()))
		g.end(c)
	}
	c.finishPress()
	c.notifyState()
}

func (c *Controller) startTool(hit Hit, ok bool) {
	switch c.tool {
	case ToolRangedBrush:
		c.startBrush()
	case ToolLassoSelection:
		c.startLasso()
	case ToolRectangleSelection:
		c.startRectangle(hit, ok)
	case ToolRangedInteraction:
		c.startInteraction(hit, ok)
	}
}

// --- Touchpad ---

// TouchpadDown records the touch angle.
func (c *Controller) TouchpadDown(angle float64) {
	c.touch = touchpadState{down: true, angle: angle}
}

// TouchpadAxis handles a change of touch angle. While brushing, the signed
// angular delta resizes the brush.
func (c *Controller) TouchpadAxis(angle float64) {
	if _, ok := c.gesture.(*brushGesture); ok {
		delta := AngleDelta(c.touch.angle, angle)
		b := c.cfg.Brush
		if c.brush.Adjust(delta, b.ScaleFactor, b.Min, b.Max) {
			c.resizeBrush()
		} else {
			c.log.Debug("brush resize rejected",
				zap.Float64("delta", delta),
				zap.Float64("size", c.brush.Size()))
		}
	}
	c.touch.angle = angle
}

// TouchpadUp ends the touch.
func (c *Controller) TouchpadUp() {
	c.touch.down = false
}

// --- Tick ---

// Tick runs one simulation step: the running gesture's loop, then the
// controller's tweens.
func (c *Controller) Tick(dt float64) {
	if c.gesture != nil {
		c.gesture.tick(c)
	}
	if len(c.tweens) == 0 {
		return
	}
	live := c.tweens[:0]
	for _, tw := range c.tweens {
		tw.Update(float32(dt))
		if !tw.Done {
			live = append(live, tw)
		}
	}
	for i := len(live); i < len(c.tweens); i++ {
		c.tweens[i] = nil
	}
	c.tweens = live
}

// stopTweens ends every controller tween animating e, leaving e where it is.
func (c *Controller) stopTweens(e *Entity) {
	for _, tw := range c.tweens {
		if tw.target == e {
			tw.Done = true
		}
	}
}

// raycast issues the pointer query for this tick.
func (c *Controller) raycast() (Hit, bool) {
	pose := c.device.Pose()
	if pose.Forward.Len() == 0 {
		return Hit{}, false
	}
	ray := Ray{Origin: pose.Origin, Direction: pose.Forward.Normalize()}
	hit, ok := c.world.Raycast(ray, c.cfg.Pointer.MaxLength, c.cfg.Pointer.IgnoreLayers)
	if ok && hit.Entity == nil {
		return Hit{}, false
	}
	return hit, ok
}

// isSurface reports whether e is a selection surface.
func (c *Controller) isSurface(e *Entity) bool {
	return e != nil && (e == c.surface || e.Tag == TagSurface)
}

// frameFor returns the surface whose local frame a gesture starting on hit
// uses: the hit itself when it is a surface, else the designated surface,
// else the nearest surface ancestor.
func (c *Controller) frameFor(e *Entity) *Entity {
	if c.isSurface(e) {
		return e
	}
	if c.surface != nil {
		return c.surface
	}
	for p := e; p != nil; p = p.Parent {
		if p.Tag == TagSurface {
			return p
		}
	}
	return nil
}

// deliver routes a resolved batch to the sink by the press's mode.
func (c *Controller) deliver(entities []*Entity) {
	indices := Indices(entities)
	if len(indices) == 0 {
		return
	}
	for _, e := range entities {
		if e.Index >= 0 {
			e.Selected = c.mode == ModeSelecting
		}
	}
	c.log.Debug("selection resolved",
		zap.String("gesture", c.press.ID),
		zap.Stringer("mode", c.mode),
		zap.Ints("indices", indices))
	switch c.mode {
	case ModeSelecting:
		c.sink.EntitiesSelected(indices)
	case ModeDeselecting:
		c.sink.EntitiesDeselected(indices)
	}
}

// --- Queries ---

// State returns the composite interaction state.
func (c *Controller) State() InteractionState {
	if c.gesture != nil {
		return c.gesture.state()
	}
	return idleState(c.tool)
}

// Tool returns the selected tool.
func (c *Controller) Tool() ToolKind {
	return c.tool
}

// Mode returns the selection mode of the current press.
func (c *Controller) Mode() SelectionMode {
	return c.mode
}

// IsPerforming reports whether a gesture is in progress.
func (c *Controller) IsPerforming() bool {
	return c.gesture != nil
}

// Touching reports whether the touchpad is held.
func (c *Controller) Touching() bool {
	return c.touch.down
}

// emptyWorld is the World of a controller created without one: every ray
// misses and every query is empty.
type emptyWorld struct{}

func (emptyWorld) Raycast(Ray, float64, LayerMask) (Hit, bool) { return Hit{}, false }
func (emptyWorld) Eligible() []*Entity { return nil }
func (emptyWorld) OverlapSphere(Vec3, float64, Tag) []*Entity { return nil }
func (emptyWorld) OverlapBox(OrientedBox, Tag) []*Entity { return nil }
func (emptyWorld) SweepSphere(Vec3, Vec3, float64, Tag) []*Entity { return nil }
