package ranged

// EventType identifies a controller callback list.
type EventType uint8

const (
	EventStateChange EventType = iota
	EventInteractionStarted
	EventInteractionFinished
	EventToolIcon
	EventTraceVisibility
	EventClick
	EventGrab
)

// StateChange carries a composite state transition.
type StateChange struct {
	From, To InteractionState
}

// Interaction identifies one press, from acceptance to release or
// cancellation.
type Interaction struct {
	ID   string
	Tool ToolKind
	Mode SelectionMode
}

// --- Handler registry ---

type handler[T any] struct {
	id uint32
	fn func(T)
}

type handlerRegistry struct {
	stateChange []handler[StateChange]
	started     []handler[Interaction]
	finished    []handler[Interaction]
	toolIcon    []handler[ToolKind]
	trace       []handler[Visibility]
	click       []handler[*Entity]
	grab        []handler[*Entity]
	nextID      uint32
}

// CallbackHandle allows removing a registered controller callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventStateChange:
		h.reg.stateChange = removeHandler(h.reg.stateChange, h.id)
	case EventInteractionStarted:
		h.reg.started = removeHandler(h.reg.started, h.id)
	case EventInteractionFinished:
		h.reg.finished = removeHandler(h.reg.finished, h.id)
	case EventToolIcon:
		h.reg.toolIcon = removeHandler(h.reg.toolIcon, h.id)
	case EventTraceVisibility:
		h.reg.trace = removeHandler(h.reg.trace, h.id)
	case EventClick:
		h.reg.click = removeHandler(h.reg.click, h.id)
	case EventGrab:
		h.reg.grab = removeHandler(h.reg.grab, h.id)
	}
}

func removeHandler[T any](s []handler[T], id uint32) []handler[T] {
	for i, h := range s {
		if h.id == id {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

func addHandler[T any](reg *handlerRegistry, s *[]handler[T], event EventType, fn func(T)) CallbackHandle {
	reg.nextID++
	*s = append(*s, handler[T]{id: reg.nextID, fn: fn})
	return CallbackHandle{id: reg.nextID, reg: reg, event: event}
}

func fire[T any](s []handler[T], v T) {
	for _, h := range s {
		h.fn(v)
	}
}

// --- Controller-level event registration ---

// OnStateChange registers a callback fired whenever the composite state changes.
func (c *Controller) OnStateChange(fn func(StateChange)) CallbackHandle {
	return addHandler(&c.handlers, &c.handlers.stateChange, EventStateChange, fn)
}

// OnInteractionStarted registers a callback fired when a press is accepted.
func (c *Controller) OnInteractionStarted(fn func(Interaction)) CallbackHandle {
	return addHandler(&c.handlers, &c.handlers.started, EventInteractionStarted, fn)
}

// OnInteractionFinished registers a callback fired exactly once for every
// started interaction, when it is released or cancelled.
func (c *Controller) OnInteractionFinished(fn func(Interaction)) CallbackHandle {
	return addHandler(&c.handlers, &c.handlers.finished, EventInteractionFinished, fn)
}

// OnToolIcon registers a callback receiving the tool indicator on every idle
// transition. ToolNone means no icon.
func (c *Controller) OnToolIcon(fn func(ToolKind)) CallbackHandle {
	return addHandler(&c.handlers, &c.handlers.toolIcon, EventToolIcon, fn)
}

// OnTraceVisibility registers a callback receiving the pointer trace mode on
// every idle transition.
func (c *Controller) OnTraceVisibility(fn func(Visibility)) CallbackHandle {
	return addHandler(&c.handlers, &c.handlers.trace, EventTraceVisibility, fn)
}

// OnClick registers a callback fired when a UI element is released under the
// pointer that pressed it.
func (c *Controller) OnClick(fn func(*Entity)) CallbackHandle {
	return addHandler(&c.handlers, &c.handlers.click, EventClick, fn)
}

// OnGrab registers a callback fired when a pull completes and the target
// should be handed to the host's grab mechanism.
func (c *Controller) OnGrab(fn func(*Entity)) CallbackHandle {
	return addHandler(&c.handlers, &c.handlers.grab, EventGrab, fn)
}
