package ranged

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTool is returned when a tool name does not match any ToolKind.
var ErrUnknownTool = errors.New("ranged: unknown tool")

// ToolKind is the user-selectable tool.
type ToolKind uint8

const (
	ToolNone ToolKind = iota
	ToolRangedBrush
	ToolLassoSelection
	ToolRectangleSelection
	ToolRangedInteraction
)

var toolNames = [...]string{
	ToolNone:               "none",
	ToolRangedBrush:        "rangedbrush",
	ToolLassoSelection:     "lassoselection",
	ToolRectangleSelection: "rectangleselection",
	ToolRangedInteraction:  "rangedinteraction",
}

func (k ToolKind) String() string {
	if int(k) < len(toolNames) {
		return toolNames[k]
	}
	return fmt.Sprintf("ToolKind(%d)", uint8(k))
}

// ParseToolKind maps a tool name to its ToolKind. Matching ignores case, so
// "RangedBrush" and "rangedbrush" are the same tool.
func ParseToolKind(name string) (ToolKind, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for k, n := range toolNames {
		if n == key {
			return ToolKind(k), nil
		}
	}
	return ToolNone, fmt.Errorf("%w: %q", ErrUnknownTool, name)
}

// InteractionState is the controller's composite state: the selected tool
// and, while a gesture runs, its phase.
type InteractionState uint8

const (
	StateNone InteractionState = iota
	StateRangedBrush
	StateRangedBrushing
	StateLassoSelection
	StateLassoSelecting
	StateRectangleSelection
	StateRectangleSelecting
	StateRangedInteraction
	StateRangedInteracting
	StateRangedPulling
)

var stateNames = [...]string{
	StateNone:               "None",
	StateRangedBrush:        "RangedBrush",
	StateRangedBrushing:     "RangedBrushing",
	StateLassoSelection:     "LassoSelection",
	StateLassoSelecting:     "LassoSelecting",
	StateRectangleSelection: "RectangleSelection",
	StateRectangleSelecting: "RectangleSelecting",
	StateRangedInteraction:  "RangedInteraction",
	StateRangedInteracting:  "RangedInteracting",
	StateRangedPulling:      "RangedPulling",
}

func (s InteractionState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("InteractionState(%d)", uint8(s))
}

// IsPerforming reports whether the state is an in-progress gesture.
func (s InteractionState) IsPerforming() bool {
	switch s {
	case StateRangedBrushing, StateLassoSelecting, StateRectangleSelecting,
		StateRangedInteracting, StateRangedPulling:
		return true
	}
	return false
}

// idleState returns the idle state of a tool.
func idleState(k ToolKind) InteractionState {
	switch k {
	case ToolRangedBrush:
		return StateRangedBrush
	case ToolLassoSelection:
		return StateLassoSelection
	case ToolRectangleSelection:
		return StateRectangleSelection
	case ToolRangedInteraction:
		return StateRangedInteraction
	default:
		return StateNone
	}
}

// SelectionMode records which button owns the current press.
type SelectionMode uint8

const (
	ModeNone SelectionMode = iota
	ModeSelecting
	ModeDeselecting
)

func (m SelectionMode) String() string {
	switch m {
	case ModeSelecting:
		return "selecting"
	case ModeDeselecting:
		return "deselecting"
	default:
		return "none"
	}
}

// Visibility is the pointer trace rendering mode.
type Visibility uint8

const (
	VisibilityAlwaysOff Visibility = iota
	VisibilityAlwaysOn
)

func (v Visibility) String() string {
	if v == VisibilityAlwaysOn {
		return "always-on"
	}
	return "always-off"
}
