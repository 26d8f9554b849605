package ranged

import (
	"fmt"

	"go.uber.org/zap"
)

// debugLog receives tree warnings while debug mode is on. Set through
// Scene.SetLogger.
var debugLog = zap.NewNop()

// debugCheckDisposed panics with a descriptive message when a disposed entity
// is used in a tree operation. Only called in debug mode; in release mode
// callers skip this entirely.
func debugCheckDisposed(e *Entity, op string) {
	if e.disposed {
		panic(fmt.Sprintf("ranged debug: %s on disposed entity %q", op, e.Name))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(e *Entity) {
	depth := 0
	for p := e; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugLog.Warn("tree depth exceeds threshold",
			zap.Int("depth", depth),
			zap.Int("threshold", debugMaxTreeDepth),
			zap.String("entity", e.Name))
	}
}

// debugCheckChildCount warns if an entity has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(e *Entity) {
	if len(e.children) > debugMaxChildCount {
		debugLog.Warn("child count exceeds threshold",
			zap.Int("children", len(e.children)),
			zap.Int("threshold", debugMaxChildCount),
			zap.String("entity", e.Name))
	}
}
