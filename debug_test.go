package ranged

import (
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDebugMode_DisposedEntityPanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := NewEntity("parent")
	s.Add(parent)

	child := NewSphere("child", 1)
	child.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild with disposed entity, got none")
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()

	parent.AddChild(child)
}

func TestDebugMode_DisposedParentPanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := NewEntity("parent")
	parent.Dispose()

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on AddChild to disposed parent, got none")
		}
	}()

	parent.AddChild(NewSphere("child", 1))
}

func TestReleaseMode_DisposedEntityNoPanic(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(false)

	child := NewSphere("child", 1)
	child.Dispose()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("release mode should not panic on disposed entity, got: %v", r)
		}
	}()
	s.Add(child)
}

func observedScene(t *testing.T) (*Scene, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	s := NewScene()
	s.SetLogger(zap.New(core))
	s.SetDebugMode(true)
	t.Cleanup(func() {
		s.SetDebugMode(false)
		s.SetLogger(nil)
	})
	return s, logs
}

func TestDebugMode_TreeDepthWarning(t *testing.T) {
	s, logs := observedScene(t)

	current := s.Root()
	for i := 0; i < debugMaxTreeDepth+5; i++ {
		child := NewEntity(fmt.Sprintf("depth_%d", i))
		current.AddChild(child)
		current = child
	}

	if n := logs.FilterMessage("tree depth exceeds threshold").Len(); n == 0 {
		t.Error("expected tree depth warning")
	}
}

func TestDebugMode_ChildCountWarning(t *testing.T) {
	s, logs := observedScene(t)

	parent := NewEntity("many_children")
	s.Add(parent)
	for i := 0; i < debugMaxChildCount+1; i++ {
		parent.AddChild(NewEntity(fmt.Sprintf("c_%d", i)))
	}

	entries := logs.FilterMessage("child count exceeds threshold").All()
	if len(entries) != 1 {
		t.Fatalf("warnings = %d, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["entity"]; got != "many_children" {
		t.Errorf("entity field = %v, want many_children", got)
	}
}
