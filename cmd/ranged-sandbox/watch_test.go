package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/phanxgames/ranged"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func writeConfig(t *testing.T, path string, cfg ranged.Config) {
	t.Helper()
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestWatchConfigReloads(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "ranged.yaml")
	writeConfig(t, path, ranged.DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	configs, err := watchConfig(ctx, path, zap.NewNop())
	if err != nil {
		cancel()
		t.Fatalf("watchConfig: %v", err)
	}

	want := ranged.DefaultConfig()
	want.Brush.Max = 0.08
	writeConfig(t, path, want)

	timeout := time.After(5 * time.Second)
wait:
	for {
		select {
		case cfg := <-configs:
			// A write may surface as several events; wait for the new value.
			if cfg.Brush.Max == 0.08 {
				break wait
			}
		case <-timeout:
			cancel()
			t.Fatal("no reloaded config within 5s")
		}
	}

	cancel()
	for range configs {
	}
}

func TestWatchConfigStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "ranged.yaml")
	ctx, cancel := context.WithCancel(context.Background())
	configs, err := watchConfig(ctx, path, zap.NewNop())
	if err != nil {
		cancel()
		t.Fatalf("watchConfig: %v", err)
	}
	cancel()

	select {
	case _, ok := <-configs:
		if ok {
			t.Error("no config should be delivered")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestWatchConfigMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "ranged.yaml")
	if _, err := watchConfig(context.Background(), path, zap.NewNop()); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestPublishKeepsLatest(t *testing.T) {
	out := make(chan ranged.Config, 1)
	a, b := ranged.DefaultConfig(), ranged.DefaultConfig()
	a.Brush.Max = 0.05
	b.Brush.Max = 0.06
	publish(out, a)
	publish(out, b)
	if got := (<-out).Brush.Max; got != 0.06 {
		t.Errorf("Brush.Max = %v, want the latest 0.06", got)
	}
}
