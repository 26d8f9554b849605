package main

import (
	"fmt"
	"io"
	"os"

	"github.com/phanxgames/ranged"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// logHaptics records pulses in the log when no device is attached.
type logHaptics struct {
	log *zap.Logger
}

// Pulse implements ranged.Haptics.
func (h logHaptics) Pulse(p ranged.HapticPulse) {
	h.log.Debug("haptic pulse",
		zap.Float64("strength", p.Strength),
		zap.Float64("duration", p.Duration))
}

func newReplayCmd(a *app) *cobra.Command {
	var (
		scriptPath string
		maxFrames  int
		tps        int
	)
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Run a JSON input script headless and print the selection batches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			data, err := os.ReadFile(scriptPath)
			if err != nil {
				return fmt.Errorf("read script: %w", err)
			}
			script, err := ranged.LoadScript(data)
			if err != nil {
				return err
			}
			_, err = replay(cmd.OutOrStdout(), script, cfg, a.log, maxFrames, 1/float64(tps))
			return err
		},
	}
	cmd.Flags().StringVarP(&scriptPath, "script", "s", "", "JSON script to run (required)")
	cmd.Flags().IntVar(&maxFrames, "max-frames", 10000, "Give up after this many frames")
	cmd.Flags().IntVar(&tps, "tps", 60, "Simulated ticks per second")
	_ = cmd.MarkFlagRequired("script")
	return cmd
}

// replay runs script against the demo scene, writing each selection batch
// to w as it is delivered, then a summary line.
func replay(w io.Writer, script *ranged.Script, cfg ranged.Config, log *zap.Logger, maxFrames int, dt float64) (*ranged.SelectionSet, error) {
	demo := ranged.BuildDemoScene()
	demo.Scene.SetLogger(log.Named("scene"))
	rig := ranged.NewRig(demo.Eye, ranged.Vec3{0, -1, 0})
	sel := ranged.NewSelectionSet()
	sel.Track(demo.Shapes...)

	c := ranged.NewController(ranged.Options{
		Config:  cfg,
		World:   demo.Scene,
		Stage:   demo.Scene,
		Haptics: logHaptics{log: log.Named("haptics")},
		Sink:    batchPrinter{w: w, sink: sel},
		Device:  rig,
		Surface: demo.Surface,
		Logger:  log.Named("controller"),
	})
	c.OnStateChange(func(s ranged.StateChange) {
		fmt.Fprintf(w, "state %s -> %s\n", s.From, s.To)
	})
	c.OnClick(func(e *ranged.Entity) { fmt.Fprintf(w, "click %s\n", e.Name) })
	c.OnGrab(func(e *ranged.Entity) { fmt.Fprintf(w, "grab %s\n", e.Name) })

	r := ranged.NewRunner(script)
	err := r.Run(c, rig, dt, maxFrames)
	fmt.Fprintf(w, "frames %d, selected %v\n", r.Frames(), sel.Selected())
	if err != nil {
		return sel, fmt.Errorf("replay: %w", err)
	}
	return sel, nil
}

// batchPrinter echoes each batch to w before passing it on.
type batchPrinter struct {
	w    io.Writer
	sink ranged.SelectionSink
}

func (p batchPrinter) EntitiesSelected(indices []int) {
	fmt.Fprintf(p.w, "selected %v\n", indices)
	p.sink.EntitiesSelected(indices)
}

func (p batchPrinter) EntitiesDeselected(indices []int) {
	fmt.Fprintf(p.w, "deselected %v\n", indices)
	p.sink.EntitiesDeselected(indices)
}
