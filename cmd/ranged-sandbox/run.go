package main

import (
	"github.com/phanxgames/ranged"
	"github.com/phanxgames/ranged/ebitenhost"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const windowTitle = "Ranged Sandbox"

func newRunCmd(a *app) *cobra.Command {
	var (
		tool          string
		audio         bool
		watch         bool
		width, height int
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the interactive sandbox window",
		Long: `Open the sandbox window. A standard gamepad drives the controller
(right trigger = select, right bumper = deselect, right stick = touchpad);
without one, use the mouse (left = select, right = deselect, wheel = touchpad).
Number keys pick tools, H hides, E toggles enabled, C recenters, Esc quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			kind, err := ranged.ParseToolKind(tool)
			if err != nil {
				return err
			}

			var configs <-chan ranged.Config
			if watch && a.configPath != "" {
				configs, err = watchConfig(cmd.Context(), a.configPath, a.log.Named("watch"))
				if err != nil {
					return err
				}
			}

			var extra ranged.Haptics
			if audio {
				ah, err := newAudioHaptics()
				if err != nil {
					a.log.Warn("audio haptics unavailable", zap.Error(err))
				} else {
					defer ah.Close()
					extra = ah
				}
			}

			g := ebitenhost.NewGame(ebitenhost.Options{
				Config:  cfg,
				Tool:    kind,
				Logger:  a.log,
				Haptics: extra,
				Configs: configs,
				Width:   width,
				Height:  height,
			})
			a.log.Info("sandbox starting",
				zap.Stringer("tool", kind),
				zap.Bool("audio_haptics", extra != nil),
				zap.Bool("watch", configs != nil))
			return ebitenhost.Run(g, windowTitle)
		},
	}
	cmd.Flags().StringVarP(&tool, "tool", "t", "LassoSelection", "Tool selected at start")
	cmd.Flags().BoolVar(&audio, "audio-haptics", false, "Play haptic pulses as sound")
	cmd.Flags().BoolVar(&watch, "watch", true, "Reload --config when it changes")
	cmd.Flags().IntVar(&width, "width", 960, "Window width")
	cmd.Flags().IntVar(&height, "height", 640, "Window height")
	return cmd
}
