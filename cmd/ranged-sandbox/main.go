// Command ranged-sandbox runs the ranged interaction controller against the
// demo table, either in a window or headless from a script.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/phanxgames/ranged"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds the flags shared by every subcommand and the logger built from
// them.
type app struct {
	verbose    bool
	configPath string
	logFile    logFileOptions

	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "ranged-sandbox",
		Short: "Sandbox for the ranged pointer interaction controller",
		Long: `ranged-sandbox drives a ranged pointer controller over a demo table of
selectable shapes, a pullable crate and a UI button.

Use "run" for the interactive window, "replay" to run a JSON script headless
and print the selection batches, and "config" to print the default tuning.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := buildLogger(a.verbose, a.logFile)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVarP(&a.configPath, "config", "c", "", "YAML tuning file (default: built-in tuning)")
	flags.StringVar(&a.logFile.path, "log-file", "", "Also write JSON logs to this rotating file")
	flags.IntVar(&a.logFile.maxSizeMB, "log-max-size", 10, "Rotate the log file after this many megabytes")
	flags.IntVar(&a.logFile.maxBackups, "log-max-backups", 3, "Rotated log files to keep")
	flags.IntVar(&a.logFile.maxAgeDays, "log-max-age", 7, "Days to keep rotated log files")

	root.AddCommand(newRunCmd(a), newReplayCmd(a), newConfigCmd(a))
	return root
}

// loadConfig returns the tuning named by --config, or the defaults.
func (a *app) loadConfig() (ranged.Config, error) {
	if a.configPath == "" {
		return ranged.DefaultConfig(), nil
	}
	return ranged.LoadConfig(a.configPath)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
