package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pulsegraph/pulse"
	"github.com/pulsegraph/pulse/cmd/pulsedemo/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "pulsedemo",
	Short: "Narrate pulse's reactive graph scenarios in a terminal",
	Long: `pulsedemo runs each of pulse's boundary scenarios — a counter, a
diamond dependency, dynamic dependency pruning, a batched effect,
listener isolation, and a cycle — and narrates what the kernel actually
does at each step.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(c *cobra.Command, args []string) error {
		return runScenario(cfg.Scenario)
	},
}

func init() {
	rootCmd.Flags().String("scenario", "counter", "scenario to run (counter, diamond, dynamic, batch, listener, cycle, all)")
	rootCmd.Flags().Int("trace-capacity", 256, "number of nodes the instrumentation trace ring keeps history for (0 disables tracing)")
	rootCmd.Flags().Bool("debug", false, "log compute, effect and listener errors via slog")

	cobra.OnInitialize(func() {
		loaded, err := config.Load(rootCmd.Flags())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	})
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setupRuntime() *pulse.Trace {
	if cfg.Debug {
		pulse.SetHooks(&pulse.Hooks{
			OnComputeError:  func(e *pulse.ComputeError) { slog.Error("compute error", "node", e.NodeID, "err", e.Err) },
			OnEffectError:   func(e *pulse.EffectError) { slog.Error("effect error", "node", e.NodeID, "err", e.Err) },
			OnListenerError: func(e *pulse.ListenerError) { slog.Error("listener error", "node", e.NodeID, "err", e.Err) },
		})
	}
	if cfg.TraceCapacity <= 0 {
		return nil
	}
	trace, err := pulse.EnableTrace(cfg.TraceCapacity)
	if err != nil {
		slog.Warn("failed to enable trace", "err", err)
		return nil
	}
	return trace
}
