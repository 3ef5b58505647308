// Package cli builds the cobra root command shared by the snake binaries.
// Each binary is one variant; the command takes no arguments.
package cli

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

// Options describes one variant binary.
type Options struct {
	Variant string // Registry ID of the variant to play
	Use     string
	Short   string
	Long    string
}

// NewRootCommand returns the root command that plays opts.Variant.
func NewRootCommand(opts Options) *cobra.Command {
	var (
		flagDebug bool
		flagSeed  int64
	)

	cmd := &cobra.Command{
		Use:           opts.Use,
		Short:         opts.Short,
		Long:          opts.Long,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := NewLogger(opts.Use, flagDebug)
			return play(logger, opts.Variant, flagSeed)
		},
	}

	cmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log preset and session details to stderr")
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed for food placement (0 = random based on time)")
	//nolint:errcheck // flag is registered just above
	cmd.Flags().MarkHidden("seed")

	return cmd
}

// NewLogger creates the stderr logger used outside the alternate screen.
func NewLogger(prefix string, debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func play(logger *log.Logger, variant string, seed int64) error {
	summary, err := tui.Play(variant, seed, logger)
	if err != nil {
		if errors.Is(err, tui.ErrSessionInit) {
			logger.Error("cannot start terminal session", "error", err)
		} else {
			logger.Error("session failed", "error", err)
		}
		return err
	}

	keyvals := []any{
		"variant", variant,
		"frames", summary.Frames,
		"score", summary.State.Score,
		"game_over", summary.State.GameOver,
		"interrupted", summary.Interrupted,
	}
	logger.Debug("session ended", append(keyvals, summary.Details...)...)
	return nil
}

// Execute runs cmd and exits with status 1 on failure.
func Execute(cmd *cobra.Command) {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
