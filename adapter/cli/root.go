package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/felixgeelhaar/tasklist/pkg/observability"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	logger  *slog.Logger

	bootstrap Bootstrapper
)

// ErrAppNotInitialized is returned when a command runs without wired handlers.
var ErrAppNotInitialized = errors.New("application not initialized")

// Options carries the global flag values to the Bootstrapper.
type Options struct {
	ConfigFile string
	Verbose    bool
}

// Bootstrapper builds the App once flags are parsed. It runs at most once
// per process, before the first command executes.
type Bootstrapper func(ctx context.Context, opts Options) (*App, error)

type commandContext struct {
	correlationID uuid.UUID
	startedAt     time.Time
}

type commandContextKey struct{}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tasklist",
	Short: "tasklist - an interactive in-memory task list",
	Long: `tasklist keeps a list of tasks for the length of one session.

Tasks have a description, an optional due date and optional tags, and can be
marked completed, deleted, or listed by status. Nothing is written to disk;
the list is gone when you quit.

Running tasklist without a subcommand starts the interactive shell.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if bootstrap != nil && app == nil {
			a, err := bootstrap(cmd.Context(), Options{ConfigFile: cfgFile, Verbose: verbose})
			if err != nil {
				return fmt.Errorf("bootstrap: %w", err)
			}
			SetApp(a)
		}
		if logger == nil {
			logger = slog.Default()
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		info := commandContext{
			correlationID: uuid.New(),
			startedAt:     time.Now(),
		}
		ctx = observability.WithCorrelationID(ctx, info.correlationID.String())
		cmd.SetContext(context.WithValue(ctx, commandContextKey{}, info))
		logger.Info("command start",
			"command", cmd.CommandPath(),
			"correlation_id", info.correlationID.String(),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger == nil {
			logger = slog.Default()
		}
		info, ok := cmd.Context().Value(commandContextKey{}).(commandContext)
		if !ok {
			return
		}
		logger.Info("command end",
			"command", cmd.CommandPath(),
			"correlation_id", info.correlationID.String(),
			"duration_ms", time.Since(info.startedAt).Milliseconds(),
		)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default tasklist.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// SetLogger sets the CLI logger.
func SetLogger(l *slog.Logger) {
	logger = l
}

// SetBootstrapper registers the function that builds the App after flag parsing.
func SetBootstrapper(b Bootstrapper) {
	bootstrap = b
}
