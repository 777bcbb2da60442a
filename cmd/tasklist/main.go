package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/tasklist/adapter/cli"
	"github.com/felixgeelhaar/tasklist/internal/app"
	"github.com/felixgeelhaar/tasklist/pkg/config"
	"github.com/felixgeelhaar/tasklist/pkg/observability"
)

func main() {
	// Until flags are parsed, log warnings and errors only
	cli.SetLogger(observability.NewLogger(observability.DefaultLogConfig()))

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cli.SetBootstrapper(bootstrap)
	cli.Execute(ctx)
}

// bootstrap loads configuration, builds the logger and wires the container
// into a CLI app.
func bootstrap(ctx context.Context, opts cli.Options) (*cli.App, error) {
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return nil, err
	}

	logger := observability.NewLogger(logConfig(cfg, opts.Verbose))
	cli.SetLogger(logger)

	container := app.NewContainer(cfg, logger)
	logger.DebugContext(ctx, "container ready",
		"app_env", cfg.AppEnv,
		"activity_log", cfg.ActivityLog,
	)

	cliApp := cli.NewApp(
		container.AddTaskHandler,
		container.CompleteTaskHandler,
		container.DeleteTaskHandler,
		container.ListTasksHandler,
	)
	cliApp.ShowBanner = cfg.ShowBanner
	return cliApp, nil
}

// logConfig maps the loaded configuration onto the logger settings.
// Development runs also record source locations.
func logConfig(cfg *config.Config, verbose bool) observability.LogConfig {
	logCfg := observability.DefaultLogConfig()
	logCfg.Level = observability.LogLevel(cfg.LogLevel)
	logCfg.Format = observability.LogFormat(cfg.LogFormat)
	logCfg.ServiceVersion = cli.Version
	logCfg.AddSource = cfg.IsDevelopment()
	if verbose {
		logCfg.Level = observability.LogLevelDebug
	}
	return logCfg
}
