package main

import (
	"fmt"
	"os"

	"axlab.dev/lessons/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "lessons",
		Short: "Run the lesson exercises from the command line",
		Long: `lessons exposes the exercise utilities: a sequence term calculator,
an add/subtract pair, a pig latin word transform and a repeater.

Negative numbers must follow "--", e.g. "lessons term -- -1".`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a YAML config file (default "+config.DefaultPath+")")

	root.AddCommand(
		newTermCmd(a),
		newAddCmd(a),
		newSubtractCmd(a),
		newPigLatinCmd(a),
		newRepeatCmd(a),
	)
	return root
}

// setup loads the configuration and builds the logger, unless the caller
// already provided them.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if a.cfg == nil {
		path, required := a.configPath, true
		if path == "" {
			path, required = config.DefaultPath, false
		}
		cfg, err := config.Load(path, required)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	if a.logger == nil {
		logger, err := buildLogger(a.cfg.Logging, a.verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.logger = logger
	}

	a.logger.Debug("command started",
		zap.String("command", cmd.Name()),
		zap.Strings("args", args),
	)
	return nil
}

func buildLogger(cfg config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := cfg.ZapLevel()
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{"stderr"}
	return zapCfg.Build()
}

// execute runs the command line and flushes the logger, also when the
// command failed.
func execute(a *app, args []string) error {
	cmd := newRootCmd(a)
	if args != nil {
		cmd.SetArgs(args)
	}
	err := cmd.Execute()
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	return err
}

func main() {
	if err := execute(&app{}, nil); err != nil {
		os.Exit(1)
	}
}
