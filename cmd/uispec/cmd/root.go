// Package cmd implements the uispec CLI commands.
//
// The root command resolves the project configuration (uispec.yaml) and the
// logger before dispatching to a subcommand (check, tree, templates, expand,
// watch, version).
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/go-drift/uispec/cmd/uispec/internal/config"
	"github.com/go-drift/uispec/pkg/components"
	"github.com/go-drift/uispec/pkg/errors"
	"github.com/go-drift/uispec/pkg/spec"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var (
	projectDir string
	logLevel   string
	verbose    bool

	cfg    *config.Resolved
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "uispec",
	Short: "Validate and inspect owo-ui documents",
	Long: `uispec loads owo-ui documents, expands their templates and builds the
component hierarchy with the stock component set.

Settings are read from uispec.yaml in the project root (the nearest
directory containing go.mod).`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&projectDir, "project", ".", "directory to resolve uispec.yaml from")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log.level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log stack traces with errors")
}

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, args []string) error {
	root, err := config.FindProjectRoot(projectDir)
	if err != nil {
		return err
	}
	resolved, err := config.Resolve(root)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if logLevel != "" {
		if err := resolved.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}
	if verbose {
		resolved.Verbose = true
	}

	l, err := newLogger(resolved.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	cfg, logger = resolved, l
	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: cfg.Verbose})
	return nil
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.DisableStacktrace = true
	return zc.Build()
}

// projectHeader names the project documents are resolved in, for the first
// line of command output.
func projectHeader() string {
	if cfg.ModulePath == "" {
		return "project " + cfg.ProjectName
	}
	return fmt.Sprintf("project %s (%s)", cfg.ProjectName, cfg.ModulePath)
}

// specOptions returns the options every command loads documents with.
func specOptions() []spec.Option {
	opts := cfg.Options()
	return append(opts,
		spec.WithRegistry(components.NewRegistry()),
		spec.WithLogger(logger.Named("spec")),
	)
}
