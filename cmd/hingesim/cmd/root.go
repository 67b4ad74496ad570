package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/chazu/hingesim/pkg/app"
	"github.com/chazu/hingesim/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	outputJSON bool
	configPath string

	// Set up by the root command before any subcommand runs.
	cfg         config.Config
	logger      *logrus.Logger
	application *app.App
)

var rootCmd = &cobra.Command{
	Use:   "hingesim",
	Short: "Laptop hinge clearance simulator",
	Long: `Simulates the side profile of a laptop hinge: a stationary System base
and an LCD lid rotating about a pivot. Reports the minimum gap between the
two bodies and classifies it as SAFE, WARNING (gap < 0.8 mm) or COLLISION.

Settings come from built-in defaults, an optional YAML preset (--config) and
HINGESIM_* environment variables, in that order. Command flags win over all.

Examples:
  hingesim eval --angle 30                        # Evaluate one pose
  hingesim sweep --step 5                         # Sweep the lid 0-180 degrees
  hingesim run examples/clamshell.hinge           # Run a scenario script
  hingesim export -o pose.svg --angle 120 --trace # Render a pose with its trace`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML preset file")
}

// setup loads the configuration and builds the logger and App.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	logger = newLogger(cmd.ErrOrStderr(), cfg.Level())
	application = app.New(
		app.WithLogger(logger),
		app.WithTraceCapacity(cfg.TraceCapacity),
	)

	logger.WithFields(logrus.Fields{
		"config":  configPath,
		"command": cmd.Name(),
	}).Debug("configuration loaded")
	return nil
}

func newLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		DisableSorting:  true,
	})
	l.SetLevel(level)
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
