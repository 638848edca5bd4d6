// Package cli implements the treetrim command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/igitur/treetrim/fs/billy"
	"github.com/igitur/treetrim/fsops"
	"github.com/igitur/treetrim/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "treetrim",
	Short: "Hierarchical filesystem operations",
	Long: `treetrim exposes the filesystem primitives used by tree-pruning and
deployment tooling: entity classification, recursive copy with overwrite,
recursive delete that neutralizes read-only protection, recursive file
enumeration with an empty-directory sentinel, and whole-file text IO.

Configuration is read from treetrim.yaml in the working directory when
present, with TREETRIM_* environment variables (optionally from a .env
file) and command line flags taking precedence, in that order.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

type rootFlagValues struct {
	root      string
	logLevel  string
	logFormat string
}

var rootFlags rootFlagValues

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.root, "root", "", "directory all operations are scoped to (default \"/\")")
	rootCmd.PersistentFlags().StringVar(&rootFlags.logLevel, "log-level", "", "log level: debug, info, warn, error (default \"info\")")
	rootCmd.PersistentFlags().StringVar(&rootFlags.logFormat, "log-format", "", "log format: text or json (default \"text\")")
	rootCmd.PersistentPreRunE = setupLogging
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig merges the config file, environment, and flags.
// Flags win over the environment, which wins over the file.
func loadConfig() (*config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadWithEnv(wd)
	if err != nil {
		return nil, err
	}
	if rootFlags.root != "" {
		cfg.Root = rootFlags.root
	}
	if rootFlags.logLevel != "" {
		cfg.Logging.Level = rootFlags.logLevel
	}
	if rootFlags.logFormat != "" {
		cfg.Logging.Format = rootFlags.logFormat
	}
	if cfg.Root == "" {
		cfg.Root = "/"
	}
	return cfg, nil
}

// setupLogging configures logrus from the merged configuration.
func setupLogging(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logrus.SetOutput(cmd.ErrOrStderr())
	if cfg.Logging.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	level := cfg.Logging.Level
	if level == "" {
		level = "info"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logrus.SetLevel(parsed)
	return nil
}

// newOps builds the operations facade from the merged configuration.
func newOps() (*fsops.Ops, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logrus.WithField("root", cfg.Root).Debug("using local filesystem backend")
	return fsops.New(billy.NewLocal(billy.WithRoot(cfg.Root))), nil
}
