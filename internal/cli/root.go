// Package cli wires the sentireview commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spacesedan/sentireview/config"
	"github.com/spacesedan/sentireview/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// skipConfigAnnotation marks commands that must run before a config file exists.
const skipConfigAnnotation = "sentireview/skip-config"

// Version is overridden at build time with -ldflags "-X ...cli.Version=...".
var Version = "v0.1.0-dev"

type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
}

// NewRootCmd builds the command tree around a fresh viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	config.SetDefaults(a.v)
	config.BindEnv(a.v)

	root := &cobra.Command{
		Use:   "sentireview",
		Short: "Sentireview - sentiment analysis for product reviews",
		Long: `Sentireview normalizes product review text and labels each review as
positive, negative or neutral from the sign of its polarity score.

Polarity comes from a pluggable backend: VADER (default), a local
transformer model, an OpenAI chat model, or a remote HTTP service.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipConfigAnnotation] == "true" {
				return nil
			}
			return a.loadConfig()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.sentireview/config.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("backend", "vader", "polarity backend (vader, hugot, openai, remote)")
	flags.String("cache", "memory", "score cache (none, memory, valkey)")

	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("scorer.backend", flags.Lookup("backend"))
	_ = a.v.BindPFlag("cache.backend", flags.Lookup("cache"))

	root.AddCommand(
		newAnalyzeCmd(a),
		newCacheCmd(a),
		newClassifyCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI with ctx as every command's context.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error finding home directory: %w", err)
	}
	return filepath.Join(home, ".sentireview", "config.yaml"), nil
}

func (a *app) loadConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else if path, err := defaultConfigPath(); err == nil {
		a.v.SetConfigFile(path)
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case a.cfgFile != "":
			return fmt.Errorf("failed to read config %s: %w", a.cfgFile, err)
		case errors.As(err, &notFound), errors.Is(err, os.ErrNotExist):
		default:
			return fmt.Errorf("failed to read config %s: %w", a.v.ConfigFileUsed(), err)
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logging.InitLogger(cfg.Log.Level)
	if used := a.v.ConfigFileUsed(); used != "" {
		if _, statErr := os.Stat(used); statErr == nil {
			slog.Debug("[CLI] Using config file", slog.String("path", used))
		}
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sentireview %s\n", Version)
		},
	}
}
