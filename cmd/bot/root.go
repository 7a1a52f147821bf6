package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rg/tgctx/internal/config"
)

func Execute() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "bot",
		Short:        "Telegram bot built on per-update contexts",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "Config file path (defaults to $CONFIG_PATH or "+config.DefaultPath+").")

	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newJournalCmd())

	return cmd
}

// loadConfig reads the file named by --config, falling back to CONFIG_PATH
// and the default path.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	var cfg *config.Config
	if path = strings.TrimSpace(path); path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}
