// Package main implements the mccmdhl CLI: parse, complete and
// highlight Minecraft Bedrock command text from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	targetVersion string
	idTablePath   string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mccmdhl",
	Short: "Parse, autocomplete and highlight Minecraft Bedrock command text",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.EncoderConfig.TimeKey = ""
		l, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&targetVersion, "version", "1.19.80", "target MCCMD version, M.m.p")
	rootCmd.PersistentFlags().StringVar(&idTablePath, "idtable", "", "path to a block/item/entity id catalogue (JSON, // and /* */ comments allowed)")
	rootCmd.AddCommand(parseCmd, completeCmd, highlightCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
