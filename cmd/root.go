package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const ZiprobeVersion = "0.1.0"

var maxSizeFlag uint32

var rootCmd = &cobra.Command{
	Use:               "zp",
	Short:             "Inspect the structural metadata of ZIP archives without decompressing them",
	Version:           ZiprobeVersion,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().Uint32Var(&maxSizeFlag, "max-size", 0,
		"per-entry compressed size ceiling in bytes (overrides config file and environment)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, err = fmt.Fprintln(os.Stderr, err)
		if err != nil {
			return
		}
		os.Exit(1)
	}
}
