package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:     "ls",
	Short:   "List every entry's declared sizes and offsets",
	Example: "zp ls s3://example-bucket/path/to/archive.zip",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		report := getReport(cmd, args[0])
		for i, entry := range report.Entries {
			payload := report.Payloads[i]
			fmt.Printf("%-6d\t%-12d\t%-12d\t%-8d\t%-8d\t%d\n",
				i, entry.CompressedSize, payload.CompressedSize,
				entry.FilenameLength, entry.ExtraFieldLength,
				entry.LocalHeaderOffset)
		}
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
