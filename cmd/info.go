package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:     "info",
	Short:   "Display aggregate information about the archive's structure",
	Example: "zp info s3://example-bucket/path/to/archive.zip",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		report := getReport(cmd, args[0])
		var totalPayload uint64
		for _, p := range report.Payloads {
			totalPayload += uint64(len(p.Payload))
		}
		fmt.Printf("zip file: %s\n", args[0])
		fmt.Printf("entries: %d\n", report.Summary.EntryCount)
		fmt.Printf("central directory: %d bytes at offset %d\n",
			report.Summary.CentralDirectorySize, report.Summary.CentralDirectoryOffset)
		fmt.Printf("total payload bytes (compressed): %d\n", totalPayload)
		fmt.Printf("total payload bytes (compressed, human readable): %s\n", byteCountIEC(totalPayload))
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
