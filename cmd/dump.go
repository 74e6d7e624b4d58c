package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	dumpSave   bool
	dumpOutDir string
)

var dumpCmd = &cobra.Command{
	Use:     "dump",
	Short:   "Render the full parse report, including a hex dump of every raw payload",
	Example: "zp dump path/to/archive.zip --save --out ./payloads",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		report := getReport(cmd, args[0])
		if err := report.Render(os.Stdout); err != nil {
			die("could not write report: %v", err)
		}
		if !dumpSave {
			return
		}
		outDir := dumpOutDir
		if outDir == "" {
			outDir = filepath.Join(os.TempDir(), "zp-dump", uuid.Must(uuid.NewV7()).String())
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			die("could not create output directory %s: %v", outDir, err)
		}
		for i, payload := range report.Payloads {
			name := filepath.Join(outDir, fmt.Sprintf("entry-%04d.bin", i))
			if err := os.WriteFile(name, payload.Payload, 0o644); err != nil {
				die("could not write %s: %v", name, err)
			}
		}
		_, _ = fmt.Fprintf(os.Stderr, "wrote %d payloads to %s\n", len(report.Payloads), outDir)
	},
}

func init() {
	dumpCmd.Flags().BoolVar(&dumpSave, "save", false,
		"also write each raw payload to a file")
	dumpCmd.Flags().StringVar(&dumpOutDir, "out", "",
		"directory for saved payloads (default: a fresh directory under the system temp dir)")
	rootCmd.AddCommand(dumpCmd)
}
