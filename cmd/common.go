package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziprobe/ziprobe/pkg/config"
	"github.com/ziprobe/ziprobe/pkg/rawzip"
	"github.com/ziprobe/ziprobe/pkg/remote"
)

func expandStdin(arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	expanded := string(data)
	return strings.Trim(expanded, "\n \t"), nil
}

func die(fstring string, args ...interface{}) {
	if !strings.HasSuffix(fstring, "\n") {
		fstring += "\n"
	}
	_, _ = os.Stderr.WriteString(fmt.Sprintf(fstring, args...))
	os.Exit(1)
}

func setupLogging() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		AddSource: true,
		Level:     slog.LevelError,
	})))
	if os.Getenv("ZIPROBE_LOGGING") == "DEBUG" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		})))
	}
}

// getReport buffers the archive named by remoteFile and runs the full
// metadata parse over it, resolving the size policy from config, environment
// and the --max-size flag.
func getReport(cmd *cobra.Command, remoteFile string) *rawzip.Report {
	uri, err := expandStdin(remoteFile)
	if err != nil {
		die("could not read stdin: %v", err)
	}
	maxSize, err := config.Load()
	if err != nil {
		die("could not load configuration: %v", err)
	}
	if maxSizeFlag != 0 {
		maxSize = maxSizeFlag
	}
	obj, err := remote.Object(uri)
	if err != nil {
		die("could not open zip file: %v", err)
	}
	buf, err := remote.FetchAll(cmd.Context(), obj)
	if err != nil {
		die("could not read zip file: %v", err)
	}
	report, err := rawzip.NewParser(buf, rawzip.WithMaxCompressedSize(maxSize)).Parse()
	if err != nil {
		die("could not parse zip file: %v", err)
	}
	return report
}

func byteCountIEC(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB",
		float64(b)/float64(div), "KMGTPE"[exp])
}
