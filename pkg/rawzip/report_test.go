package rawzip_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ziprobe/ziprobe/pkg/rawzip"
)

func TestReport_Render(t *testing.T) {
	archive := buildArchive(
		testEntry{name: "greeting", payload: []byte("hello")},
		testEntry{name: "raw", payload: []byte{0x00, 0xff, 0x10}},
	)
	report, err := rawzip.NewParser(archive).Parse()
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, report.Render(&sb))
	out := sb.String()

	require.Contains(t, out, "archive: 2 entries")
	require.Contains(t, out, "entry 0:")
	require.Contains(t, out, "entry 1:")
	require.Contains(t, out, "payload (5 bytes):")
	require.Contains(t, out, "payload (3 bytes):")
	// hex.Dump of "hello"
	require.Contains(t, out, "68 65 6c 6c 6f")
	// non-printable payload bytes stay hex, never raw
	require.Contains(t, out, "00 ff 10")
}
