package rawzip

import (
	"encoding/hex"
	"fmt"
	"io"
)

// Render writes a human-readable dump of the whole report: the archive
// summary, one line per entry showing both the central directory and local
// header size views, and a length-prefixed hex dump of each payload. Payloads
// are rendered with hex.Dump because they are raw compressed bytes, not
// printable text.
func (r *Report) Render(w io.Writer) error {
	_, err := fmt.Fprintf(w, "archive: %d entries, central directory %d bytes at offset %d\n",
		r.Summary.EntryCount, r.Summary.CentralDirectorySize, r.Summary.CentralDirectoryOffset)
	if err != nil {
		return err
	}
	for i, entry := range r.Entries {
		payload := r.Payloads[i]
		_, err = fmt.Fprintf(w, "entry %d: compressed %d B (central) / %d B (local), filename %d B, extra %d B (central) / %d B (local), local header at %d\n",
			i, entry.CompressedSize, payload.CompressedSize,
			entry.FilenameLength, entry.ExtraFieldLength, payload.ExtraFieldLength,
			entry.LocalHeaderOffset)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "payload (%d bytes):\n", len(payload.Payload))
		if err != nil {
			return err
		}
		if _, err = io.WriteString(w, hex.Dump(payload.Payload)); err != nil {
			return err
		}
	}
	return nil
}
