package rawzip

import "bytes"

// EOCDSignature marks the end-of-central-directory record.
var EOCDSignature = []byte{0x50, 0x4b, 0x05, 0x06}

// Field offsets relative to the signature. The record continues past +20
// (comment length, comment bytes) but nothing after the central directory
// offset is consumed here.
const (
	eocdEntryCountOffset      = 10
	eocdDirectorySizeOffset   = 12
	eocdDirectoryOffsetOffset = 16
	eocdFixedFieldsEnd        = 20
)

// ArchiveSummary is the archive-level metadata recovered from the
// end-of-central-directory record.
type ArchiveSummary struct {
	EntryCount             uint16
	CentralDirectorySize   uint32
	CentralDirectoryOffset uint32
}

// findEOCD scans forward for the first end-of-central-directory signature and
// decodes the summary fields behind it. A crafted buffer may contain several
// signatures; only the first one is honored.
func findEOCD(buf sliceBuffer) (ArchiveSummary, error) {
	for i := 0; i < len(buf)-len(EOCDSignature); i++ {
		if !bytes.Equal(buf[i:i+len(EOCDSignature)], EOCDSignature) {
			continue
		}
		if !buf.has(i, eocdFixedFieldsEnd) {
			return ArchiveSummary{}, ErrTruncatedHeader
		}
		entryCount, _ := buf.u16(i + eocdEntryCountOffset)
		directorySize, _ := buf.u32(i + eocdDirectorySizeOffset)
		directoryOffset, _ := buf.u32(i + eocdDirectoryOffsetOffset)
		return ArchiveSummary{
			EntryCount:             entryCount,
			CentralDirectorySize:   directorySize,
			CentralDirectoryOffset: directoryOffset,
		}, nil
	}
	return ArchiveSummary{}, ErrSignatureNotFound
}
