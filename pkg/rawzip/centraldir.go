package rawzip

import (
	"fmt"
	"log/slog"
)

// Central directory record layout. Each record is 46 fixed bytes followed by
// the filename, the extra field and the comment, in that order.
const (
	cdFixedRecordSize         = 46
	cdCompressedSizeOffset    = 20
	cdFilenameLengthOffset    = 28
	cdExtraFieldLengthOffset  = 30
	cdLocalHeaderOffsetOffset = 42
)

// CentralDirectoryEntry describes one archived file as recorded in the
// central directory.
type CentralDirectoryEntry struct {
	CompressedSize    uint32
	LocalHeaderOffset uint32
	FilenameLength    uint16
	ExtraFieldLength  uint16
}

// walkCentralDirectory decodes exactly summary.EntryCount records starting at
// the declared central directory offset. Any record reaching past the buffer
// or declaring a compressed size above maxCompressedSize aborts the walk.
func walkCentralDirectory(buf sliceBuffer, summary ArchiveSummary, maxCompressedSize uint32) ([]CentralDirectoryEntry, error) {
	cursor, err := toInt(uint64(summary.CentralDirectoryOffset))
	if err != nil {
		return nil, fmt.Errorf("central directory offset %d: %w", summary.CentralDirectoryOffset, err)
	}
	start := cursor

	entries := make([]CentralDirectoryEntry, 0, summary.EntryCount)
	for i := 0; i < int(summary.EntryCount); i++ {
		compressedSize, ok := buf.u32(cursor + cdCompressedSizeOffset)
		if !ok {
			return nil, fmt.Errorf("entry %d at offset %d: %w", i, cursor, ErrTruncatedCentralDirectory)
		}
		filenameLength, ok := buf.u16(cursor + cdFilenameLengthOffset)
		if !ok {
			return nil, fmt.Errorf("entry %d at offset %d: %w", i, cursor, ErrTruncatedCentralDirectory)
		}
		extraFieldLength, ok := buf.u16(cursor + cdExtraFieldLengthOffset)
		if !ok {
			return nil, fmt.Errorf("entry %d at offset %d: %w", i, cursor, ErrTruncatedCentralDirectory)
		}
		localHeaderOffset, ok := buf.u32(cursor + cdLocalHeaderOffsetOffset)
		if !ok {
			return nil, fmt.Errorf("entry %d at offset %d: %w", i, cursor, ErrTruncatedCentralDirectory)
		}

		if compressedSize > maxCompressedSize {
			return nil, fmt.Errorf("entry %d compressed size %d exceeds maximum %d: %w",
				i, compressedSize, maxCompressedSize, ErrEntryTooLarge)
		}

		entries = append(entries, CentralDirectoryEntry{
			CompressedSize:    compressedSize,
			LocalHeaderOffset: localHeaderOffset,
			FilenameLength:    filenameLength,
			ExtraFieldLength:  extraFieldLength,
		})
		cursor += cdFixedRecordSize + int(filenameLength) + int(extraFieldLength)
	}

	// The walk is driven by EntryCount alone. The declared directory size is
	// not trusted for anything, but disagreement is worth surfacing.
	if consumed := cursor - start; consumed != int(summary.CentralDirectorySize) {
		slog.Warn("central directory size mismatch",
			"declared_bytes", summary.CentralDirectorySize,
			"consumed_bytes", consumed,
			"entries", summary.EntryCount)
	}
	return entries, nil
}
