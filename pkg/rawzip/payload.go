package rawzip

import "fmt"

// Local file header layout: 30 fixed bytes, then the filename and the extra
// field, then the compressed payload.
const (
	localFixedHeaderSize        = 30
	localCompressedSizeOffset   = 18
	localExtraFieldLengthOffset = 28
)

// PayloadRecord holds the raw compressed bytes of one entry, sized exactly by
// the local file header. Payload is arbitrary binary data, not text.
type PayloadRecord struct {
	CompressedSize   uint32
	ExtraFieldLength uint16
	Payload          []byte
}

// extractPayloads follows each entry's local header offset and copies out the
// payload bytes. The compressed size and extra field length are re-read from
// the local header, which is authoritative and may differ from the central
// directory copy; the size policy is therefore enforced again on the re-read
// value before it sizes an allocation.
func extractPayloads(buf sliceBuffer, entries []CentralDirectoryEntry, maxCompressedSize uint32) ([]PayloadRecord, error) {
	records := make([]PayloadRecord, 0, len(entries))
	for i, entry := range entries {
		header, err := toInt(uint64(entry.LocalHeaderOffset))
		if err != nil {
			return nil, fmt.Errorf("entry %d local header offset %d: %w", i, entry.LocalHeaderOffset, err)
		}

		extraFieldLength, ok := buf.u16(header + localExtraFieldLengthOffset)
		if !ok {
			return nil, fmt.Errorf("entry %d local header at offset %d: %w", i, header, ErrTruncatedPayload)
		}
		compressedSize, ok := buf.u32(header + localCompressedSizeOffset)
		if !ok {
			return nil, fmt.Errorf("entry %d local header at offset %d: %w", i, header, ErrTruncatedPayload)
		}
		if compressedSize > maxCompressedSize {
			return nil, fmt.Errorf("entry %d compressed size %d (local header) exceeds maximum %d: %w",
				i, compressedSize, maxCompressedSize, ErrEntryTooLarge)
		}

		payloadOffset := header + localFixedHeaderSize + int(entry.FilenameLength) + int(extraFieldLength)
		size, err := toInt(uint64(compressedSize))
		if err != nil {
			return nil, fmt.Errorf("entry %d compressed size %d: %w", i, compressedSize, err)
		}
		payload, ok := buf.bytes(payloadOffset, size)
		if !ok {
			return nil, fmt.Errorf("entry %d payload range [%d, %d): %w",
				i, payloadOffset, payloadOffset+size, ErrTruncatedPayload)
		}

		records = append(records, PayloadRecord{
			CompressedSize:   compressedSize,
			ExtraFieldLength: extraFieldLength,
			Payload:          payload,
		})
	}
	return records, nil
}
