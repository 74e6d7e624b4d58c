package rawzip_test

import (
	"bytes"
	"encoding/binary"
	"reflect"
	"testing"

	"github.com/ziprobe/ziprobe/pkg/rawzip"
)

type testEntry struct {
	name    string
	extra   []byte
	payload []byte
}

func localHeader(e testEntry) []byte {
	buf := make([]byte, 30)
	binary.LittleEndian.PutUint32(buf[0:], 0x04034b50)
	binary.LittleEndian.PutUint32(buf[18:], uint32(len(e.payload)))
	binary.LittleEndian.PutUint16(buf[26:], uint16(len(e.name)))
	binary.LittleEndian.PutUint16(buf[28:], uint16(len(e.extra)))
	buf = append(buf, e.name...)
	buf = append(buf, e.extra...)
	buf = append(buf, e.payload...)
	return buf
}

func cdRecord(e testEntry, compressedSize, headerOffset uint32) []byte {
	buf := make([]byte, 46)
	binary.LittleEndian.PutUint32(buf[0:], 0x02014b50)
	binary.LittleEndian.PutUint32(buf[20:], compressedSize)
	binary.LittleEndian.PutUint16(buf[28:], uint16(len(e.name)))
	binary.LittleEndian.PutUint16(buf[30:], uint16(len(e.extra)))
	binary.LittleEndian.PutUint32(buf[42:], headerOffset)
	buf = append(buf, e.name...)
	buf = append(buf, e.extra...)
	return buf
}

func eocdRecord(entryCount uint16, cdSize, cdOffset uint32) []byte {
	buf := make([]byte, 22)
	copy(buf, rawzip.EOCDSignature)
	binary.LittleEndian.PutUint16(buf[10:], entryCount)
	binary.LittleEndian.PutUint32(buf[12:], cdSize)
	binary.LittleEndian.PutUint32(buf[16:], cdOffset)
	return buf
}

// buildArchive lays out local headers, then the central directory, then the
// EOCD trailer, the way every well-formed single-disk archive does.
func buildArchive(entries ...testEntry) []byte {
	var archive []byte
	offsets := make([]uint32, len(entries))
	for i, e := range entries {
		offsets[i] = uint32(len(archive))
		archive = append(archive, localHeader(e)...)
	}
	cdOffset := uint32(len(archive))
	for i, e := range entries {
		archive = append(archive, cdRecord(e, uint32(len(e.payload)), offsets[i])...)
	}
	cdSize := uint32(len(archive)) - cdOffset
	return append(archive, eocdRecord(uint16(len(entries)), cdSize, cdOffset)...)
}

func TestParser_SingleEntry(t *testing.T) {
	// One local header with empty filename and extra field, a 5 byte payload,
	// a matching central directory record and the EOCD trailer.
	archive := buildArchive(testEntry{payload: []byte("hello")})

	report, err := rawzip.NewParser(archive).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Summary.EntryCount != 1 {
		t.Errorf("expected 1 entry, got %d", report.Summary.EntryCount)
	}
	if len(report.Entries) != 1 || len(report.Payloads) != 1 {
		t.Fatalf("expected parallel lists of 1, got %d entries and %d payloads",
			len(report.Entries), len(report.Payloads))
	}
	if !bytes.Equal(report.Payloads[0].Payload, []byte("hello")) {
		t.Errorf("expected payload %q, got %q", "hello", report.Payloads[0].Payload)
	}
	if report.Payloads[0].CompressedSize != 5 {
		t.Errorf("expected compressed size 5, got %d", report.Payloads[0].CompressedSize)
	}
	if report.Entries[0].LocalHeaderOffset != 0 {
		t.Errorf("expected local header offset 0, got %d", report.Entries[0].LocalHeaderOffset)
	}
}

func TestParser_MultipleEntries(t *testing.T) {
	entries := []testEntry{
		{name: "a.bin", payload: []byte{0x00, 0x01, 0x02}},
		{name: "b.bin", extra: []byte{0xca, 0xfe}, payload: []byte("second payload")},
		{name: "dir/c.bin", payload: []byte{0xff}},
	}
	archive := buildArchive(entries...)

	report, err := rawzip.NewParser(archive).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Entries) != len(entries) || len(report.Payloads) != len(entries) {
		t.Fatalf("expected %d entries, got %d entries and %d payloads",
			len(entries), len(report.Entries), len(report.Payloads))
	}
	for i, e := range entries {
		if !bytes.Equal(report.Payloads[i].Payload, e.payload) {
			t.Errorf("entry %d: expected payload %x, got %x", i, e.payload, report.Payloads[i].Payload)
		}
		if int(report.Entries[i].FilenameLength) != len(e.name) {
			t.Errorf("entry %d: expected filename length %d, got %d",
				i, len(e.name), report.Entries[i].FilenameLength)
		}
		if int(report.Payloads[i].ExtraFieldLength) != len(e.extra) {
			t.Errorf("entry %d: expected extra field length %d, got %d",
				i, len(e.extra), report.Payloads[i].ExtraFieldLength)
		}
	}
}

func TestParser_LocalHeaderIsAuthoritative(t *testing.T) {
	// Central directory understates the compressed size; the local header
	// value decides how many bytes are copied.
	e := testEntry{payload: []byte("truth")}
	var archive []byte
	archive = append(archive, localHeader(e)...)
	cdOffset := uint32(len(archive))
	archive = append(archive, cdRecord(e, 2, 0)...) // lies: says 2 bytes
	cdSize := uint32(len(archive)) - cdOffset
	archive = append(archive, eocdRecord(1, cdSize, cdOffset)...)

	report, err := rawzip.NewParser(archive).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Entries[0].CompressedSize != 2 {
		t.Errorf("expected central directory size 2, got %d", report.Entries[0].CompressedSize)
	}
	if report.Payloads[0].CompressedSize != 5 {
		t.Errorf("expected local header size 5, got %d", report.Payloads[0].CompressedSize)
	}
	if !bytes.Equal(report.Payloads[0].Payload, []byte("truth")) {
		t.Errorf("expected payload %q, got %q", "truth", report.Payloads[0].Payload)
	}
}

func TestParser_FirstSignatureWins(t *testing.T) {
	// A second, later EOCD declares a bogus entry count. Only the first
	// signature in the buffer is honored.
	archive := buildArchive(testEntry{payload: []byte("hello")})
	decoy := eocdRecord(9, 0, 0xffffffff)
	crafted := append(append([]byte{}, archive...), decoy...)

	report, err := rawzip.NewParser(crafted).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Summary.EntryCount != 1 {
		t.Errorf("expected first EOCD (1 entry) to win, got %d entries", report.Summary.EntryCount)
	}
}

func TestParser_Idempotence(t *testing.T) {
	archive := buildArchive(
		testEntry{name: "x", payload: []byte("one")},
		testEntry{name: "y", payload: []byte("two")},
	)
	first, err := rawzip.NewParser(archive).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := rawzip.NewParser(archive).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("parsing the same buffer twice produced different reports")
	}
}

func TestParser_PayloadLengthMatchesDeclaredSize(t *testing.T) {
	payload := bytes.Repeat([]byte{0xab}, 97)
	archive := buildArchive(testEntry{name: "blob", payload: payload})

	report, err := rawzip.NewParser(archive).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := report.Payloads[0]
	if len(got.Payload) != int(got.CompressedSize) {
		t.Errorf("payload length %d does not match declared size %d", len(got.Payload), got.CompressedSize)
	}
	if !bytes.Equal(got.Payload, payload) {
		t.Errorf("payload bytes differ from the archived bytes")
	}
}
