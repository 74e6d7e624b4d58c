// Package rawzip parses the structural metadata of a fully buffered ZIP
// archive — end-of-central-directory record, central directory, local file
// headers — and exposes each entry's raw compressed payload. It performs no
// decompression and no CRC verification, and does not support ZIP64, split
// archives or encryption.
//
// Every field in the buffer is treated as attacker-controlled: all multi-byte
// reads are bounds-checked, payload allocations are capped by a configurable
// size policy, and any violation aborts the parse with a typed error. There
// is no partial-success mode.
package rawzip

import (
	"log/slog"
	"time"
)

// DefaultMaxCompressedSize is the per-entry compressed size ceiling applied
// when no override is configured.
const DefaultMaxCompressedSize = 128

// Report is the result of one parse: the archive summary plus the entry and
// payload lists, index-aligned in central directory order.
type Report struct {
	Summary  ArchiveSummary
	Entries  []CentralDirectoryEntry
	Payloads []PayloadRecord
}

// Parser decodes ZIP metadata out of a single in-memory buffer. The zero
// value is not usable; construct with NewParser.
type Parser struct {
	buf               sliceBuffer
	maxCompressedSize uint32
}

// Option configures a Parser.
type Option func(*Parser)

// WithMaxCompressedSize overrides the per-entry compressed size ceiling.
func WithMaxCompressedSize(n uint32) Option {
	return func(p *Parser) {
		p.maxCompressedSize = n
	}
}

// NewParser returns a Parser over buf. The buffer is read, never written;
// the caller must not mutate it until parsing is done.
func NewParser(buf []byte, opts ...Option) *Parser {
	p := &Parser{
		buf:               buf,
		maxCompressedSize: DefaultMaxCompressedSize,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse runs the full pipeline: locate the end-of-central-directory record,
// walk the central directory, extract every payload. The returned report
// owns all of its data; parsing the same buffer again yields an identical
// report.
func (p *Parser) Parse() (*Report, error) {
	start := time.Now()
	summary, err := findEOCD(p.buf)
	if err != nil {
		return nil, err
	}
	entries, err := walkCentralDirectory(p.buf, summary, p.maxCompressedSize)
	if err != nil {
		return nil, err
	}
	payloads, err := extractPayloads(p.buf, entries, p.maxCompressedSize)
	if err != nil {
		return nil, err
	}
	slog.Debug("parsed archive",
		"entries", len(entries),
		"buffer_bytes", len(p.buf),
		"took_ms", time.Since(start).Milliseconds())
	return &Report{
		Summary:  summary,
		Entries:  entries,
		Payloads: payloads,
	}, nil
}
