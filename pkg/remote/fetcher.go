// Package remote loads ZIP archives from local paths, HTTP servers and S3
// buckets. Fetchers hand the parser a fully buffered archive; they know
// nothing about the ZIP format itself.
package remote

import (
	"context"
	"fmt"
	"io"
)

// Fetcher reads byte ranges of a remote object. A nil offset means
// "unbounded" on that side; Fetch(ctx, nil, nil) reads the whole object.
type Fetcher interface {
	Fetch(ctx context.Context, startOffset *int64, endOffset *int64) (io.ReadCloser, error)
}

// FetchAll reads the entire object into memory and returns the buffer.
func FetchAll(ctx context.Context, f Fetcher) ([]byte, error) {
	r, err := f.Fetch(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// buildRange formats an HTTP range header value for the given offsets, or
// returns nil when no range is needed.
func buildRange(startOffset *int64, endOffset *int64) *string {
	var rangeHeader *string
	if startOffset != nil && endOffset != nil {
		rangeHeader = strPtr(fmt.Sprintf("bytes=%d-%d", *startOffset, *endOffset))
	} else if startOffset != nil {
		rangeHeader = strPtr(fmt.Sprintf("bytes=%d-", *startOffset))
	} else if endOffset != nil {
		rangeHeader = strPtr(fmt.Sprintf("bytes=-%d", *endOffset))
	}
	return rangeHeader
}

func strPtr(s string) *string {
	return &s
}
