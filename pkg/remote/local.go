package remote

import (
	"context"
	"io"
	"net/url"
	"os"
	"path"
)

type LocalFetcher struct {
	handle *os.File
}

func NewLocalFetcher(uri string) (*LocalFetcher, error) {
	filePath, err := localParseUri(uri)
	if err != nil {
		return nil, err
	}
	handle, err := os.Open(filePath)
	if os.IsNotExist(err) {
		return nil, ErrDoesNotExist
	} else if err != nil {
		return nil, err
	}
	return &LocalFetcher{handle: handle}, nil
}

func (l *LocalFetcher) Fetch(_ context.Context, startOffset *int64, endOffset *int64) (io.ReadCloser, error) {
	size, err := l.size()
	if err != nil {
		return nil, err
	}

	start := int64(0)
	limit := size
	switch {
	case startOffset == nil && endOffset != nil:
		// suffix range: the last *endOffset bytes
		start = max(size-*endOffset, 0)
		limit = size - start
	case startOffset != nil && endOffset != nil:
		start = *startOffset
		limit = *endOffset + 1 - start
	case startOffset != nil:
		start = *startOffset
		limit = size - start
	}

	return &localReader{
		original:    l.handle,
		limitReader: io.NewSectionReader(l.handle, start, limit),
	}, nil
}

func (l *LocalFetcher) size() (int64, error) {
	info, err := l.handle.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

type localReader struct {
	original    io.Closer
	limitReader io.Reader
}

func (l *localReader) Read(p []byte) (n int, err error) {
	return l.limitReader.Read(p)
}

func (l *localReader) Close() error {
	return l.original.Close()
}

func localParseUri(uri string) (string, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return "", ErrInvalidURI
	}
	return path.Clean(path.Join(parsed.Host, parsed.Path)), nil
}
