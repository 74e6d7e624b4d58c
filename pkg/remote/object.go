package remote

import (
	"fmt"
	"net/url"
)

// Object returns a Fetcher for the given URI based on its scheme. Bare paths
// and file:// URIs resolve to the local filesystem.
func Object(uri string) (Fetcher, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return nil, ErrInvalidURI
	}
	switch parsed.Scheme {
	case "", "file", "local":
		return NewLocalFetcher(uri)
	case "http", "https":
		return NewHttpFetcher(uri)
	case "s3", "s3a":
		return NewS3Fetcher(uri)
	default:
		return nil, fmt.Errorf("%w: unknown scheme: %s", ErrInvalidURI, parsed.Scheme)
	}
}
