package rawzip

import "errors"

var (
	// ErrSignatureNotFound is returned when the buffer contains no
	// end-of-central-directory signature.
	ErrSignatureNotFound = errors.New("rawzip: end of central directory signature not found")

	// ErrTruncatedHeader is returned when the end-of-central-directory
	// record is cut off by the end of the buffer.
	ErrTruncatedHeader = errors.New("rawzip: truncated end of central directory record")

	// ErrTruncatedCentralDirectory is returned when a central directory
	// record would read past the end of the buffer.
	ErrTruncatedCentralDirectory = errors.New("rawzip: truncated central directory")

	// ErrEntryTooLarge is returned when an entry declares a compressed size
	// above the configured maximum.
	ErrEntryTooLarge = errors.New("rawzip: entry exceeds maximum compressed size")

	// ErrTruncatedPayload is returned when an entry's payload range lies
	// outside the buffer.
	ErrTruncatedPayload = errors.New("rawzip: truncated payload")

	// ErrSizeOverflow is returned when a declared size or offset does not
	// fit the platform int, so it could never address the buffer.
	ErrSizeOverflow = errors.New("rawzip: declared size overflows platform int")
)
