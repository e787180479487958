package upload

import "errors"

var (
	// ErrSessionNotOpen is returned when mutating a closed session.
	ErrSessionNotOpen = errors.New("upload session is not open")

	// ErrSizeExceeded is returned when chunks exceed the declared size.
	ErrSizeExceeded = errors.New("upload exceeds declared size")

	// ErrIncompleteUpload is returned when completing before all bytes arrived.
	ErrIncompleteUpload = errors.New("upload is incomplete")
)
