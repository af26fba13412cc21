package search

import "errors"

// ErrInvalidUTF8 is the cause of a FileReadError when the file is not valid text.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// FileReadError reports that the target file could not be read as text.
type FileReadError struct {
	Err error
}

// Error returns the underlying cause's message unchanged.
func (e *FileReadError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying cause, such as fs.ErrNotExist or ErrInvalidUTF8.
func (e *FileReadError) Unwrap() error {
	return e.Err
}
