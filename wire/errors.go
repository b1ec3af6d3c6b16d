package wire

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrNullObject     = errors.New("wire: null object id")
	ErrUnissuedObject = errors.New("wire: object id was never issued")
	ErrObjectFreed    = errors.New("wire: object id already freed")

	ErrStaleMessage    = errors.New("wire: message buffer was reused")
	ErrNoHeader        = errors.New("wire: arguments appended before header")
	ErrMessageTooLarge = errors.New("wire: message exceeds maximum size")
	ErrInteriorNUL     = errors.New("wire: string contains a NUL byte")
	ErrInvalidString   = errors.New("wire: string is not valid UTF-8")
	ErrTooManyFDs      = errors.New("wire: too many file descriptors")
	ErrNoFD            = errors.New("wire: no file descriptor received for argument")

	ErrControlTruncated = errors.New("wire: ancillary data truncated, file descriptors were lost")
)

// BuildError is returned by Builder.Build. Nothing has been written to the
// connection when it is returned.
type BuildError struct {
	Desc HeaderDesc
	Err  error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("failed to build message [%s]: %v", e.Desc, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// DecodeError means a single message could not be parsed. The frame itself
// was consumed so the connection stays in sync.
type DecodeError struct {
	Desc   HeaderDesc
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode message [%s] at argument offset %d: %v", e.Desc, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// FramingError means a header could not describe a valid frame. The byte
// stream can not be resynchronized after one.
type FramingError struct {
	Header Header
	Reason string
}

func (e *FramingError) Error() string {
	return fmt.Sprintf("invalid frame for [%s] with length %d: %s", e.Header.HeaderDesc, e.Header.Size, e.Reason)
}
