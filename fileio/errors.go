package fileio

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidName is returned when the file name is empty.
	ErrInvalidName = errors.New("file name provided is not valid")

	// ErrEmptyFile is returned when a load finds no bytes to read.
	ErrEmptyFile = errors.New("no bytes read from file")

	// ErrEmptyWrite is returned when a save moves no bytes.
	ErrEmptyWrite = errors.New("no bytes written to file")
)

// PartialTransferError reports an operation that completed without an I/O
// error but moved fewer bytes than requested. The partially transferred
// data is still returned alongside it; callers may treat it as a warning.
type PartialTransferError struct {
	Path        string
	Requested   int
	Transferred int
}

func (e *PartialTransferError) Error() string {
	return fmt.Sprintf("partial transfer on %s: %d of %d bytes", e.Path, e.Transferred, e.Requested)
}
