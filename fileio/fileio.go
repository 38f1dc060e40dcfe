// Package fileio provides whole-file binary and text load/save helpers.
//
// Every operation fails soft: on any failure it logs a warning through the
// configured trace logger and returns an empty result, alongside an error
// classifying the cause (invalid name, open failure, empty transfer,
// partial transfer). Partial transfers are not failures; the data moved so
// far is still returned together with a *PartialTransferError.
package fileio

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/gavral/gamekit/core"
)

// IO performs whole-file operations against a backing filesystem,
// reporting diagnostics through a trace logger.
type IO struct {
	fs  afero.Fs
	log core.Logger
}

// New creates an IO over the given filesystem and logger. A nil fs falls
// back to the host filesystem; a nil log discards diagnostics.
func New(fs afero.Fs, log core.Logger) *IO {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if log == nil {
		log = core.NewNopLogger()
	}
	return &IO{fs: fs, log: log}
}

// LoadFileData reads an entire file into memory and returns its contents.
//
// The returned slice is allocated at the file's reported size. On a partial
// read the slice is truncated to the bytes actually read (capacity keeps
// the full allocation) and a *PartialTransferError is returned with it.
func (f *IO) LoadFileData(fileName string) ([]byte, error) {
	if fileName == "" {
		f.log.Warning("FILEIO: File name provided is not valid")
		return nil, ErrInvalidName
	}

	file, err := f.fs.Open(fileName)
	if err != nil {
		f.log.Warning("FILEIO: [%s] Failed to open file", fileName)
		return nil, fmt.Errorf("open %s: %w", fileName, err)
	}
	defer file.Close()

	size, err := fileSize(file)
	if err != nil || size <= 0 {
		f.log.Warning("FILEIO: [%s] Failed to read file", fileName)
		return nil, ErrEmptyFile
	}

	data := make([]byte, size)
	count, _ := io.ReadFull(file, data)

	if count == 0 {
		f.log.Warning("FILEIO: [%s] Failed to read file", fileName)
		return nil, ErrEmptyFile
	}

	if int64(count) != size {
		f.log.Warning("FILEIO: [%s] File partially loaded", fileName)
		return data[:count], &PartialTransferError{Path: fileName, Requested: int(size), Transferred: count}
	}

	f.log.Info("FILEIO: [%s] File loaded successfully", fileName)
	return data, nil
}

// SaveFileData writes a buffer to a file, replacing any previous contents.
//
// A partial write returns a *PartialTransferError; all other failures
// return a classifying error. Diagnostics are also logged, so existing
// callers that only watch the log stream keep working.
func (f *IO) SaveFileData(fileName string, data []byte) error {
	if fileName == "" {
		f.log.Warning("FILEIO: File name provided is not valid")
		return ErrInvalidName
	}

	file, err := f.fs.Create(fileName)
	if err != nil {
		f.log.Warning("FILEIO: [%s] Failed to open file", fileName)
		return fmt.Errorf("open %s: %w", fileName, err)
	}
	defer file.Close()

	count, err := file.Write(data)

	switch {
	case count == 0:
		f.log.Warning("FILEIO: [%s] Failed to write file", fileName)
		if err != nil {
			return fmt.Errorf("write %s: %w", fileName, err)
		}
		return ErrEmptyWrite
	case count != len(data):
		f.log.Warning("FILEIO: [%s] File partially written", fileName)
		return &PartialTransferError{Path: fileName, Requested: len(data), Transferred: count}
	}

	f.log.Info("FILEIO: [%s] File saved successfully", fileName)
	return nil
}

// LoadFileText reads an entire text file and returns its contents with
// CRLF line endings normalized to LF. The returned string's length equals
// the byte count after normalization, which may be smaller than the raw
// file size.
func (f *IO) LoadFileText(fileName string) (string, error) {
	if fileName == "" {
		f.log.Warning("FILEIO: File name provided is not valid")
		return "", ErrInvalidName
	}

	file, err := f.fs.Open(fileName)
	if err != nil {
		f.log.Warning("FILEIO: [%s] Failed to open text file", fileName)
		return "", fmt.Errorf("open %s: %w", fileName, err)
	}
	defer file.Close()

	size, err := fileSize(file)
	if err != nil || size <= 0 {
		f.log.Warning("FILEIO: [%s] Failed to read text file", fileName)
		return "", ErrEmptyFile
	}

	data := make([]byte, size)
	count, _ := io.ReadFull(file, data)

	if count == 0 {
		f.log.Warning("FILEIO: [%s] Failed to read text file", fileName)
		return "", ErrEmptyFile
	}

	// Newline translation shrinks the text below the raw file size
	text := bytes.ReplaceAll(data[:count], []byte("\r\n"), []byte("\n"))

	f.log.Info("FILEIO: [%s] Text file loaded successfully", fileName)
	return string(text), nil
}

// SaveFileText writes a string to a text file, replacing any previous
// contents.
func (f *IO) SaveFileText(fileName string, text string) error {
	if fileName == "" {
		f.log.Warning("FILEIO: File name provided is not valid")
		return ErrInvalidName
	}

	file, err := f.fs.Create(fileName)
	if err != nil {
		f.log.Warning("FILEIO: [%s] Failed to open text file", fileName)
		return fmt.Errorf("open %s: %w", fileName, err)
	}
	defer file.Close()

	if _, err := io.WriteString(file, text); err != nil {
		f.log.Warning("FILEIO: [%s] Failed to write text file", fileName)
		return fmt.Errorf("write %s: %w", fileName, err)
	}

	f.log.Info("FILEIO: [%s] Text file saved successfully", fileName)
	return nil
}

// fileSize determines a file's size by seeking to its end, restoring the
// read position afterwards. Seeking is used instead of Stat so the helper
// also works on streams whose Stat is not meaningful, such as asset
// handles.
func fileSize(file io.Seeker) (int64, error) {
	size, err := file.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	return size, nil
}
