package internal

import (
	"io"
	"io/fs"
)

const (
	// O_ACCMODE is the mask for access modes (O_RDONLY, O_WRONLY, O_RDWR).
	O_ACCMODE = 3
)

// File is an open descriptor exposed through the standard io interfaces.
// It extends fs.File (which only supports read-related operations) with
// writing, positioning and truncation.
type File interface {
	fs.File
	io.Writer
	io.Seeker
	io.ReaderAt
	io.WriterAt
	// Name returns the name the descriptor was opened or adopted under.
	Name() string
	// Truncate changes the size of the file.
	// It returns an error if the file was not opened with write permissions.
	Truncate(size int64) error
}
