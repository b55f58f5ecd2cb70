// Package fileio reads and writes whole files for the editor. Loads split on '\n'; saves write a
// '\n' after every line.
package fileio

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/omarnabikhan/spire/internal/buffer"
)

// rw-rw-rw-
const cReadWriteFileMode = 0666

// ErrNotRegular is wrapped when the path names a symlink, directory or device.
var ErrNotRegular = errors.New("not a regular file")

// Error is an I/O failure on the edited file.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Stats describes what a load or save touched.
type Stats struct {
	Lines int
	Bytes int
}

// Load reads path into b. The file type is checked before anything is read.
func Load(path string, b *buffer.Buffer) (Stats, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return Stats{}, &Error{Op: "load", Path: path, Err: err}
	}
	if info.Mode()&os.ModeSymlink != 0 || !info.Mode().IsRegular() {
		return Stats{}, &Error{Op: "load", Path: path, Err: ErrNotRegular}
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return Stats{}, &Error{Op: "load", Path: path, Err: err}
	}
	if err := b.Load(Split(contents)); err != nil {
		return Stats{}, fmt.Errorf("load %s: %w", path, err)
	}
	return Stats{Lines: b.LineCount(), Bytes: len(contents)}, nil
}

// Split cuts contents into '\n' terminated records with the terminator removed. A final record
// without a terminator is kept; the empty tail after a final '\n' is not a record.
func Split(contents []byte) [][]byte {
	records := bytes.Split(contents, []byte{'\n'})
	if n := len(records); len(records[n-1]) == 0 {
		records = records[:n-1]
	}
	return records
}

// Save overwrites path with the contents of b, from offset 0. The write is not atomic: a failure
// part way through can leave the file truncated. b is never modified.
func Save(path string, b *buffer.Buffer) (Stats, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, cReadWriteFileMode)
	if err != nil {
		return Stats{}, &Error{Op: "save", Path: path, Err: err}
	}

	n, err := b.WriteTo(file)
	if err == nil {
		err = file.Sync()
	}
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return Stats{}, &Error{Op: "save", Path: path, Err: err}
	}
	return Stats{Lines: b.LineCount(), Bytes: int(n)}, nil
}
