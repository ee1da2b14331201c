package fileinput

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jcorbin/m3c/internal/runeio"
)

// Stdin is the file name that stands for standard input.
const Stdin = "-"

// Location names a character in an Input file.
type Location struct {
	Name string
	runeio.Pos
}

// String formats the location as "name:line:column", one based.
func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Pos) }

// Input is a named source stream.
type Input struct {
	Name string
	io.Reader
	closer io.Closer
	stdin  bool
}

// Open opens the named file, or wraps stdin for the name "-"; closing such
// an Input leaves stdin open.
func Open(name string, stdin io.Reader) (*Input, error) {
	if name == Stdin {
		return &Input{Name: runeio.NameOf(stdin, "<stdin>"), Reader: stdin, stdin: true}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return &Input{Name: name, Reader: f, closer: f}, nil
}

// At returns the location of a position within the input.
func (in *Input) At(pos runeio.Pos) Location { return Location{in.Name, pos} }

// IsStdin returns true if the input was opened as "-".
func (in *Input) IsStdin() bool { return in.stdin }

// Close closes the underlying file, if any.
func (in *Input) Close() error {
	if in.closer != nil {
		return in.closer.Close()
	}
	return nil
}

// ReplaceFile writes data to name through a temporary file in the same
// directory, renamed into place, keeping the original file mode.
func ReplaceFile(name string, data []byte) (rerr error) {
	info, err := os.Stat(name)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if rerr != nil {
			os.Remove(tmp.Name())
		}
	}()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), name)
}
