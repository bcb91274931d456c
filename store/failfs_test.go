package store

import (
	"errors"

	"github.com/spf13/afero"
)

var errInjected = errors.New("injected filesystem failure")

// failingFs wraps a real filesystem and fails renames on demand, to
// exercise the persist-failure rollback paths. Failing the rename rather
// than the write also mirrors a crash after the temp file was written.
type failingFs struct {
	afero.Fs
	failRename bool
}

func (f *failingFs) Rename(oldname, newname string) error {
	if f.failRename {
		return errInjected
	}
	return f.Fs.Rename(oldname, newname)
}
