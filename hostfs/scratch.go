package hostfs

import (
	"fmt"
	"os"
	"path/filepath"
)

// ScratchDir owns a disposable directory tree: created eagerly on
// construction, removed exactly once, either explicitly via Remove or by a
// deferred Remove at the acquisition site.
//
// A ScratchDir is the sole owner of its on-disk tree; nothing else may delete
// it while the ScratchDir is live. It is not safe for concurrent use; callers
// sharing one across goroutines must synchronize externally.
//
// The intended usage ties cleanup to the owning scope so the tree cannot leak
// on any exit path:
//
//	scratch, err := hostfs.NewScratchDir(staging)
//	if err != nil {
//		return err
//	}
//	defer scratch.Remove()
type ScratchDir struct {
	path    string
	removed bool
}

// NewScratchDir creates the directory at path (including missing parents) and
// returns a ScratchDir owning it. On return the path is an existing, writable
// directory. Creation failure wraps ErrCreateDir with the cause.
func NewScratchDir(path string) (*ScratchDir, error) {
	err := os.MkdirAll(path, 0o755)
	if err != nil {
		return nil, fmt.Errorf("%w: creating %q: %w", ErrCreateDir, path, err)
	}

	return &ScratchDir{path: path}, nil
}

// TempScratch creates a ScratchDir named name under the system temp
// directory. It is meant for test fixtures and short-lived staging areas.
func TempScratch(name string) (*ScratchDir, error) {
	return NewScratchDir(filepath.Join(os.TempDir(), name))
}

// Path returns the owned directory path.
//
// Calling Path after Remove panics: holding on to a removed scratch
// directory's path is a use-after-free-style bug in the caller, not a
// recoverable condition.
func (d *ScratchDir) Path() string {
	if d.removed {
		panic("hostfs: scratch directory used after removal")
	}

	return d.path
}

// Remove deletes the owned tree recursively and marks the ScratchDir
// removed. It is idempotent, and deletion errors are discarded: Remove runs
// on teardown paths (including deferred cleanup during an unwind) and must
// never fail the caller.
func (d *ScratchDir) Remove() {
	if d.removed {
		return
	}

	_ = os.RemoveAll(d.path)
	d.removed = true
}
