//go:build linux

package hostfs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/sys/unix"
)

// DirSpec describes a directory that must exist with specific attributes
// before privileged setup (for example a bind-mount target) may proceed.
type DirSpec struct {
	// Path is the target directory. Missing ancestors are created too, but
	// Mode and Owner are only verified on the leaf.
	Path string

	// Owner is the numeric user ID the leaf directory must be owned by.
	Owner uint32

	// Mode is the permission bits the leaf directory must carry. Extra bits
	// beyond Mode are tolerated, so EnsureDir cannot be used to tighten an
	// already-too-permissive directory.
	Mode os.FileMode
}

// EnsureDir creates the directory described by spec if it is missing, then
// verifies from disk that the result matches: it is a directory, owned by
// spec.Owner, with at least the permission bits of spec.Mode.
//
// The verification always re-reads metadata rather than trusting the creation
// call, since the path may have pre-existed or been altered concurrently. The
// create-then-verify sequence is still best-effort against an actor replacing
// the directory between the two steps; high-assurance callers should hold an
// open descriptor across their subsequent use.
//
// EnsureDir is idempotent: re-running against a conforming directory is a
// no-op verification.
func EnsureDir(spec DirSpec) error {
	_, err := os.Stat(spec.Path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: checking %q: %w", ErrCreateDir, spec.Path, err)
		}

		err = os.MkdirAll(spec.Path, spec.Mode)
		if err != nil {
			return fmt.Errorf("%w: creating %q: %w", ErrCreateDir, spec.Path, err)
		}
	}

	var st unix.Stat_t

	err = unix.Stat(spec.Path, &st)
	if err != nil {
		return fmt.Errorf("%w: reading metadata for %q: %w", ErrDirAttributes, spec.Path, err)
	}

	if st.Mode&unix.S_IFMT != unix.S_IFDIR {
		return fmt.Errorf("%w: %q is not a directory", ErrDirAttributes, spec.Path)
	}

	if st.Uid != spec.Owner {
		return fmt.Errorf("%w: %q is owned by uid %d, want %d", ErrDirAttributes, spec.Path, st.Uid, spec.Owner)
	}

	want := uint32(spec.Mode.Perm())
	if st.Mode&want != want {
		return fmt.Errorf("%w: %q has mode %04o, missing bits from %04o", ErrDirAttributes, spec.Path, st.Mode&0o7777, want)
	}

	return nil
}
