//go:build linux

package hostfs

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// EnsureProcfs verifies that path is backed by the kernel's procfs and not by
// something mounted over it.
//
// The check opens the path once and queries the filesystem type of the held
// descriptor via fstatfs. It must never re-resolve the path by name for the
// type check: a second lookup would reopen the substitution window this
// function exists to close (CVE-2019-16884, where an attacker-controlled
// filesystem mounted over /proc tricked a privileged runtime into writing
// through what it believed was a kernel interface).
//
// The result is a point-in-time assertion about the descriptor opened here;
// it is never cached. Callers should verify immediately before trusting
// anything read from the path.
func EnsureProcfs(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOpenProcfs, err)
	}
	defer func() {
		_ = f.Close()
	}()

	var st unix.Statfs_t

	err = unix.Fstatfs(int(f.Fd()), &st)
	if err != nil {
		return &os.PathError{Op: "fstatfs", Path: path, Err: err}
	}

	if st.Type != unix.PROC_SUPER_MAGIC {
		return fmt.Errorf("%w: %q reports filesystem type 0x%x", ErrNotProcfs, path, st.Type)
	}

	return nil
}
