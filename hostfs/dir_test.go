//go:build linux

package hostfs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func currentUID() uint32 {
	return uint32(os.Getuid())
}

func Test_EnsureDir_Creates_Missing_Directory_With_Requested_Attributes(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "run", "youki", "c1")
	spec := DirSpec{Path: path, Owner: currentUID(), Mode: 0o700}

	err := EnsureDir(spec)
	if err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}

	if !info.IsDir() {
		t.Fatal("created path is not a directory")
	}

	if got := info.Mode().Perm(); got&0o700 != 0o700 {
		t.Errorf("mode = %04o, missing requested bits 0700", got)
	}
}

func Test_EnsureDir_Is_Idempotent_When_Spec_Already_Satisfied(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "staging")
	spec := DirSpec{Path: path, Owner: currentUID(), Mode: 0o700}

	err := EnsureDir(spec)
	if err != nil {
		t.Fatalf("first EnsureDir: %v", err)
	}

	err = EnsureDir(spec)
	if err != nil {
		t.Fatalf("second EnsureDir should be a no-op verification, got: %v", err)
	}
}

func Test_EnsureDir_Tolerates_Extra_Permission_Bits(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broad")

	err := os.Mkdir(path, 0o700)
	if err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	// Chmod explicitly so the fixture is independent of the test umask.
	err = os.Chmod(path, 0o755)
	if err != nil {
		t.Fatalf("chmod: %v", err)
	}

	err = EnsureDir(DirSpec{Path: path, Owner: currentUID(), Mode: 0o700})
	if err != nil {
		t.Errorf("extra bits beyond the requested set must be tolerated, got: %v", err)
	}
}

func Test_EnsureDir_Fails_When_Requested_Bits_Missing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "narrow")

	err := os.Mkdir(path, 0o700)
	if err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	err = os.Chmod(path, 0o700)
	if err != nil {
		t.Fatalf("chmod: %v", err)
	}

	err = EnsureDir(DirSpec{Path: path, Owner: currentUID(), Mode: 0o755})
	if !errors.Is(err, ErrDirAttributes) {
		t.Errorf("error = %v, want ErrDirAttributes", err)
	}
}

func Test_EnsureDir_Fails_When_Owner_Differs(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "owned")

	err := os.Mkdir(path, 0o700)
	if err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	// The directory exists with the right mode but is owned by us, not by
	// the requested owner.
	err = EnsureDir(DirSpec{Path: path, Owner: currentUID() + 1, Mode: 0o700})
	if !errors.Is(err, ErrDirAttributes) {
		t.Errorf("error = %v, want ErrDirAttributes", err)
	}
}

func Test_EnsureDir_Fails_When_Target_Is_A_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "file")

	err := os.WriteFile(path, []byte("x"), 0o600)
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	err = EnsureDir(DirSpec{Path: path, Owner: currentUID(), Mode: 0o600})
	if !errors.Is(err, ErrDirAttributes) {
		t.Errorf("error = %v, want ErrDirAttributes", err)
	}
}

func Test_EnsureDir_Fails_With_CreateDir_When_Parent_Is_A_File(t *testing.T) {
	t.Parallel()

	parent := filepath.Join(t.TempDir(), "blocker")

	err := os.WriteFile(parent, []byte("x"), 0o600)
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	err = EnsureDir(DirSpec{Path: filepath.Join(parent, "child"), Owner: currentUID(), Mode: 0o700})
	if !errors.Is(err, ErrCreateDir) {
		t.Errorf("error = %v, want ErrCreateDir", err)
	}
}

func Test_EnsureDir_Error_Names_The_Path(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "named")

	err := os.Mkdir(path, 0o700)
	if err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	err = EnsureDir(DirSpec{Path: path, Owner: currentUID() + 1, Mode: 0o700})
	if err == nil {
		t.Fatal("expected owner mismatch error")
	}

	if !errors.Is(err, ErrDirAttributes) {
		t.Fatalf("error = %v, want ErrDirAttributes", err)
	}

	if got := err.Error(); !strings.Contains(got, path) {
		t.Errorf("error %q should name the path %q", got, path)
	}
}
