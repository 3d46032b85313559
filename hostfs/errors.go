package hostfs

import "errors"

// Sentinel errors returned by this package. Call sites wrap them with
// additional context; match with errors.Is.
var (
	// ErrInvalidPath is returned when a path is relative where an absolute
	// path is required (or vice versa).
	ErrInvalidPath = errors.New("invalid path")

	// ErrCreateDir is returned when an underlying directory creation call
	// fails. It carries the original cause.
	ErrCreateDir = errors.New("directory creation failed")

	// ErrDirAttributes is returned when post-creation verification finds a
	// directory with the wrong owner or mode, or a non-directory at the
	// target path.
	ErrDirAttributes = errors.New("directory attribute mismatch")

	// ErrOpenProcfs is returned when a path cannot be opened for the procfs
	// backing check.
	ErrOpenProcfs = errors.New("cannot open path for procfs check")

	// ErrNotProcfs is returned when an opened path is not backed by procfs.
	ErrNotProcfs = errors.New("path is not backed by procfs")
)
