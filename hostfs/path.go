package hostfs

import (
	"fmt"
	"strings"
)

// ContainerRelative converts a host-absolute path to its container-relative
// form by stripping exactly the single leading separator. All remaining
// components are kept byte-for-byte, including trailing separators; the
// result is intentionally not cleaned.
//
// Returns ErrInvalidPath if hostPath is relative: without an absolute anchor
// the conversion is meaningless.
func ContainerRelative(hostPath string) (string, error) {
	if !strings.HasPrefix(hostPath, "/") {
		return "", fmt.Errorf("%w: %q is relative, cannot be converted to a path in the container", ErrInvalidPath, hostPath)
	}

	return hostPath[1:], nil
}

// JoinAbsolute joins base with an absolute (or empty) fragment by literal
// string concatenation. It never collapses ".." segments, resolves symlinks,
// or otherwise reinterprets fragment; callers needing canonicalization must
// do that separately against the joined result.
//
// A non-empty relative fragment is rejected with ErrInvalidPath. Container
// configuration supplies paths that are supposed to be absolute inside the
// container; merging a relative one with path-join semantics could land
// outside the intended tree.
func JoinAbsolute(base, fragment string) (string, error) {
	if fragment != "" && !strings.HasPrefix(fragment, "/") {
		return "", fmt.Errorf("%w: cannot join %q because it is not an absolute path", ErrInvalidPath, fragment)
	}

	return base + fragment, nil
}

// CgroupPath returns the cgroup path for a container: the configured path
// when one is set, otherwise the container ID as a relative path.
func CgroupPath(configured, containerID string) string {
	if configured != "" {
		return configured
	}

	return containerID
}
