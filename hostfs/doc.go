// Package hostfs provides the host-filesystem safety primitives used during
// container setup: coordinate-space conversion between host-absolute and
// container-relative paths, directory creation with verified ownership and
// permission bits, procfs-backing verification for paths obtained from /proc,
// and owned disposable scratch directories.
//
// # Threat Model
//
// Each primitive encodes one narrow invariant whose violation is a known
// vulnerability class:
//
//   - JoinAbsolute rejects relative fragments from untrusted container
//     configuration instead of interpreting them, so a crafted fragment cannot
//     escape the rootfs prefix through path-merge semantics. The result is a
//     literal concatenation; canonicalization and containment checks are a
//     separate, later step.
//   - EnsureDir never trusts the attributes implied by the creation call. It
//     re-reads metadata from disk and verifies directory-ness, owner, and mode
//     before the caller proceeds to privileged operations.
//   - EnsureProcfs queries the filesystem type of a descriptor it already
//     holds, never a path it would have to resolve a second time, closing the
//     mount-substitution window (CVE-2019-16884).
//
// # Platform / Concurrency
//
// Directory and procfs verification are Linux-only (see the build tags on the
// relevant files). All operations are synchronous and keep no shared state;
// the only concurrency that matters is other processes racing the filesystem,
// which is addressed (or explicitly documented as best-effort) per primitive.
package hostfs
