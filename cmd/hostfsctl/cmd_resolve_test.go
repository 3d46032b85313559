package main

import (
	"testing"
)

func Test_Resolve_Prints_Container_Relative_Form(t *testing.T) {
	t.Parallel()

	c := NewCLITester(t)

	stdout := c.MustRun("resolve", "/var/lib/youki")

	if stdout != "var/lib/youki" {
		t.Errorf("resolve output = %q, want %q", stdout, "var/lib/youki")
	}
}

func Test_Resolve_Fails_For_Relative_Host_Path(t *testing.T) {
	t.Parallel()

	c := NewCLITester(t)

	stderr := c.MustFail("resolve", "var/lib")

	AssertContains(t, stderr, "invalid path")
}

func Test_Resolve_Joins_Onto_Rootfs_Literally(t *testing.T) {
	t.Parallel()

	c := NewCLITester(t)

	stdout := c.MustRun("resolve", "--rootfs", "/srv/rootfs", "/etc/hosts")

	if stdout != "/srv/rootfs/etc/hosts" {
		t.Errorf("resolve output = %q, want %q", stdout, "/srv/rootfs/etc/hosts")
	}
}

func Test_Resolve_Rejects_Relative_Fragment_With_Rootfs(t *testing.T) {
	t.Parallel()

	c := NewCLITester(t)

	stderr := c.MustFail("resolve", "--rootfs", "/srv/rootfs", "etc/hosts")

	AssertContains(t, stderr, "invalid path")
}

func Test_Resolve_Uses_Manifest_Rootfs_As_Default_Base(t *testing.T) {
	t.Parallel()

	c := NewCLITester(t)
	c.WriteFile(".hostfsctl.json", `{"rootfs": "/srv/rootfs"}`)

	stdout := c.MustRun("resolve", "/etc/hosts")

	if stdout != "/srv/rootfs/etc/hosts" {
		t.Errorf("resolve output = %q, want %q", stdout, "/srv/rootfs/etc/hosts")
	}
}

func Test_Resolve_Explicit_Empty_Rootfs_Overrides_Manifest(t *testing.T) {
	t.Parallel()

	c := NewCLITester(t)
	c.WriteFile(".hostfsctl.json", `{"rootfs": "/srv/rootfs"}`)

	stdout := c.MustRun("resolve", "--rootfs", "", "/etc/hosts")

	if stdout != "etc/hosts" {
		t.Errorf("resolve output = %q, want %q", stdout, "etc/hosts")
	}
}

func Test_Resolve_Fails_Without_Exactly_One_Path(t *testing.T) {
	t.Parallel()

	c := NewCLITester(t)

	stderr := c.MustFail("resolve")

	AssertContains(t, stderr, "exactly one path")
}
