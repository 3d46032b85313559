// Command hostfsctl inspects and materializes the host filesystem state a
// container runtime needs before privileged setup: directories with enforced
// ownership and mode, procfs-backing checks for /proc paths, and
// host/container path coordinate conversion.
package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
)

// Build metadata, injected via -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	env := make(map[string]string, len(os.Environ()))

	for _, kv := range os.Environ() {
		// Best-effort parse of KEY=VALUE. Invalid entries are ignored.
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}

		env[key] = value
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	os.Exit(Run(os.Stdin, os.Stdout, os.Stderr, os.Args, env, sigCh))
}
