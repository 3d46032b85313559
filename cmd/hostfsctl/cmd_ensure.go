package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/anyawal/youki/hostfs"
)

// Static errors for ensure input validation.
var (
	// ErrNothingToEnsure is returned when neither flags nor the manifest
	// provide any directories.
	ErrNothingToEnsure = errors.New("no directories to ensure (use --path or a config manifest)")
	// ErrInvalidMode is returned when a mode value is not a valid octal permission string.
	ErrInvalidMode = errors.New("invalid mode: expected octal permission bits such as 0755")
)

// EnsureCmd creates the ensure command for materializing directory specs.
func EnsureCmd(cfg *Config) *Command {
	flags := flag.NewFlagSet("ensure", flag.ContinueOnError)
	flags.BoolP("help", "h", false, "Show help")
	flags.StringArray("path", nil, "Directory to ensure (repeatable)")
	flags.Uint32("owner", uint32(os.Getuid()), "Required numeric owner for --path directories")
	flags.String("mode", "0755", "Required permission bits for --path directories (octal)")
	flags.Bool("dry-run", false, "Print directory specs without touching the filesystem")
	flags.Bool("debug", false, "Print spec resolution details to stderr")

	return &Command{
		Flags: flags,
		Usage: "ensure [flags]",
		Short: "Create and verify directories with enforced owner and mode",
		Long: "Materialize the directories from the config manifest and any --path flags,\n" +
			"creating missing ones and verifying owner and permission bits from disk.\n" +
			"Verification tolerates extra permission bits but never a missing one.",
		Aliases: []string{},
		Exec: func(_ context.Context, _ io.Reader, stdout, stderr io.Writer, _ []string) error {
			debugEnabled, _ := flags.GetBool("debug")

			var debug *DebugLogger
			if debugEnabled {
				debug = NewDebugLogger(stderr)
			} else {
				debug = NewDebugLogger(nil)
			}

			specs, err := collectDirSpecs(cfg, flags, debug)
			if err != nil {
				return err
			}

			if len(specs) == 0 {
				return ErrNothingToEnsure
			}

			dryRun, _ := flags.GetBool("dry-run")
			if dryRun {
				for _, spec := range specs {
					fprintf(stdout, "%s owner=%d mode=%04o\n", spec.Path, spec.Owner, spec.Mode)
				}

				return nil
			}

			for _, spec := range specs {
				err := hostfs.EnsureDir(spec)
				if err != nil {
					return err
				}
			}

			return nil
		},
	}
}

// collectDirSpecs resolves manifest entries and --path flags into directory
// specs. Manifest entries come first, flag paths after, mirroring config
// precedence (flags are the most specific input).
func collectDirSpecs(cfg *Config, flags *flag.FlagSet, debug *DebugLogger) ([]hostfs.DirSpec, error) {
	var specs []hostfs.DirSpec

	debug.Section("directory specs")

	if cfg != nil {
		for _, entry := range cfg.Directories {
			spec, err := entry.toSpec(cfg.EffectiveCwd)
			if err != nil {
				return nil, err
			}

			debug.DirSpec(spec, "config")
			specs = append(specs, spec)
		}
	}

	flagPaths, _ := flags.GetStringArray("path")
	if len(flagPaths) == 0 {
		return specs, nil
	}

	owner, _ := flags.GetUint32("owner")

	modeValue, _ := flags.GetString("mode")

	mode, err := parseMode(modeValue)
	if err != nil {
		return nil, err
	}

	workDir := ""
	if cfg != nil {
		workDir = cfg.EffectiveCwd
	}

	for _, path := range flagPaths {
		spec := hostfs.DirSpec{Path: resolveAgainst(workDir, path), Owner: owner, Mode: mode}
		debug.DirSpec(spec, "flag")
		specs = append(specs, spec)
	}

	return specs, nil
}

// toSpec converts a manifest entry into a directory spec, applying defaults.
func (e DirEntry) toSpec(workDir string) (hostfs.DirSpec, error) {
	if strings.TrimSpace(e.Path) == "" {
		return hostfs.DirSpec{}, errors.New("manifest directory entry has empty path")
	}

	owner := uint32(os.Getuid())
	if e.Owner != nil {
		owner = *e.Owner
	}

	modeValue := e.Mode
	if modeValue == "" {
		modeValue = "0755"
	}

	mode, err := parseMode(modeValue)
	if err != nil {
		return hostfs.DirSpec{}, fmt.Errorf("directory %q: %w", e.Path, err)
	}

	return hostfs.DirSpec{Path: resolveAgainst(workDir, e.Path), Owner: owner, Mode: mode}, nil
}

// parseMode parses an octal permission string like "0755" or "700".
func parseMode(value string) (os.FileMode, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(value), "0o")

	bits, err := strconv.ParseUint(trimmed, 8, 32)
	if err != nil || bits > 0o777 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, value)
	}

	return os.FileMode(bits), nil
}

// resolveAgainst resolves a possibly-relative path against workDir.
func resolveAgainst(workDir, path string) string {
	if filepath.IsAbs(path) || workDir == "" {
		return path
	}

	return filepath.Join(workDir, path)
}
