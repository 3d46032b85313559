package main

import (
	"context"
	"errors"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/anyawal/youki/hostfs"
)

// ErrResolveArgs is returned when resolve is called without exactly one path.
var ErrResolveArgs = errors.New("resolve takes exactly one path")

// ResolveCmd creates the resolve command for path coordinate conversion.
func ResolveCmd(cfg *Config) *Command {
	flags := flag.NewFlagSet("resolve", flag.ContinueOnError)
	flags.BoolP("help", "h", false, "Show help")
	flags.String("rootfs", "", "Join the (absolute) path onto this rootfs base instead of converting")

	return &Command{
		Flags: flags,
		Usage: "resolve [flags] <path>",
		Short: "Convert a path between host and container coordinate spaces",
		Long: "Without --rootfs, print the container-relative form of an absolute host\n" +
			"path. With --rootfs (or a rootfs in the config manifest), print the\n" +
			"literal join of the base and the absolute container path. The join never\n" +
			"collapses dot segments or resolves symlinks.",
		Aliases: []string{},
		Exec: func(_ context.Context, _ io.Reader, stdout, _ io.Writer, args []string) error {
			if len(args) != 1 {
				return ErrResolveArgs
			}

			rootfs, _ := flags.GetString("rootfs")
			if !flags.Changed("rootfs") && cfg != nil {
				// Manifest rootfs is the default base; an explicit --rootfs
				// (even empty, forcing conversion) overrides it.
				rootfs = cfg.Rootfs
			}

			if rootfs != "" {
				joined, err := hostfs.JoinAbsolute(rootfs, args[0])
				if err != nil {
					return err
				}

				fprintln(stdout, joined)

				return nil
			}

			relative, err := hostfs.ContainerRelative(args[0])
			if err != nil {
				return err
			}

			fprintln(stdout, relative)

			return nil
		},
	}
}
