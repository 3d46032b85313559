package main

import (
	"context"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/anyawal/youki/hostfs"
)

// CheckProcfsCmd creates the check-procfs command.
func CheckProcfsCmd(cfg *Config) *Command {
	flags := flag.NewFlagSet("check-procfs", flag.ContinueOnError)
	flags.BoolP("help", "h", false, "Show help")
	flags.BoolP("quiet", "q", false, "Quiet mode, no output")

	return &Command{
		Flags: flags,
		Usage: "check-procfs [flags] [paths...]",
		Short: "Verify paths are backed by the real procfs",
		Long: "Open each path and check the filesystem type of the held descriptor\n" +
			"against the procfs magic. Defaults to the config manifest's procfs list,\n" +
			"or /proc when the manifest has none. Exits 1 on the first failure.",
		Aliases: []string{},
		Exec: func(_ context.Context, _ io.Reader, stdout, _ io.Writer, args []string) error {
			quiet, _ := flags.GetBool("quiet")

			paths := args
			if len(paths) == 0 && cfg != nil {
				paths = cfg.Procfs
			}

			if len(paths) == 0 {
				paths = []string{"/proc"}
			}

			for _, path := range paths {
				err := hostfs.EnsureProcfs(path)
				if err != nil {
					if quiet {
						return ErrSilentExit
					}

					return err
				}

				if !quiet {
					fprintf(stdout, "%s: procfs\n", path)
				}
			}

			return nil
		},
	}
}
