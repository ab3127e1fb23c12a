package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/grobkit/pkg/osinfo"
)

func init() {
	rootCmd.AddCommand(newCwdCmd())
}

func newCwdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cwd",
		Short: "Print the current working directory",
		Long: `The cwd command prints the current working directory as reported
by the operating system, growing the buffer for deep directories.

Example:
  grobctl cwd
  grobctl cwd --json --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCwd()
		},
	}
}

func runCwd() error {
	wd, err := osinfo.Getwd(queryOptions("cwd"))
	if err != nil {
		return fmt.Errorf("cwd: %w", err)
	}
	return output(map[string]string{"cwd": wd}, wd)
}
