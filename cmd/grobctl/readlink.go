//go:build linux || darwin

package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/grobkit/pkg/osinfo"
)

func init() {
	rootCmd.AddCommand(newReadlinkCmd())
}

func newReadlinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "readlink <path>",
		Short: "Print the target of a symbolic link",
		Long: `The readlink command prints the target of a symbolic link. Long
targets are read by doubling the buffer until the target fits.

Example:
  grobctl readlink /proc/self/exe
  grobctl readlink link --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReadlink(args)
		},
	}
}

func runReadlink(args []string) error {
	path := args[0]
	target, err := osinfo.Readlink(path, queryOptions("readlink"))
	if err != nil {
		return err
	}
	return output(map[string]string{"path": path, "target": target}, target)
}
