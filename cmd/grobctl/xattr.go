//go:build linux || darwin

package main

import (
	"encoding/hex"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/joshuapare/grobkit/pkg/osinfo"
)

var xattrHex bool

func init() {
	rootCmd.AddCommand(newXattrCmd())
}

func newXattrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xattr",
		Short: "Read extended attributes",
	}

	get := &cobra.Command{
		Use:   "get <path> <name>",
		Short: "Print the value of an extended attribute",
		Long: `The get command prints the value of an extended attribute. Values
that are not valid UTF-8 are printed in hex.

Example:
  grobctl xattr get file user.comment
  grobctl xattr get file user.checksum --hex`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runXattrGet(args)
		},
	}
	get.Flags().BoolVar(&xattrHex, "hex", false, "Print the value in hex")

	list := &cobra.Command{
		Use:   "list <path>",
		Short: "List the extended attributes of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runXattrList(args)
		},
	}

	cmd.AddCommand(get, list)
	return cmd
}

func runXattrGet(args []string) error {
	path, name := args[0], args[1]
	value, err := osinfo.Getxattr(path, name, queryOptions("xattr get"))
	if err != nil {
		return err
	}
	text := string(value)
	if xattrHex || !utf8.Valid(value) {
		text = hex.EncodeToString(value)
	}
	return output(map[string]string{"path": path, "name": name, "value": text}, text)
}

func runXattrList(args []string) error {
	path := args[0]
	names, err := osinfo.Listxattr(path, queryOptions("xattr list"))
	if err != nil {
		return err
	}
	if names == nil {
		names = []string{}
	}
	return output(map[string]interface{}{"path": path, "names": names}, strings.Join(names, "\n"))
}
