//go:build windows

package main

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"github.com/joshuapare/grobkit/pkg/osinfo"
)

var (
	whoamiFormat   string
	hostnameFormat string
)

func init() {
	rootCmd.AddCommand(newWhoamiCmd(), newHostnameCmd(), newModuleCmd(), newAdaptersCmd())
}

func newWhoamiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Print the name of the current user",
		Long: `The whoami command prints the name of the current user.

Formats: sam (DOMAIN\user), display, upn (user@domain).

Example:
  grobctl whoami
  grobctl whoami --format upn`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhoami()
		},
	}
	cmd.Flags().StringVar(&whoamiFormat, "format", "sam", "Name format: sam, display or upn")
	return cmd
}

func runWhoami() error {
	formats := map[string]uint32{
		"sam":     osinfo.UserSamCompatible,
		"display": osinfo.UserDisplay,
		"upn":     osinfo.UserPrincipal,
	}
	format, ok := formats[whoamiFormat]
	if !ok {
		return fmt.Errorf("unknown format %q", whoamiFormat)
	}
	name, err := osinfo.UserName(format, queryOptions("whoami"))
	if err != nil {
		return err
	}
	return output(map[string]string{"user": name}, name)
}

func newHostnameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hostname",
		Short: "Print the name of the computer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHostname()
		},
	}
	cmd.Flags().StringVar(&hostnameFormat, "format", "dns", "Name format: dns or fqdn")
	return cmd
}

func runHostname() error {
	formats := map[string]uint32{
		"dns":  osinfo.ComputerDNSHostname,
		"fqdn": osinfo.ComputerPhysicalDNSFullyQualified,
	}
	format, ok := formats[hostnameFormat]
	if !ok {
		return fmt.Errorf("unknown format %q", hostnameFormat)
	}
	name, err := osinfo.ComputerName(format, queryOptions("hostname"))
	if err != nil {
		return err
	}
	return output(map[string]string{"hostname": name}, name)
}

func newModuleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "module [name]",
		Short: "Print the path of a loaded module",
		Long: `The module command prints the full path of a module loaded into
grobctl, or of grobctl itself when no name is given.

Example:
  grobctl module
  grobctl module kernel32.dll`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModule(args)
		},
	}
}

func runModule(args []string) error {
	var name string
	if len(args) > 0 {
		name = args[0]
	}
	path, err := osinfo.ModuleFileName(name, queryOptions("module"))
	if err != nil {
		return err
	}
	return output(map[string]string{"module": name, "path": path}, path)
}

func newAdaptersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "adapters",
		Short: "List network adapters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdapters()
		},
	}
}

func runAdapters() error {
	adapters, err := osinfo.AdapterNames(queryOptions("adapters"))
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(adapters)
	}
	for _, a := range adapters {
		printInfo("%-40s %s\n", a.FriendlyName, net.HardwareAddr(a.HardwareAddr))
		printInfo("  %s (index %d, mtu %d)\n", a.Description, a.Index, a.MTU)
	}
	return nil
}
