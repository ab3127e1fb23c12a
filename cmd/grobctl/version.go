package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X main.version=...".
var version = "dev"

const enginePath = "github.com/joshuapare/grobkit"

// buildInfo describes the running binary.
type buildInfo struct {
	Version  string `json:"version"`
	Engine   string `json:"engine"`
	Revision string `json:"revision,omitempty"`
	Go       string `json:"go"`
	Platform string `json:"platform"`
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion()
		},
	}
}

func runVersion() error {
	info := readBuildInfo()
	return output(info, info.String())
}

// readBuildInfo fills in what the toolchain embedded: the engine module
// version and, for VCS builds, the revision.
func readBuildInfo() buildInfo {
	info := buildInfo{
		Version:  version,
		Engine:   "unknown",
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, dep := range bi.Deps {
		if dep.Path != enginePath {
			continue
		}
		info.Engine = dep.Version
		if dep.Replace != nil {
			info.Engine = dep.Replace.Path
		}
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			info.Revision = s.Value
		}
	}
	return info
}

func (b buildInfo) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "grobctl %s\n", b.Version)
	fmt.Fprintf(&sb, "  engine: %s\n", b.Engine)
	if b.Revision != "" {
		fmt.Fprintf(&sb, "  revision: %s\n", b.Revision)
	}
	fmt.Fprintf(&sb, "  go: %s (%s)", b.Go, b.Platform)
	return sb.String()
}
