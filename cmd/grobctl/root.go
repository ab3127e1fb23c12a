package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/grobkit/cmd/grobctl/logger"
	"github.com/joshuapare/grobkit/grob"
	"github.com/joshuapare/grobkit/pkg/osinfo"
)

var (
	// Global flags
	verbose     bool
	quiet       bool
	jsonOut     bool
	maxAttempts int
	useMmap     bool
)

// errAttemptLimit is returned when a query needs more attempts than --max-attempts allows.
var errAttemptLimit = errors.New("attempt limit reached")

var rootCmd = &cobra.Command{
	Use:   "grobctl",
	Short: "Query the operating system through growable buffers",
	Long: `grobctl runs operating system queries whose result size is not known
in advance. Each query starts from a fixed buffer and grows it until the
result fits; --verbose logs every attempt and allocation.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Init(logger.Options{Enabled: verbose, Level: slog.LevelDebug})
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every attempt to stderr")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		IntVar(&maxAttempts, "max-attempts", 0, "Give up after this many attempts (0 means no limit)")
	rootCmd.PersistentFlags().
		BoolVar(&useMmap, "mmap", false, "Serve large buffers from memory mappings")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// queryOptions returns the options for one query. Every attempt is logged
// and checked against --max-attempts; every allocation is logged.
func queryOptions(op string) *osinfo.Options {
	var inner grob.Allocator = grob.GoAllocator{}
	if useMmap {
		inner = grob.MapAllocator{}
	}
	return &osinfo.Options{
		Grob: &grob.Options{Allocator: loggingAllocator{op: op, inner: inner}},
		OnAttempt: func(attempt int, size uint32) error {
			logger.Debug("attempt", "op", op, "attempt", attempt, "size", size)
			if maxAttempts > 0 && attempt > maxAttempts {
				logger.Warn("giving up", "op", op, "attempts", maxAttempts)
				return fmt.Errorf("%s: %w after %d attempts", op, errAttemptLimit, maxAttempts)
			}
			return nil
		},
	}
}

// loggingAllocator logs each allocation before handing it to inner.
type loggingAllocator struct {
	op    string
	inner grob.Allocator
}

func (a loggingAllocator) Allocate(size int) []byte {
	logger.Debug("allocate", "op", a.op, "bytes", size)
	return a.inner.Allocate(size)
}

func (a loggingAllocator) Free(b []byte) {
	logger.Debug("free", "op", a.op, "bytes", len(b))
	a.inner.Free(b)
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// output prints v as JSON with --json, and text otherwise.
func output(v interface{}, text string) error {
	if jsonOut {
		return printJSON(v)
	}
	printInfo("%s\n", text)
	return nil
}
