package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ashgrove/swordvault/internal/vaultlog"
)

var (
	verbose bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:     "swordctl",
	Short:   "Create and inspect swordvault password container files",
	Long:    `swordctl creates and opens swordvault (.swd) containers: encrypted, hierarchical password stores with per-record AES-GCM secrets.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Accepted but has no effect; output is always plain text")
	cobra.OnInitialize(func() {
		vaultlog.Init(vaultlog.Options{Enabled: verbose, Level: slog.LevelDebug})
	})
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
