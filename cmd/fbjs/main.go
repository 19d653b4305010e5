// Package main provides the fbjs CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/facebook/libfbjs/pkg/version"
)

var cfgFile string //nolint:gochecknoglobals // CLI flag variable

func main() {
	rootCmd := &cobra.Command{
		Use:   "fbjs",
		Short: "JavaScript AST renderer and reducer",
		Long:  `fbjs renders, folds and validates JavaScript syntax trees stored as JSON documents.`,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.fbjs.yaml)")

	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(reduceCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "fbjs %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}

	return cmd
}
