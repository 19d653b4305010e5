package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/facebook/libfbjs/internal/config"
)

// defaultConfigPath is where `config init` writes the starter file.
const defaultConfigPath = ".fbjs.yaml"

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage fbjs configuration",
	}

	cmd.AddCommand(configInitCmd())

	return cmd
}

func configInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter config file with the built-in defaults",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigPath
			if len(args) == 1 {
				path = args[0]
			}

			err := config.WriteDefault(path)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)

			return nil
		},
	}

	return cmd
}
