package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/facebook/libfbjs/internal/config"
	"github.com/facebook/libfbjs/pkg/ast"
)

func renderCmd() *cobra.Command {
	var output string

	var pretty, keepLines, reduce bool

	cmd := &cobra.Command{
		Use:   "render <file.json|->",
		Short: "Render an AST JSON document back to JavaScript source",
		Long: `Render an AST JSON document back to JavaScript source.

Examples:
  fbjs render tree.json                 # Compact output
  fbjs render -p tree.json              # Pretty-printed output
  fbjs render --keep-lines tree.json    # Preserve original line numbers
  fbjs render -r tree.json              # Fold constants before rendering
  cat tree.json | fbjs render -         # Render from stdin
  fbjs render -o out.js tree.json       # Save to file`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("pretty") {
				pretty = cfg.Render.Pretty
			}

			if !cmd.Flags().Changed("keep-lines") {
				keepLines = cfg.Render.KeepLines
			}

			return runRender(args[0], output, pretty, keepLines, reduce, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "pretty-print with indentation and spacing")
	cmd.Flags().BoolVar(&keepLines, "keep-lines", false, "pad output so statements keep their source lines")
	cmd.Flags().BoolVarP(&reduce, "reduce", "r", false, "fold constant expressions before rendering")

	return cmd
}

func runRender(inputPath, output string, pretty, keepLines, reduce bool, writer io.Writer) error {
	data, label, err := readDocument(inputPath)
	if err != nil {
		return err
	}

	root, err := loadTree(data, label)
	if err != nil {
		return err
	}

	if reduce {
		root = ast.Reduce(root)
	}

	mode := ast.RenderNone
	if pretty {
		mode |= ast.RenderPretty
	}

	if keepLines {
		mode |= ast.RenderKeepLines
	}

	writer, closeOutput, err := openOutput(output, writer)
	if err != nil {
		return err
	}
	defer closeOutput() //nolint:errcheck // best-effort close on the success path

	_, err = fmt.Fprintln(writer, ast.RenderString(root, mode))
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
