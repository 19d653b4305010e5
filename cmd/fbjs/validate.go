package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/facebook/libfbjs/pkg/ast/spec"
)

// exitCodeValidationFailure is the exit code for validation failures.
const exitCodeValidationFailure = 2

// ErrDocumentInvalid reports that a document failed schema validation.
var ErrDocumentInvalid = errors.New("document is not a valid AST")

func validateCmd() *cobra.Command {
	var colorize, nocolor bool

	cmd := &cobra.Command{
		Use:   "validate <file.json|->",
		Short: "Validate an AST JSON document against the tree schema",
		Long: `Validate an AST JSON document against the canonical tree schema.

Examples:
  fbjs validate tree.json
  fbjs validate - < tree.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0], colorize, nocolor)
		},
	}

	cmd.Flags().BoolVar(&colorize, "color", false, "force colored output")
	cmd.Flags().BoolVar(&nocolor, "no-color", false, "disable colored output")

	return cmd
}

func runValidate(inputPath string, colorize, nocolor bool) error {
	if nocolor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	} else if colorize {
		color.NoColor = false //nolint:reassign // intentional override of library global
	}

	data, label, err := readDocument(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read input: %v\n", err)
		os.Exit(exitCodeValidationFailure)
	}

	violations, err := spec.Violations(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Schema validation error: %v\n", err)
		os.Exit(exitCodeValidationFailure)
	}

	if len(violations) == 0 {
		color.New(color.FgGreen).Fprintf(os.Stdout, "AST is valid (%s)\n", label)

		return nil
	}

	color.New(color.FgRed).Fprintf(os.Stdout, "AST validation failed (%s)\n", label)
	fmt.Fprintf(os.Stdout, "\nErrors:\n")

	for _, violation := range violations {
		color.New(color.FgRed).Fprintf(os.Stdout, "  - %s\n", violation)
	}

	return fmt.Errorf("%w: %s", ErrDocumentInvalid, label)
}
