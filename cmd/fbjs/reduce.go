package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/facebook/libfbjs/pkg/ast"
)

func reduceCmd() *cobra.Command {
	var output string

	var showDiff, showStats bool

	cmd := &cobra.Command{
		Use:   "reduce <file.json|->",
		Short: "Fold constant expressions in an AST JSON document",
		Long: `Fold constant expressions in an AST JSON document and write the
reduced tree back as JSON.

Examples:
  fbjs reduce tree.json                 # Print the reduced tree
  fbjs reduce --diff tree.json          # Show a source-level diff instead
  fbjs reduce --stats tree.json         # Show node counts before and after
  fbjs reduce -o reduced.json tree.json # Save to file`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReduce(args[0], output, showDiff, showStats, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "print a diff of the rendered source instead of JSON")
	cmd.Flags().BoolVar(&showStats, "stats", false, "print node counts before and after reduction")

	return cmd
}

func runReduce(inputPath, output string, showDiff, showStats bool, writer io.Writer) error {
	data, label, err := readDocument(inputPath)
	if err != nil {
		return err
	}

	before, err := loadTree(data, label)
	if err != nil {
		return err
	}

	// Reduction rewrites the tree in place, so the pre-reduction snapshot is
	// decoded separately from the same document.
	after, err := ast.DecodeJSON(data)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", label, err)
	}

	after = ast.Reduce(after)

	writer, closeOutput, err := openOutput(output, writer)
	if err != nil {
		return err
	}
	defer closeOutput() //nolint:errcheck // best-effort close on the success path

	switch {
	case showDiff:
		return writeSourceDiff(before, after, writer)
	case showStats:
		return writeReduceStats(before, after, writer)
	default:
		encoded, encodeErr := ast.EncodeJSON(after)
		if encodeErr != nil {
			return fmt.Errorf("failed to encode reduced tree: %w", encodeErr)
		}

		_, writeErr := fmt.Fprintf(writer, "%s\n", encoded)
		if writeErr != nil {
			return fmt.Errorf("failed to write output: %w", writeErr)
		}

		return nil
	}
}

// writeSourceDiff renders both trees pretty-printed and prints a line-based
// text diff between them.
func writeSourceDiff(before, after ast.Node, writer io.Writer) error {
	sourceBefore := ast.RenderString(before, ast.RenderPretty)
	sourceAfter := ast.RenderString(after, ast.RenderPretty)

	dmp := diffmatchpatch.New()
	beforeRunes, afterRunes, lines := dmp.DiffLinesToRunes(sourceBefore, sourceAfter)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(beforeRunes, afterRunes, false), lines)

	for _, diff := range diffs {
		prefix := " "

		switch diff.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffEqual:
		}

		for _, line := range strings.Split(strings.TrimSuffix(diff.Text, "\n"), "\n") {
			_, err := fmt.Fprintf(writer, "%s%s\n", prefix, line)
			if err != nil {
				return fmt.Errorf("failed to write diff: %w", err)
			}
		}
	}

	return nil
}

// writeReduceStats prints per-kind node counts before and after reduction,
// plus the rendered source sizes.
func writeReduceStats(before, after ast.Node, writer io.Writer) error {
	countsBefore := ast.CountKinds(before)
	countsAfter := ast.CountKinds(after)

	kinds := make([]string, 0, len(countsBefore))
	for kind := range countsBefore {
		kinds = append(kinds, kind)
	}

	for kind := range countsAfter {
		if _, seen := countsBefore[kind]; !seen {
			kinds = append(kinds, kind)
		}
	}

	sort.Strings(kinds)

	tbl := table.NewWriter()
	tbl.SetOutputMirror(writer)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Kind", "Before", "After"})

	var totalBefore, totalAfter int

	for _, kind := range kinds {
		tbl.AppendRow(table.Row{
			kind,
			humanize.Comma(int64(countsBefore[kind])),
			humanize.Comma(int64(countsAfter[kind])),
		})

		totalBefore += countsBefore[kind]
		totalAfter += countsAfter[kind]
	}

	tbl.AppendFooter(table.Row{
		"Total",
		humanize.Comma(int64(totalBefore)),
		humanize.Comma(int64(totalAfter)),
	})
	tbl.Render()

	sizeBefore := len(ast.RenderString(before, ast.RenderNone))
	sizeAfter := len(ast.RenderString(after, ast.RenderNone))

	_, err := fmt.Fprintf(writer, "Source size: %s -> %s\n",
		humanize.Bytes(uint64(sizeBefore)), humanize.Bytes(uint64(sizeAfter)))
	if err != nil {
		return fmt.Errorf("failed to write stats: %w", err)
	}

	return nil
}
