package main

import (
	"fmt"
	"io"
	"os"

	"github.com/facebook/libfbjs/pkg/ast"
	"github.com/facebook/libfbjs/pkg/ast/spec"
)

// readDocument reads an AST JSON document from a file path or stdin when the
// path is "-". The returned label names the source for diagnostics.
func readDocument(path string) ([]byte, string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "stdin", fmt.Errorf("failed to read stdin: %w", err)
		}

		return data, "stdin", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	return data, path, nil
}

// loadTree validates and decodes an AST JSON document into a tree.
func loadTree(data []byte, label string) (ast.Node, error) {
	err := spec.Validate(data)
	if err != nil {
		return nil, fmt.Errorf("invalid document %s: %w", label, err)
	}

	root, err := ast.DecodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", label, err)
	}

	return root, nil
}

// openOutput returns the writer for command output. A non-empty path replaces
// the fallback writer with a freshly created file; the caller must invoke the
// returned closer.
func openOutput(path string, fallback io.Writer) (io.Writer, func() error, error) {
	if path == "" {
		return fallback, func() error { return nil }, nil
	}

	outputFile, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return outputFile, outputFile.Close, nil
}
