package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// sampleDocument is a three-statement program: an assignment, a sentinel
// call, and a dynamic member access.
const sampleDocument = `{
  "kind": "Program",
  "line": 1,
  "children": [{
    "kind": "StatementList",
    "line": 1,
    "children": [
      {
        "kind": "Assign",
        "op": "=",
        "line": 1,
        "children": [
          {"kind": "Identifier", "name": "a", "line": 1},
          {"kind": "NumberLiteral", "number": 1, "line": 1}
        ]
      },
      {
        "kind": "Call",
        "line": 2,
        "children": [
          {"kind": "Identifier", "name": "bagofholding", "line": 2},
          {"kind": "ArgList", "line": 2}
        ]
      },
      {
        "kind": "DynamicMember",
        "line": 3,
        "children": [
          {"kind": "Identifier", "name": "obj", "line": 3},
          {"kind": "StringLiteral", "string": "name", "line": 3}
        ]
      }
    ]
  }]
}`

func writeSampleDocument(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tree.json")
	if err := os.WriteFile(path, []byte(sampleDocument), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	return path
}

func TestRunRenderCompact(t *testing.T) {
	t.Parallel()

	path := writeSampleDocument(t)

	var buf bytes.Buffer

	err := runRender(path, "", false, false, false, &buf)
	if err != nil {
		t.Fatalf("runRender failed: %v", err)
	}

	want := "a=1;bagofholding();obj[\"name\"];\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestRunRenderPretty(t *testing.T) {
	t.Parallel()

	path := writeSampleDocument(t)

	var buf bytes.Buffer

	err := runRender(path, "", true, false, false, &buf)
	if err != nil {
		t.Fatalf("runRender failed: %v", err)
	}

	want := "a = 1;\nbagofholding();\nobj[\"name\"];\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestRunRenderReduced(t *testing.T) {
	t.Parallel()

	path := writeSampleDocument(t)

	var buf bytes.Buffer

	err := runRender(path, "", false, false, true, &buf)
	if err != nil {
		t.Fatalf("runRender failed: %v", err)
	}

	want := "a=1;obj.name;\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestRunRenderToFile(t *testing.T) {
	t.Parallel()

	path := writeSampleDocument(t)
	outPath := filepath.Join(t.TempDir(), "out.js")

	var buf bytes.Buffer

	err := runRender(path, outPath, false, false, false, &buf)
	if err != nil {
		t.Fatalf("runRender failed: %v", err)
	}

	if buf.Len() != 0 {
		t.Errorf("stdout should be empty when writing to a file, got %q", buf.String())
	}

	out, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}

	if !strings.Contains(string(out), "a=1;") {
		t.Errorf("output file content: %q", out)
	}
}

func TestRunRenderRejectsInvalidDocument(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"kind":"Block"}`), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	var buf bytes.Buffer

	err := runRender(path, "", false, false, false, &buf)
	if err == nil {
		t.Fatalf("expected validation error")
	}

	if !strings.Contains(err.Error(), "invalid document") {
		t.Errorf("error text: %v", err)
	}
}

func TestRunRenderMissingFile(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := runRender(filepath.Join(t.TempDir(), "missing.json"), "", false, false, false, &buf)
	if err == nil {
		t.Fatalf("expected read error")
	}
}
