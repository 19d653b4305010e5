package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/facebook/libfbjs/pkg/ast"
)

func TestRunReduceEmitsReducedJSON(t *testing.T) {
	t.Parallel()

	path := writeSampleDocument(t)

	var buf bytes.Buffer

	err := runReduce(path, "", false, false, &buf)
	if err != nil {
		t.Fatalf("runReduce failed: %v", err)
	}

	root, err := ast.DecodeJSON(buf.Bytes())
	if err != nil {
		t.Fatalf("output is not a decodable tree: %v", err)
	}

	if got := ast.RenderString(root, ast.RenderNone); got != "a=1;obj.name;" {
		t.Errorf("reduced tree renders as %q", got)
	}
}

func TestRunReduceDiff(t *testing.T) {
	t.Parallel()

	path := writeSampleDocument(t)

	var buf bytes.Buffer

	err := runReduce(path, "", true, false, &buf)
	if err != nil {
		t.Fatalf("runReduce failed: %v", err)
	}

	out := buf.String()

	if !strings.Contains(out, "-bagofholding();") {
		t.Errorf("diff misses the removed statement:\n%s", out)
	}

	if !strings.Contains(out, " a = 1;") {
		t.Errorf("diff misses the unchanged statement:\n%s", out)
	}
}

func TestRunReduceStats(t *testing.T) {
	t.Parallel()

	path := writeSampleDocument(t)

	var buf bytes.Buffer

	err := runReduce(path, "", false, true, &buf)
	if err != nil {
		t.Fatalf("runReduce failed: %v", err)
	}

	out := buf.String()

	for _, want := range []string{"KIND", "TOTAL", "StaticMember", "Source size"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output misses %q:\n%s", want, out)
		}
	}
}
