package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestRunValidateAcceptsGoodDocument(t *testing.T) {
	path := writeSampleDocument(t)

	if err := runValidate(path, false, true); err != nil {
		t.Errorf("runValidate: %v", err)
	}
}

func TestRunValidateRejectsBadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"kind":"Block"}`), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	err := runValidate(path, false, true)
	if !errors.Is(err, ErrDocumentInvalid) {
		t.Errorf("got %v, want %v", err, ErrDocumentInvalid)
	}
}

func TestConfigInitWritesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".fbjs.yaml")

	cmd := configInitCmd()
	cmd.SetArgs([]string{path})
	cmd.SetOut(io.Discard)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("config init: %v", err)
	}

	out, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	if len(out) == 0 {
		t.Errorf("config file is empty")
	}

	// A second init must refuse to clobber the file.
	cmd = configInitCmd()
	cmd.SetArgs([]string{path})
	cmd.SetOut(io.Discard)
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	if err := cmd.Execute(); err == nil {
		t.Errorf("expected error on existing file")
	}
}
