package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInvalidCodefmtRejected(t *testing.T) {
	root := newRootCmd()
	out := filepath.Join(t.TempDir(), "out.bin")
	root.SetArgs([]string{"-o", out, "-c", "bogus", "-y"})
	root.SetOut(os.Stdout)
	root.SetErr(os.Stdout)
	if err := root.Execute(); err == nil {
		t.Fatal("expected error for invalid codefmt")
	}
}

func TestDuplicateOutfileRejected(t *testing.T) {
	root := newRootCmd()
	out := filepath.Join(t.TempDir(), "out.bin")
	root.SetArgs([]string{"-o", out, "-o", out})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error for duplicate -o option")
	}
}

func TestEncodeWritesFile(t *testing.T) {
	root := newRootCmd()
	out := filepath.Join(t.TempDir(), "out.gct")
	root.SetArgs([]string{"-o", out, "-c", "gct", "-y"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("expected output file to exist: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty output file")
	}
}

func TestUnknownProgramRejected(t *testing.T) {
	root := newRootCmd()
	out := filepath.Join(t.TempDir(), "out.gct")
	root.SetArgs([]string{"-o", out, "-y", "--program", "nope"})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error for unknown program")
	}
}
