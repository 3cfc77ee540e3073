// Package main provides tests for the devreg CLI.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/devreg/internal/cli"
	"github.com/leapstack-labs/devreg/internal/cli/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(config.ResetConfig)

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	output, err := run(t, "version")
	if err != nil {
		t.Errorf("version command error = %v", err)
	}
	if !strings.Contains(output, "devreg v") {
		t.Errorf("version output should contain 'devreg v', got: %s", output)
	}
}

func TestHelpCommand(t *testing.T) {
	output, err := run(t, "--help")
	if err != nil {
		t.Errorf("help command error = %v", err)
	}

	expectedCommands := []string{"resolve", "list", "describe", "validate", "init", "snapshot", "check", "serve"}
	for _, expected := range expectedCommands {
		if !strings.Contains(output, expected) {
			t.Errorf("help output should contain '%s', got: %s", expected, output)
		}
	}
}

func TestResolveBuiltInCatalogs(t *testing.T) {
	t.Chdir(t.TempDir())

	output, err := run(t, "resolve", "stat-card", "0", "4", "--output", "json")
	if err != nil {
		t.Fatalf("resolve command error = %v", err)
	}
	if !strings.Contains(output, `"id": "stat-card-0"`) {
		t.Errorf("resolve output should contain stat-card-0, got: %s", output)
	}
	if !strings.Contains(output, `"id": "noID"`) {
		t.Errorf("resolve output should contain the sentinel, got: %s", output)
	}
}

func TestCatalogsFlag(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("groups:\n  - name: row\n    entries: [row-a, row-b]\n"), 0600); err != nil {
		t.Fatal(err)
	}

	output, err := run(t, "list", "row", "--catalogs", path, "-o", "json")
	if err != nil {
		t.Fatalf("list command error = %v", err)
	}
	if !strings.Contains(output, `"row-b"`) {
		t.Errorf("list output should contain row-b, got: %s", output)
	}
}

func TestInitThenValidate(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	if _, err := run(t, "init"); err != nil {
		t.Fatalf("init command error = %v", err)
	}

	output, err := run(t, "validate")
	if err != nil {
		t.Fatalf("validate command error = %v", err)
	}
	if !strings.Contains(output, "is valid") {
		t.Errorf("validate output should report a valid file, got: %s", output)
	}
}

func TestInvalidOutputFlag(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := run(t, "list", "-o", "yaml")
	if err == nil || !strings.Contains(err.Error(), "invalid output format") {
		t.Errorf("expected invalid output format error, got %v", err)
	}
}
