package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

type cmdOutput struct {
	stdout string
	stderr string
}

// execute runs a freshly built command so flag state never leaks between tests.
func execute(t *testing.T, run func(*cobra.Command, []string) error, register func(*cobra.Command), args ...string) (cmdOutput, error) {
	t.Helper()
	cmd := &cobra.Command{Use: "test", RunE: run, SilenceUsage: true, SilenceErrors: true}
	registerGlobalFlags(cmd)
	if register != nil {
		register(cmd)
	}
	cfg := writeConfig(t, t.TempDir(), "")
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(append([]string{"--config", cfg, "--color", "off"}, args...))
	err := cmd.Execute()
	return cmdOutput{stdout: stdout.String(), stderr: stderr.String()}, err
}

func TestTokenizeExpr(t *testing.T) {
	out, err := execute(t, runTokenize, registerTokenizeFlags, "--expr", `2 \times x`)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out.stdout, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 token lines, got:\n%s", out.stdout)
	}
	if !strings.Contains(lines[1], `Mul`) {
		t.Errorf("second token line = %q", lines[1])
	}
	if out.stderr != "" {
		t.Errorf("unexpected stderr: %q", out.stderr)
	}
}

func TestTokenizeReportsDiagnostic(t *testing.T) {
	out, err := execute(t, runTokenize, registerTokenizeFlags, "--expr", "x + @")
	if !errors.Is(err, errDiagnostics) {
		t.Fatalf("expected errDiagnostics, got %v", err)
	}
	want := "error: unexpected character '@'\n --> 1:5\n  |\n 1 | x + @\n  |     ^\n"
	if out.stderr != want {
		t.Fatalf("stderr:\n%q\nwant:\n%q", out.stderr, want)
	}
	if out.stdout != "" {
		t.Errorf("unexpected stdout: %q", out.stdout)
	}
}

func TestTokenizeFilesJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.tex")
	if err := os.WriteFile(path, []byte("1 + 2"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := execute(t, runTokenize, registerTokenizeFlags, "--format", "json", path)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(out.stdout), "[") || !strings.Contains(out.stdout, `"kind"`) {
		t.Fatalf("unexpected JSON output:\n%s", out.stdout)
	}
}

func TestTokenizeFileDiagnosticShowsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.tex")
	if err := os.WriteFile(path, []byte("x + @"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := execute(t, runTokenize, registerTokenizeFlags, path)
	if !errors.Is(err, errDiagnostics) {
		t.Fatalf("expected errDiagnostics, got %v", err)
	}
	want := " --> " + filepath.ToSlash(path) + ":1:5\n"
	if !strings.Contains(out.stderr, want) {
		t.Fatalf("stderr %q does not contain %q", out.stderr, want)
	}
}

func TestTokenizeStdinDiagnosticHasBareLocation(t *testing.T) {
	cmd := &cobra.Command{Use: "test", RunE: runTokenize, SilenceUsage: true, SilenceErrors: true}
	registerGlobalFlags(cmd)
	registerTokenizeFlags(cmd)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader("1 \\nope"))
	cmd.SetArgs([]string{"--config", writeConfig(t, t.TempDir(), ""), "--color", "off"})
	if err := cmd.Execute(); !errors.Is(err, errDiagnostics) {
		t.Fatalf("expected errDiagnostics, got %v", err)
	}
	if !strings.Contains(stderr.String(), "\n --> 1:3\n") {
		t.Fatalf("stderr = %q", stderr.String())
	}
}

func TestTokenizeMissingFile(t *testing.T) {
	_, err := execute(t, runTokenize, registerTokenizeFlags, filepath.Join(t.TempDir(), "missing.tex"))
	if err == nil || errors.Is(err, errDiagnostics) {
		t.Fatalf("expected load error, got %v", err)
	}
}

func TestTokenizeUnknownFormat(t *testing.T) {
	_, err := execute(t, runTokenize, registerTokenizeFlags, "--format", "xml", "--expr", "1")
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("expected unknown format error, got %v", err)
	}
}

func TestCheckShort(t *testing.T) {
	out, err := execute(t, runCheck, registerCheckFlags, "--diag-format", "short", "--expr", `\frac`)
	if !errors.Is(err, errDiagnostics) {
		t.Fatalf("expected errDiagnostics, got %v", err)
	}
	if !strings.HasPrefix(out.stderr, "<expr>:1:1: LEX1006: ") {
		t.Fatalf("stderr = %q", out.stderr)
	}
}

func TestCheckOK(t *testing.T) {
	out, err := execute(t, runCheck, registerCheckFlags, "--expr", "(1 + 2) * 3")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if out.stdout != "<expr>: ok (8 tokens)\n" {
		t.Fatalf("stdout = %q", out.stdout)
	}

	out, err = execute(t, runCheck, registerCheckFlags, "--quiet", "--expr", "1")
	if err != nil {
		t.Fatalf("check --quiet: %v", err)
	}
	if out.stdout != "" {
		t.Fatalf("quiet stdout = %q", out.stdout)
	}
}

func TestCommandsList(t *testing.T) {
	var buf bytes.Buffer
	commandsCmd.SetOut(&buf)
	defer commandsCmd.SetOut(nil)
	if err := commandsCmd.RunE(commandsCmd, nil); err != nil {
		t.Fatalf("commands: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, `\times`) || !strings.Contains(got, `\div`) {
		t.Fatalf("commands output = %q", got)
	}
}

func TestCheckUsesConfigDiagFormat(t *testing.T) {
	cfg := writeConfig(t, t.TempDir(), "[output]\nformat = \"msgpack\"\ndiag_format = \"short\"\n")
	out, err := execute(t, runCheck, registerCheckFlags, "--config", cfg, "--expr", "1 + @")
	if !errors.Is(err, errDiagnostics) {
		t.Fatalf("expected errDiagnostics, got %v", err)
	}
	if out.stderr != "<expr>:1:5: LEX1001: unexpected character '@'\n" {
		t.Fatalf("stderr = %q", out.stderr)
	}

	// an explicit flag wins over the file
	out, _ = execute(t, runCheck, registerCheckFlags, "--config", cfg, "--diag-format", "pretty", "--expr", "1 + @")
	if !strings.HasPrefix(out.stderr, "error: unexpected character '@'\n") {
		t.Fatalf("stderr = %q", out.stderr)
	}
}
