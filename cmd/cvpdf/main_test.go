package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRunWritesBundledCV(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--core-fonts"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}
	if got := stdout.String(); got != "CV successfully created: Patrick_Sicurello_CV.pdf\n" {
		t.Fatalf("unexpected stdout %q", got)
	}
	data, err := os.ReadFile(filepath.Join(dir, "Patrick_Sicurello_CV.pdf"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestRunMissingFontsLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--fonts", filepath.Join(dir, "nope")}, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "DejaVuSans.ttf") {
		t.Fatalf("expected missing font in error: %q", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Fatalf("unexpected stdout %q", stdout.String())
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no files, found %d", len(entries))
	}
}

func TestRunSourceAndOutput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "cv.md")
	md := "# Jane Doe\n\njane@example.com\n\n## Skills\n\n- Go\n"
	if err := os.WriteFile(src, []byte(md), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	out := filepath.Join(dir, "out", "..", "jane.pdf")
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--core-fonts", "--source", src, "-o", out}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "jane.pdf")); err != nil {
		t.Fatalf("expected output: %v", err)
	}
}

func TestRunPdfToStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--core-fonts", "-o", "-"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}
	if !bytes.HasPrefix(stdout.Bytes(), []byte("%PDF-")) {
		t.Fatalf("expected PDF on stdout")
	}
}

func TestRunPreview(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--preview", "-b", "-w", "72"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}
	out := stdout.String()
	for _, want := range []string{"Patrick Sicurello", "EDUCATION", "PROFESSIONAL MEMBERSHIPS"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in preview", want)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("boring preview contains escape sequences")
	}
}

func TestRunUsageErrors(t *testing.T) {
	cases := [][]string{
		{"--no-such-flag"},
		{"extra"},
		{"--preview", "--theme", "nope"},
	}
	for _, args := range cases {
		var stdout, stderr bytes.Buffer
		if code := run(args, &stdout, &stderr); code != 2 {
			t.Fatalf("%v: expected exit 2, got %d", args, code)
		}
	}
}

func TestRunMissingSource(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--core-fonts", "--source", filepath.Join(t.TempDir(), "missing.md")}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.HasPrefix(stderr.String(), "load cv: ") {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
}

func TestSourceDateEpoch(t *testing.T) {
	got, err := sourceDateEpoch("1700000000")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if want := time.Unix(1700000000, 0).UTC(); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got, err := sourceDateEpoch(""); err != nil || !got.IsZero() {
		t.Fatalf("expected zero time for empty value")
	}
	for _, bad := range []string{"abc", "-5"} {
		if _, err := sourceDateEpoch(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestResolveWidth(t *testing.T) {
	if got := resolveWidth(42); got != 42 {
		t.Fatalf("expected explicit width, got %d", got)
	}
	t.Setenv("COLUMNS", "")
	if got := resolveWidth(0); got <= 0 {
		t.Fatalf("expected positive width, got %d", got)
	}
}

func TestNormalizePath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := normalizePath("~/cv.pdf"); got != filepath.Join(home, "cv.pdf") {
		t.Fatalf("unexpected path %q", got)
	}
	if got := normalizePath("cv.pdf"); !filepath.IsAbs(got) {
		t.Fatalf("expected absolute path, got %q", got)
	}
}

func TestRunInvalidSourceReportsParseError(t *testing.T) {
	src := filepath.Join(t.TempDir(), "cv.md")
	if err := os.WriteFile(src, []byte{'#', ' ', 0xff, '\n'}, 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--core-fonts", "--source", src}, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.HasPrefix(stderr.String(), "load cv: parse markdown: ") {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
}
