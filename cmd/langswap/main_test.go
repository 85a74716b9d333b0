package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testPage = `<html><body><h1>[[ca]]Hola[[en]]Hello</h1></body></html>`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"--version"}, &stdout, &stderr)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(stdout.String(), "langswap") {
		t.Errorf("expected version output, got: %s", stdout.String())
	}
}

func TestRun_ExplicitLanguage(t *testing.T) {
	input := writeInput(t, testPage)

	var stdout, stderr bytes.Buffer
	err := run([]string{"--lang", "en", "--default", "ca", "--quiet", input}, &stdout, &stderr)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout.String(), "Hello") {
		t.Errorf("expected English output, got: %s", stdout.String())
	}
}

func TestRun_InvalidLanguage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"--lang", "nope", "input.html"}, &stdout, &stderr)

	if err == nil {
		t.Fatal("expected error for invalid language code")
	}
	if !strings.Contains(err.Error(), "invalid language code") {
		t.Errorf("expected invalid language error, got: %v", err)
	}
}

func TestRun_OutputShortFlag(t *testing.T) {
	input := writeInput(t, testPage)
	outPath := filepath.Join(t.TempDir(), "out.html")

	var stdout, stderr bytes.Buffer
	err := run([]string{"--lang", "en", "--quiet", "-o", outPath, input}, &stdout, &stderr)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), "Hello") {
		t.Errorf("expected English output file, got: %s", data)
	}
}

func TestRun_JSONOutput(t *testing.T) {
	input := writeInput(t, testPage)

	var stdout, stderr bytes.Buffer
	err := run([]string{"--lang", "en", "--quiet", "--json", input}, &stdout, &stderr)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result struct {
		File     string `json:"file"`
		Content  string `json:"content"`
		Language string `json:"language"`
		Nodes    int    `json:"nodes"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}

	if result.Language != "en" {
		t.Errorf("expected language en, got %q", result.Language)
	}
	if result.Nodes != 1 {
		t.Errorf("expected 1 node, got %d", result.Nodes)
	}
	if !strings.Contains(result.Content, "Hello") {
		t.Errorf("expected localized content, got: %s", result.Content)
	}
}

func TestRun_StoreRemembersChoice(t *testing.T) {
	dir := t.TempDir()
	storePath := filepath.Join(dir, "lang.json")

	input := writeInput(t, testPage)

	// First run chooses explicitly and persists.
	var stdout, stderr bytes.Buffer
	if err := run([]string{"--lang", "en", "--default", "ca", "--quiet",
		"--store", storePath, input}, &stdout, &stderr); err != nil {
		t.Fatalf("first run: %v", err)
	}

	// Second run resolves from the store.
	stdout.Reset()
	stderr.Reset()
	if err := run([]string{"--default", "ca", "--quiet",
		"--store", storePath, input}, &stdout, &stderr); err != nil {
		t.Fatalf("second run: %v", err)
	}

	if !strings.Contains(stdout.String(), "Hello") {
		t.Errorf("expected remembered English output, got: %s", stdout.String())
	}
}

func TestRun_BatchMode(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.html")
	b := filepath.Join(dir, "b.html")
	os.WriteFile(a, []byte(testPage), 0o644)
	os.WriteFile(b, []byte(testPage), 0o644)

	var stdout, stderr bytes.Buffer
	err := run([]string{"--lang", "en", "--quiet", a, b}, &stdout, &stderr)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, out := range []string{filepath.Join(dir, "a.en.html"), filepath.Join(dir, "b.en.html")} {
		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatalf("reading %s: %v", out, err)
		}
		if !strings.Contains(string(data), "Hello") {
			t.Errorf("expected localized %s, got: %s", out, data)
		}
	}
}

func TestRun_BatchModeJSON(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.html")
	b := filepath.Join(dir, "missing.html")
	os.WriteFile(a, []byte(testPage), 0o644)

	var stdout, stderr bytes.Buffer
	err := run([]string{"--lang", "en", "--quiet", "--json", a, b}, &stdout, &stderr)

	if err == nil {
		t.Fatal("expected error when a batch file fails")
	}

	var stats []struct {
		File  string `json:"file"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &stats); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(stats))
	}
	if stats[1].Error == "" {
		t.Error("missing file should carry an error")
	}
}

func TestRun_ServeRequiresOneFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"--serve", ":0"}, &stdout, &stderr)

	if err == nil {
		t.Fatal("expected error for --serve without a file")
	}
	if !strings.Contains(err.Error(), "exactly one HTML file") {
		t.Errorf("expected serve usage error, got: %v", err)
	}
}
