package langswap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempPage(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLocalizeFiles(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeTempPage(t, dir, "a.html", `<html><body><h1>[[ca]]Hola[[en]]Hello</h1></body></html>`),
		writeTempPage(t, dir, "b.html", `<html><body><p>[[ca]]Adeu[[en]]Bye</p><p>[[en]]Only</p></body></html>`),
	}

	results := LocalizeFiles(paths, "en", WithDefaultLanguage("ca"))

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	// Results come back in input order.
	if results[0].Path != paths[0] || results[1].Path != paths[1] {
		t.Fatalf("results out of order: %v, %v", results[0].Path, results[1].Path)
	}

	for _, res := range results {
		if res.Err != nil {
			t.Fatalf("%s: %v", res.Path, res.Err)
		}
		if res.Language != "en" {
			t.Errorf("%s: expected language en, got %q", res.Path, res.Language)
		}
	}

	if !strings.Contains(results[0].Content, "Hello") {
		t.Errorf("a.html should contain 'Hello', got: %s", results[0].Content)
	}
	if results[0].Nodes != 1 || results[1].Nodes != 2 {
		t.Errorf("unexpected node counts: %d, %d", results[0].Nodes, results[1].Nodes)
	}
}

func TestLocalizeFiles_MissingFile(t *testing.T) {
	dir := t.TempDir()
	good := writeTempPage(t, dir, "good.html", `<html><body><p>[[en]]Hi</p></body></html>`)
	missing := filepath.Join(dir, "missing.html")

	results := LocalizeFiles([]string{good, missing}, "en")

	if results[0].Err != nil {
		t.Errorf("good file should succeed: %v", results[0].Err)
	}
	if results[1].Err == nil {
		t.Error("missing file should report an error")
	}
}

func TestLocalizeFiles_InvalidLanguage(t *testing.T) {
	dir := t.TempDir()
	path := writeTempPage(t, dir, "page.html", `<html><body><p>[[en]]Hi</p></body></html>`)

	results := LocalizeFiles([]string{path}, "nope")

	if results[0].Err == nil {
		t.Fatal("explicit invalid language should fail the file")
	}
}

func TestLocalizeFiles_ResolvesWhenNoExplicitLanguage(t *testing.T) {
	clearLocaleEnv(t)

	dir := t.TempDir()
	path := writeTempPage(t, dir, "page.html", `<html><body><p>[[ca]]Hola[[en]]Hello</p></body></html>`)

	results := LocalizeFiles([]string{path}, "", WithDefaultLanguage("ca"))

	if results[0].Err != nil {
		t.Fatalf("unexpected error: %v", results[0].Err)
	}
	if results[0].Language != "ca" {
		t.Errorf("expected resolved default ca, got %q", results[0].Language)
	}
	if !strings.Contains(results[0].Content, "Hola") {
		t.Errorf("expected 'Hola' in output, got: %s", results[0].Content)
	}
}
