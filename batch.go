package langswap

import (
	"os"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
)

// FileResult is the outcome of localizing one file.
type FileResult struct {
	Path     string // input path
	Content  string // serialized localized document
	Language string // language the page was painted in
	Nodes    int    // indexed text nodes
	Err      error  // nil on success
}

// LocalizeFiles localizes many static pages concurrently, one Engine
// per file so no mutable state is shared across goroutines. When lang
// is a valid code it is applied as an explicit switch (and persisted
// if the options carry a store); otherwise each file runs the normal
// resolution chain. Results are returned in input order.
func LocalizeFiles(paths []string, lang string, opts ...Option) []FileResult {
	results := make([]FileResult, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			results[i] = localizeFile(path, lang, opts...)
		}(i, path)
	}
	wg.Wait()

	return results
}

// localizeFile reads, localizes and serializes a single page.
func localizeFile(path, lang string, opts ...Option) FileResult {
	res := FileResult{Path: path}

	data, err := os.ReadFile(path) // #nosec G304 - CLI tool reads user-specified files
	if err != nil {
		res.Err = &DocumentError{Message: "reading " + path, Cause: err}
		return res
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(data)))
	if err != nil {
		res.Err = &DocumentError{Message: "parsing " + path, Cause: err}
		return res
	}

	eng := New(doc, opts...)
	eng.BuildIndex()

	if lang == "" {
		eng.Localize(Source{})
	} else if !eng.SetLanguage(lang) {
		res.Err = &InvalidLanguageError{Code: lang}
		return res
	}

	content, err := eng.Render()
	if err != nil {
		res.Err = err
		return res
	}

	res.Content = content
	res.Language = eng.ActiveLanguage()
	res.Nodes = eng.Nodes()
	return res
}
