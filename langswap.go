// Package langswap swaps the visible language of a rendered HTML page
// in place.
//
// Page authors embed every language variant of a text directly in the
// page using [[xx]] markup, where xx is a two-letter language code:
//
//	<h1>[[ca]]Hola[[en]]Hello[[es]]Hola</h1>
//
// The engine scans the document once, builds a per-text-node language
// dictionary, resolves the active language from a priority chain
// (request parameter, persisted choice, environment preference,
// compiled default) and rewrites the visible text. Elements carrying a
// data-lang attribute are shown only when their value matches the
// active language.
//
// Basic usage:
//
//	import (
//	    "net/url"
//	    "strings"
//
//	    "github.com/PuerkitoBio/goquery"
//	    "github.com/ZaguanLabs/langswap"
//	    "github.com/ZaguanLabs/langswap/store"
//	)
//
//	func main() {
//	    doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    eng := langswap.New(doc,
//	        langswap.WithDefaultLanguage("ca"),
//	        langswap.WithStore(store.NewFileStore("lang.json")),
//	    )
//
//	    u, _ := url.Parse("https://example.org/?lang=en")
//	    eng.Localize(langswap.Source{URL: u})
//
//	    html, _ := eng.Render()
//	    fmt.Println(html) // <h1>Hello</h1> ...
//	}
//
// Switching later is a single call that re-applies the whole page:
//
//	eng.SetLanguage("es")
package langswap
