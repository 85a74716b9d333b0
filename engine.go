package langswap

import (
	"io"
	"log/slog"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// IndexedNode pairs a text node with the language dictionary parsed
// from its content. The node handle is non-owning: the engine mutates
// the node's text but the document owns its lifetime.
type IndexedNode struct {
	Node *html.Node
	Dict Dictionary
}

// Engine localizes a single document. It owns the only two pieces of
// mutable state in the package: the node index, built exactly once,
// and the active language. An Engine is not safe for concurrent use;
// callers that localize many documents create one Engine per document.
type Engine struct {
	doc     *goquery.Document
	index   []IndexedNode
	indexed bool
	active  string

	defaultLang    string
	queryParam     string
	storageKey     string
	visibilityAttr string
	store          Store
	logger         *slog.Logger
}

// Option is a functional option for configuring the Engine.
type Option func(*Engine)

// WithDefaultLanguage sets the compiled-in fallback language. Invalid
// codes are ignored; the fallback must always be a usable code.
func WithDefaultLanguage(code string) Option {
	return func(e *Engine) {
		if c := NormalizeLanguage(code); IsValidLanguage(c) {
			e.defaultLang = c
		}
	}
}

// WithStore sets the persisted-choice store.
func WithStore(s Store) Option {
	return func(e *Engine) {
		e.store = s
	}
}

// WithQueryParam sets the request parameter name carrying an explicit
// language choice.
func WithQueryParam(name string) Option {
	return func(e *Engine) {
		e.queryParam = name
	}
}

// WithStorageKey sets the key under which the chosen language is
// persisted.
func WithStorageKey(key string) Option {
	return func(e *Engine) {
		e.storageKey = key
	}
}

// WithVisibilityAttr sets the attribute marking language-conditional
// elements.
func WithVisibilityAttr(name string) Option {
	return func(e *Engine) {
		e.visibilityAttr = name
	}
}

// WithLogger sets the diagnostics logger. The default discards all
// records.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an Engine for the given document.
func New(doc *goquery.Document, opts ...Option) *Engine {
	e := &Engine{
		doc:            doc,
		defaultLang:    DefaultLanguage,
		queryParam:     DefaultQueryParam,
		storageKey:     DefaultStorageKey,
		visibilityAttr: DefaultVisibilityAttr,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// ActiveLanguage returns the current language code, or empty string
// before the first Localize/SetLanguage.
func (e *Engine) ActiveLanguage() string {
	return e.active
}

// DefaultLanguageCode returns the configured fallback language.
func (e *Engine) DefaultLanguageCode() string {
	return e.defaultLang
}

// Nodes returns the number of indexed text nodes.
func (e *Engine) Nodes() int {
	return len(e.index)
}

// Document returns the underlying document.
func (e *Engine) Document() *goquery.Document {
	return e.doc
}

// SetLanguage switches the active language: it validates the code,
// persists the choice best-effort and re-applies the whole page
// synchronously. Invalid input is rejected with a diagnostic and
// leaves both the active language and the rendered page unchanged;
// this path never panics and never returns an error to the caller.
// Reports whether the switch happened.
func (e *Engine) SetLanguage(lang string) bool {
	code := NormalizeLanguage(lang)
	if !IsValidLanguage(code) {
		e.logger.Warn("language switch rejected",
			"error", &InvalidLanguageError{Code: lang})
		return false
	}

	e.active = code

	if e.store != nil {
		if err := e.store.Set(e.storageKey, code); err != nil {
			// Best effort; an unavailable store is not a failure.
			e.logger.Debug("persisting language choice failed", "error", err)
		}
	}

	e.Apply(code)
	return true
}

// Localize runs the full startup sequence: build the index, resolve
// the initial language from src and paint the page once.
func (e *Engine) Localize(src Source) {
	e.BuildIndex()
	e.active = e.ResolveInitial(src)
	e.Apply(e.active)
}

// Render serializes the document, stamping the root element's lang
// attribute with the active language.
func (e *Engine) Render() (string, error) {
	if e.active != "" {
		htmlTag := e.doc.Find("html")
		if htmlTag.Length() > 0 {
			htmlTag.SetAttr("lang", e.active)
		}
	}

	out, err := e.doc.Html()
	if err != nil {
		return "", &DocumentError{Message: "failed to serialize HTML", Cause: err}
	}
	return out, nil
}
