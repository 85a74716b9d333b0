package web

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"

	"github.com/PuerkitoBio/goquery"

	"github.com/ZaguanLabs/langswap"
)

// Handler serves one static HTML page localized per request. Each
// request gets a fresh document and engine (engines are
// single-document by contract), with the visitor's cookie as the
// persisted choice. A ?lang=xx request is the Switch API over HTTP:
// it persists the choice and paints the page in that language;
// otherwise the normal resolution chain runs, with the Accept-Language
// header as the environment preference.
type Handler struct {
	// Param is the query parameter name. Empty means langswap's
	// default.
	Param string

	// Logger receives engine diagnostics. Nil discards them.
	Logger *slog.Logger

	page []byte
	opts []langswap.Option
}

// NewHandler creates a handler for the given page bytes. Engine
// options apply to every request (a per-request WithStore and
// WithQueryParam are added by the handler itself).
func NewHandler(page []byte, opts ...langswap.Option) *Handler {
	return &Handler{page: page, opts: opts}
}

func (h *Handler) param() string {
	if h.Param != "" {
		return h.Param
	}
	return langswap.DefaultQueryParam
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(h.page))
	if err != nil {
		http.Error(w, "invalid source document", http.StatusInternalServerError)
		return
	}

	opts := make([]langswap.Option, 0, len(h.opts)+3)
	opts = append(opts, h.opts...)
	opts = append(opts,
		langswap.WithStore(NewCookieStore(w, r)),
		langswap.WithQueryParam(h.param()),
	)
	if h.Logger != nil {
		opts = append(opts, langswap.WithLogger(h.Logger))
	}

	eng := langswap.New(doc, opts...)
	eng.BuildIndex()

	// An explicit, valid parameter is a switch: it must persist.
	// Anything else runs the resolution chain.
	requested := langswap.NormalizeLanguage(r.URL.Query().Get(h.param()))
	if langswap.IsValidLanguage(requested) {
		eng.SetLanguage(requested)
	} else {
		eng.Localize(langswap.Source{
			URL:            r.URL,
			AcceptLanguage: r.Header.Get("Accept-Language"),
		})
	}

	eng.BindActions()

	out, err := eng.Render()
	if err != nil {
		http.Error(w, "failed to render document", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", eng.ActiveLanguage())
	w.Header().Add("Vary", "Accept-Language")
	w.Header().Add("Vary", "Cookie")
	_, _ = io.WriteString(w, out)
}
