package langswap

import "github.com/PuerkitoBio/goquery"

// Apply rewrites every indexed node's visible text for lang and
// toggles language-conditional visibility. Both passes complete
// before Apply returns; no caller observes a half-applied page.
// Applying the same language twice is a no-op (idempotent), so rapid
// repeated switches are safe: each call repaints from the index, never
// from an assumed prior state.
func (e *Engine) Apply(lang string) {
	e.applyText(lang)
	e.applyVisibility(lang)
}

// applyText writes dict[lang], falling back to the default language's
// entry and then to empty. Nodes are only mutated when the text
// actually changes.
func (e *Engine) applyText(lang string) {
	for _, in := range e.index {
		text, ok := in.Dict[lang]
		if !ok {
			text = in.Dict[e.defaultLang]
		}
		if in.Node.Data != text {
			in.Node.Data = text
		}
	}
}

// applyVisibility hides every element carrying the visibility marker,
// then reveals exactly those whose marker value equals lang. Elements
// without the marker are untouched.
func (e *Engine) applyVisibility(lang string) {
	marked := e.doc.Find("[" + e.visibilityAttr + "]")

	marked.Each(func(i int, s *goquery.Selection) {
		s.SetAttr("hidden", "hidden")
	})

	marked.Each(func(i int, s *goquery.Selection) {
		if v, _ := s.Attr(e.visibilityAttr); v == lang {
			s.RemoveAttr("hidden")
		}
	})
}
