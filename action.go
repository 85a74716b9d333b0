package langswap

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// actionPattern matches the literal call pattern page authors put in
// action markers: setLanguage('xx') with single or double quotes.
var actionPattern = regexp.MustCompile(`^setLanguage\(\s*['"]([a-z]{2})['"]\s*\)$`)

// ParseAction extracts the language code from an action marker value.
// Returns an ActionError for anything that is not a setLanguage call
// with a single two-letter argument.
func ParseAction(value string) (string, error) {
	m := actionPattern.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return "", &ActionError{Value: value}
	}
	return m[1], nil
}

// Trigger resolves an action marker value into a language switch.
// Unrecognized values produce a diagnostic and no action. Reports
// whether a switch happened.
func (e *Engine) Trigger(value string) bool {
	code, err := ParseAction(value)
	if err != nil {
		e.logger.Warn("ignoring language action", "error", err)
		return false
	}
	return e.SetLanguage(code)
}

// BindActions rewrites every anchor carrying an action marker into a
// link to the current page with the recognized query parameter set,
// so a static page round-trips the switch through the request
// parameter. Markers with unrecognized values are left alone with a
// diagnostic. Returns the number of anchors bound.
func (e *Engine) BindActions() int {
	bound := 0

	e.doc.Find("a[" + ActionAttr + "]").Each(func(i int, s *goquery.Selection) {
		value, _ := s.Attr(ActionAttr)
		code, err := ParseAction(value)
		if err != nil {
			e.logger.Warn("ignoring language action", "error", err)
			return
		}
		s.SetAttr("href", "?"+e.queryParam+"="+code)
		bound++
	})

	return bound
}
