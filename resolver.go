package langswap

import (
	"net/url"
	"os"

	"golang.org/x/text/language"
)

// Source carries the external reads the resolver consults. Both
// fields are optional; a zero Source resolves from the store, the
// process environment and the compiled default.
type Source struct {
	// URL is the current navigable location; the recognized query
	// parameter is read from it.
	URL *url.URL

	// AcceptLanguage is the environment-reported language preference,
	// in Accept-Language header syntax. When empty, POSIX locale
	// environment variables are consulted instead.
	AcceptLanguage string
}

// localeEnvVars are consulted in order when no Accept-Language
// preference is available.
var localeEnvVars = []string{"LC_ALL", "LC_MESSAGES", "LANG", "LANGUAGE"}

// ResolveInitial computes the startup language. First valid candidate
// wins: the explicit request parameter, the persisted prior choice,
// the environment preference, then the compiled-in default. It
// mutates nothing; callers seed the active language with the result
// (Localize does this).
func (e *Engine) ResolveInitial(src Source) string {
	if src.URL != nil {
		if code := NormalizeLanguage(src.URL.Query().Get(e.queryParam)); IsValidLanguage(code) {
			return code
		}
	}

	if e.store != nil {
		if v, ok := e.store.Get(e.storageKey); ok {
			if code := NormalizeLanguage(v); IsValidLanguage(code) {
				return code
			}
		}
	}

	if code := preferredLanguage(src.AcceptLanguage); IsValidLanguage(code) {
		return code
	}

	// Process locale only stands in for the environment when there is
	// no navigable location: a request's environment is its headers,
	// not the server's locale.
	if src.URL == nil && src.AcceptLanguage == "" {
		if code := detectEnvironmentLanguage(); IsValidLanguage(code) {
			return code
		}
	}

	return e.defaultLang
}

// preferredLanguage extracts the base language of the most preferred
// Accept-Language entry (e.g. "de-DE,de;q=0.9" → "de").
func preferredLanguage(header string) string {
	if header == "" {
		return ""
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}

	base, conf := tags[0].Base()
	if conf == language.No {
		return ""
	}
	return NormalizeLanguage(base.String())
}

// detectEnvironmentLanguage reads the locale from the process
// environment (e.g. LANG=ca_ES.UTF-8 → "ca").
func detectEnvironmentLanguage() string {
	for _, key := range localeEnvVars {
		if val := os.Getenv(key); val != "" {
			return NormalizeLanguage(val)
		}
	}
	return ""
}
