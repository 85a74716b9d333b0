// Package web adapts the langswap engine to HTTP: a cookie-backed
// persisted-choice store and a handler that serves a static page
// localized per request.
package web

import (
	"net/http"
	"strings"

	"github.com/ZaguanLabs/langswap"
)

// cookieMaxAge keeps a remembered choice for one year.
const cookieMaxAge = 365 * 24 * 60 * 60

// CookieStore is a langswap.Store over one request/response pair: the
// persisted key becomes a cookie name. Reads come from the request,
// writes go to the response. A visitor with cookies disabled simply
// never sends one back, which degrades to the no-store behavior.
type CookieStore struct {
	w http.ResponseWriter
	r *http.Request
}

// NewCookieStore creates a store bound to one request/response pair.
func NewCookieStore(w http.ResponseWriter, r *http.Request) *CookieStore {
	return &CookieStore{w: w, r: r}
}

// Get reads the cookie named key from the request.
func (s *CookieStore) Get(key string) (string, bool) {
	c, err := s.r.Cookie(cookieName(key))
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

// Set writes the cookie named key on the response.
func (s *CookieStore) Set(key string, value string) error {
	http.SetCookie(s.w, &http.Cookie{
		Name:     cookieName(key),
		Value:    value,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// cookieName makes a storage key usable as a cookie name. Dots are
// legal in cookie names but trip up some proxies, so they are
// replaced.
func cookieName(key string) string {
	return strings.ReplaceAll(key, ".", "_")
}

// Verify CookieStore implements Store
var _ langswap.Store = (*CookieStore)(nil)
