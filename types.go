package langswap

// Dictionary maps a two-letter language code to the display text
// authored for that language.
type Dictionary map[string]string

const (
	// DefaultLanguage is the fallback language when nothing else is
	// configured or resolvable.
	DefaultLanguage = "en"

	// DefaultQueryParam is the request parameter carrying an explicit
	// language choice (e.g. ?lang=en).
	DefaultQueryParam = "lang"

	// DefaultStorageKey is the fixed key under which the last chosen
	// language is persisted.
	DefaultStorageKey = "langswap.lang"

	// DefaultVisibilityAttr marks elements whose visibility depends on
	// the active language. An element is shown only when the attribute
	// value equals the active code.
	DefaultVisibilityAttr = "data-lang"

	// ActionAttr marks interactive elements whose value is a language
	// switch call, e.g. data-lang-action="setLanguage('en')".
	ActionAttr = "data-lang-action"

	// SkipAttr excludes an element and its subtree from indexing.
	SkipAttr = "data-no-localize"
)

// IgnoredTags contains HTML tags whose text content is never indexed.
var IgnoredTags = map[string]bool{
	"script":   true,
	"style":    true,
	"code":     true,
	"pre":      true,
	"textarea": true,
	"noscript": true,
}

// Store is the interface for persisting the last chosen language.
// Implementations live in the store subpackage; any of them may be
// unavailable at runtime, in which case Get reports absent and Set is
// a no-op. The engine never treats a store failure as fatal.
type Store interface {
	// Get retrieves the persisted value. Returns empty string and
	// false if no value exists or the store is unavailable.
	Get(key string) (string, bool)

	// Set persists a value. Errors are advisory; callers are expected
	// to swallow them.
	Set(key string, value string) error
}
