package langswap

import "fmt"

// InvalidLanguageError indicates a language code that is not exactly
// two lowercase ASCII letters after normalization.
type InvalidLanguageError struct {
	Code string
}

func (e *InvalidLanguageError) Error() string {
	return fmt.Sprintf("invalid language code %q", e.Code)
}

// ActionError indicates an action marker value that does not match the
// setLanguage call pattern.
type ActionError struct {
	Value string
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("unrecognized language action %q", e.Value)
}

// StoreError indicates a persistence failure. Store failures never
// surface past the engine; this type exists so store implementations
// can still report what went wrong to anyone who asks.
type StoreError struct {
	Message string
	Cause   error
}

func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("store error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("store error: %s", e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

// DocumentError indicates a document parse or serialization failure.
type DocumentError struct {
	Message string
	Cause   error
}

func (e *DocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("document error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("document error: %s", e.Message)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}
