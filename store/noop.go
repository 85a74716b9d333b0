package store

// NoopStore is the store substituted when persistence is unavailable:
// every read reports absent and every write succeeds without doing
// anything. Core logic never has to branch on availability.
type NoopStore struct{}

// NewNoopStore creates a NoopStore.
func NewNoopStore() *NoopStore {
	return &NoopStore{}
}

// Get always reports absent.
func (*NoopStore) Get(string) (string, bool) {
	return "", false
}

// Set discards the value.
func (*NoopStore) Set(string, string) error {
	return nil
}

// Verify NoopStore implements Store
var _ Store = (*NoopStore)(nil)
