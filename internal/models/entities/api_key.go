package entities

// APIKey is the stored record for a service API key. Keys themselves are
// never persisted; only the SHA-256 digest is.
type APIKey struct {
	ID     string `db:"id"`
	Status bool   `db:"status"`
}
