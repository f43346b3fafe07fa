package model

// CredentialStore persists the token, its expiry and the user snapshot
// in durable client-side storage. The three entries are written
// independently; there is no multi-key transaction. Absence is a
// normal first-class result, never an error.
type CredentialStore interface {
	// Save persists all three entries. From the caller's perspective
	// the write is atomic; a crash mid-write may still leave a partial
	// triple, which Load treats as absent.
	Save(token string, expiresAt int64, user *User) error
	// SaveToken persists only the token and its expiry.
	SaveToken(token string, expiresAt int64) error
	// SaveUser persists only the user snapshot.
	SaveUser(user *User) error
	// Token returns the stored token and expiry without requiring the
	// user snapshot to be present. Absent entries yield zero values.
	Token() (string, int64, error)
	// Load returns the last saved triple, or nil if never saved,
	// previously cleared, or incomplete.
	Load() (*StoredCredentials, error)
	// ClearToken removes the token and expiry entries only.
	ClearToken() error
	// Clear removes all three entries.
	Clear() error
}
