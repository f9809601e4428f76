package repository

// KeyStore persists the single API credential between sessions.
type KeyStore interface {
	// Get returns the stored credential or an empty string.
	Get() string
	// Set trims and stores the credential, overwriting any previous one.
	Set(token string)
	// Clear removes the stored credential.
	Clear()
}
