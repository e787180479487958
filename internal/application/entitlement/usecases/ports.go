package usecases

// TokenGenerator mints opaque download tokens. Only the hash is persisted;
// the plaintext goes into the issued URL and is never stored.
type TokenGenerator interface {
	Generate() (plaintext, hash string, err error)
}
