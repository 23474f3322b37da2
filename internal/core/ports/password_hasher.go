package ports

// PasswordHasher provides one-way salted hashing of credentials. Hash embeds
// the salt and cost parameters in its output so Verify needs no side channel.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches hashed. A mismatch is
	// (false, nil); an error is returned only for a malformed hash value.
	// The comparison must not leak timing information.
	Verify(plaintext, hashed string) (bool, error)
}
