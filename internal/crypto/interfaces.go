package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns all client-side key material handling. It knows
// nothing about the network, the database, or users; its single job is to
// generate and protect keys.
//
// Scheme:
//
//	Salt, DEK = GenerateEncryptionSalt() + GenerateDEK()
//	KEK       = GenerateKEK(password, salt)
//	EncDEK    = GetEncryptedDEK(DEK, KEK)
//	AuthHash  = GenerateAuthHash(KEK, authSalt)
type KeyChainService interface {
	// GenerateEncryptionSalt generates a random 16-byte (128-bit) salt.
	// The salt is not a secret; it exists so that equal passwords derive
	// different KEKs.
	GenerateEncryptionSalt() ([]byte, error)

	// GenerateDEK generates a random 32-byte (256-bit) data-encryption key.
	// The DEK encrypts all vault data and never leaves the client in
	// plaintext.
	GenerateDEK() ([]byte, error)

	// GenerateKEK derives a key-encryption key from the master password and
	// salt via Argon2id. The KEK exists only in client memory.
	GenerateKEK(masterPassword string, salt []byte) []byte

	// GetEncryptedDEK wraps the DEK with the KEK using AES-GCM. The result
	// (nonce || ciphertext) is safe to persist: without the KEK it is just
	// random noise.
	GetEncryptedDEK(DEK, KEK []byte) ([]byte, error)

	// GenerateAuthHash computes SHA-256(KEK || authSalt). The fixed authSalt
	// domain-separates the authentication proof from the KEK itself, so the
	// verifier can compare hashes without ever learning the KEK.
	GenerateAuthHash(KEK []byte, authSalt string) []byte

	// DecryptDEK unwraps the encrypted DEK using the KEK.
	// It expects the input blob to be in the format: nonce || ciphertext.
	// Returns the original DEK or an error if authentication fails (e.g., wrong password/KEK).
	DecryptDEK(encryptedDEK, KEK []byte) ([]byte, error)

	// DeriveStorageKey stretches a configured device secret into a 256-bit
	// key used to encrypt local snapshots at rest. Deterministic for the
	// same secret.
	DeriveStorageKey(secret string) []byte

	// EncryptData serializes the given value to JSON and encrypts it with the key.
	// Returns a base64-encoded blob (nonce || ciphertext) safe to persist.
	EncryptData(data any, key []byte) (string, error)

	// DecryptData decrypts a base64-encoded blob with the key and unmarshals
	// the result into the target pointer (same as json.Unmarshal).
	DecryptData(encryptedB64 string, key []byte, target any) error
}
