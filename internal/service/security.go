package service

import (
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/token"
)

// Security bundles the cryptographic components shared by the services.
// They are built once at startup and are read-only afterwards.
type Security struct {
	Cipher crypto.EmailCipher
	Index  crypto.EmailIndex
	Hasher crypto.PasswordHasher
	Signer *token.Signer
}

// NewSecurity derives the email cipher key and builds the index, hasher
// and token signer from cfg.
func NewSecurity(cfg config.App) (Security, error) {
	cipher, err := crypto.NewEmailCipher(cfg.CipherPassword, cfg.CipherSalt)
	if err != nil {
		return Security{}, fmt.Errorf("error creating email cipher: %w", err)
	}

	index, err := crypto.NewEmailIndex(cfg.EmailIndexKey)
	if err != nil {
		return Security{}, fmt.Errorf("error creating email index: %w", err)
	}

	signer, err := token.NewSigner(cfg.TokenSignKey, cfg.TokenSignAlgorithm, cfg.TokenIssuer)
	if err != nil {
		return Security{}, fmt.Errorf("error creating token signer: %w", err)
	}

	return Security{
		Cipher: cipher,
		Index:  index,
		Hasher: crypto.NewPasswordHasher(cfg.HashIterations),
		Signer: signer,
	}, nil
}
