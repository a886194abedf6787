package profile

import (
	"crypto/rand"
	"fmt"
	"os"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

// keybox seals and opens consumer secrets with a local symmetric key.
type keybox struct {
	key [32]byte
}

// loadKeybox reads the key file, creating one on first use. A new key is
// written with 0600 so only the owning user can decrypt stored secrets.
func loadKeybox(path string) (*keybox, error) {
	kb := &keybox{}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if _, err := rand.Read(kb.key[:]); err != nil {
			return nil, fmt.Errorf("generate key: %w", err)
		}
		if err := os.WriteFile(path, kb.key[:], 0o600); err != nil {
			return nil, fmt.Errorf("write key file: %w", err)
		}
		return kb, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}
	if len(data) != len(kb.key) {
		return nil, fmt.Errorf("key file %s has wrong length %d", path, len(data))
	}
	copy(kb.key[:], data)
	return kb, nil
}

func (kb *keybox) seal(secret string) ([]byte, error) {
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, err
	}
	return secretbox.Seal(nonce[:], []byte(secret), &nonce, &kb.key), nil
}

func (kb *keybox) open(sealed []byte) (string, error) {
	if len(sealed) < nonceSize {
		return "", ErrSealedSecret
	}
	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])
	plain, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, &kb.key)
	if !ok {
		return "", ErrSealedSecret
	}
	return string(plain), nil
}
