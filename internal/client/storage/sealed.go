package storage

import (
	"context"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/dmitrijs2005/usersconsole/internal/common"
)

// SaltKey holds the argon2 salt of a sealed store in the clear.
const SaltKey = "sealSalt"

const saltSize = 16

// ErrUnsealFailed is returned by SealedStore.Get when a value cannot be
// decrypted: wrong passphrase, tampering or a value written unsealed.
var ErrUnsealFailed = errors.New("cannot unseal stored value")

// SealedStore encrypts values with XChaCha20-Poly1305 before they reach the
// wrapped Store. Each value is base64(nonce || ciphertext) and is bound to
// its key, so a value copied under another key does not open.
type SealedStore struct {
	inner Store
	aead  cipher.AEAD
}

// Seal wraps inner with a key derived from passphrase. The salt is read from
// inner, or generated and saved on first use.
func Seal(ctx context.Context, inner Store, passphrase []byte) (*SealedStore, error) {
	if len(passphrase) == 0 {
		return nil, errors.New("empty storage passphrase")
	}

	salt, err := loadSalt(ctx, inner)
	if err != nil {
		return nil, err
	}

	key := deriveKey(passphrase, salt)
	defer common.WipeByteArray(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	return &SealedStore{inner: inner, aead: aead}, nil
}

func loadSalt(ctx context.Context, inner Store) ([]byte, error) {
	encoded, err := inner.Get(ctx, SaltKey)
	if err == nil {
		salt, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil || len(salt) != saltSize {
			return nil, fmt.Errorf("stored salt is malformed")
		}
		return salt, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("read salt: %w", err)
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	if err := inner.Set(ctx, SaltKey, base64.StdEncoding.EncodeToString(salt)); err != nil {
		return nil, fmt.Errorf("save salt: %w", err)
	}
	return salt, nil
}

func deriveKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, chacha20poly1305.KeySize)
}

func (s *SealedStore) seal(key, value string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(value)+s.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	out := s.aead.Seal(nonce, nonce, []byte(value), []byte(key))
	return base64.StdEncoding.EncodeToString(out), nil
}

func (s *SealedStore) open(key, sealed string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil || len(raw) < s.aead.NonceSize() {
		return "", fmt.Errorf("key %s: %w", key, ErrUnsealFailed)
	}
	nonce, ciphertext := raw[:s.aead.NonceSize()], raw[s.aead.NonceSize():]
	plain, err := s.aead.Open(nil, nonce, ciphertext, []byte(key))
	if err != nil {
		return "", fmt.Errorf("key %s: %w", key, ErrUnsealFailed)
	}
	return string(plain), nil
}

func (s *SealedStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.inner.Get(ctx, key)
	if err != nil {
		return "", err
	}
	return s.open(key, v)
}

func (s *SealedStore) Set(ctx context.Context, key, value string) error {
	v, err := s.seal(key, value)
	if err != nil {
		return err
	}
	return s.inner.Set(ctx, key, v)
}

func (s *SealedStore) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, key)
}

func (s *SealedStore) SetMany(ctx context.Context, values map[string]string) error {
	sealed := make(map[string]string, len(values))
	for k, v := range values {
		sv, err := s.seal(k, v)
		if err != nil {
			return err
		}
		sealed[k] = sv
	}
	return s.inner.SetMany(ctx, sealed)
}

func (s *SealedStore) DeleteMany(ctx context.Context, keys ...string) error {
	return s.inner.DeleteMany(ctx, keys...)
}

func (s *SealedStore) Close() error {
	return s.inner.Close()
}
