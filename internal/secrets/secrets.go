// Package secrets encrypts stored SMTP credentials with AES-256-GCM
// under a scrypt-derived key. The wire form is iv:tag:ciphertext, each
// part base64 encoded.
package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	keySalt  = "licensure-mail-salt"
	keyLen   = 32
	nonceLen = 12
	tagLen   = 16
)

var ErrMalformedPayload = errors.New("malformed encrypted payload")

// Encryptor seals and opens credential strings with a key derived from
// the module password.
type Encryptor struct {
	aead cipher.AEAD
}

// NewEncryptor derives the AES key from the module password.
func NewEncryptor(password string) (*Encryptor, error) {
	key, err := scrypt.Key([]byte(password), []byte(keySalt), 16384, 8, 1, keyLen)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("init gcm: %w", err)
	}

	return &Encryptor{aead: aead}, nil
}

// Encrypt seals plainText into the iv:tag:ciphertext form.
func (e *Encryptor) Encrypt(plainText string) (string, error) {
	nonce := make([]byte, nonceLen)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := e.aead.Seal(nil, nonce, []byte(plainText), nil)
	data, tag := sealed[:len(sealed)-tagLen], sealed[len(sealed)-tagLen:]

	return strings.Join([]string{
		base64.StdEncoding.EncodeToString(nonce),
		base64.StdEncoding.EncodeToString(tag),
		base64.StdEncoding.EncodeToString(data),
	}, ":"), nil
}

// Decrypt opens a payload produced by Encrypt.
func (e *Encryptor) Decrypt(payload string) (string, error) {
	parts := strings.Split(payload, ":")
	if len(parts) != 3 {
		return "", ErrMalformedPayload
	}

	nonce, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return "", ErrMalformedPayload
	}
	tag, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", ErrMalformedPayload
	}
	data, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return "", ErrMalformedPayload
	}
	if len(nonce) != nonceLen || len(tag) != tagLen {
		return "", ErrMalformedPayload
	}

	plain, err := e.aead.Open(nil, nonce, append(data, tag...), nil)
	if err != nil {
		return "", fmt.Errorf("decrypt payload: %w", err)
	}

	return string(plain), nil
}
