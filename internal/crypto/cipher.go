// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/crypto/argon2"
)

const (
	saltSize  = 16
	nonceSize = 12
)

var magic = []byte("BKX1")

// passphraseCipher is the private implementation of [SlotCipher].
type passphraseCipher struct {
	passphrase []byte

	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	// Key derivation is expensive, so the key of the last salt seen is kept.
	mu   sync.Mutex
	salt []byte
	key  []byte
}

// NewPassphraseCipher constructs a [SlotCipher] with the Argon2id parameters
// recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewPassphraseCipher(passphrase string) (SlotCipher, error) {
	if strings.TrimSpace(passphrase) == "" {
		return nil, ErrEmptyPassphrase
	}

	return &passphraseCipher{
		passphrase:   []byte(passphrase),
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}, nil
}

// Seal implements [SlotCipher]. The salt is drawn once per cipher and
// reused, so repeated saves do not pay for a fresh derivation.
func (c *passphraseCipher) Seal(plaintext []byte) ([]byte, error) {
	salt, key, err := c.currentKey()
	if err != nil {
		return nil, err
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, len(magic)+saltSize+nonceSize+len(plaintext)+gcm.Overhead())
	blob = append(blob, magic...)
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	return gcm.Seal(blob, nonce, plaintext, magic), nil
}

// Open implements [SlotCipher].
func (c *passphraseCipher) Open(blob []byte) ([]byte, error) {
	if !c.IsSealed(blob) || len(blob) < len(magic)+saltSize+nonceSize {
		return nil, ErrMalformedBlob
	}

	rest := blob[len(magic):]
	salt, rest := rest[:saltSize], rest[saltSize:]
	nonce, ciphertext := rest[:nonceSize], rest[nonceSize:]

	gcm, err := newGCM(c.keyFor(salt))
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, magic)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrongPassphrase, err)
	}
	return plaintext, nil
}

// IsSealed implements [SlotCipher].
func (c *passphraseCipher) IsSealed(blob []byte) bool {
	return bytes.HasPrefix(blob, magic)
}

func (c *passphraseCipher) currentKey() ([]byte, []byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.salt == nil {
		salt := make([]byte, saltSize)
		if _, err := io.ReadFull(rand.Reader, salt); err != nil {
			return nil, nil, fmt.Errorf("generate salt: %w", err)
		}
		c.salt = salt
		c.key = c.derive(salt)
	}
	return c.salt, c.key, nil
}

// keyFor returns the key for salt and adopts salt for later seals, so a
// loaded slot keeps its salt across saves.
func (c *passphraseCipher) keyFor(salt []byte) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !bytes.Equal(c.salt, salt) {
		c.salt = bytes.Clone(salt)
		c.key = c.derive(c.salt)
	}
	return c.key
}

func (c *passphraseCipher) derive(salt []byte) []byte {
	return argon2.IDKey(c.passphrase, salt, c.argonTime, c.argonMemory, c.argonThreads, c.argonKeyLen)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
