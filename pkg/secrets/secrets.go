package secrets

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/fieldworks/panelforge/pkg/envfile"
)

// Size is the number of random bytes backing each secret. The hex
// encoding doubles it on disk.
const Size = 32

// ErrEntropyUnavailable indicates the system's random source could not
// supply the requested bytes. Nothing is written when it occurs.
var ErrEntropyUnavailable = errors.New("entropy source unavailable")

// DefaultKeys are the env entries a freshly scaffolded panel expects to
// be filled before first boot.
var DefaultKeys = []string{"JWT_SECRET", "CSRF_SECRET"}

var secretValueRegex = regexp.MustCompile(`^[0-9a-f]{64}$`)

// RandomBytes returns size bytes read from the operating system CSPRNG.
func RandomBytes(size int) ([]byte, error) {
	return randomBytes(rand.Reader, size)
}

// RandomHex returns the lowercase hex encoding of size random bytes.
// The returned string is twice size characters long.
func RandomHex(size int) (string, error) {
	return randomHex(rand.Reader, size)
}

// Valid reports whether value has the shape of a provisioned secret:
// the hex encoding of Size random bytes.
func Valid(value string) bool {
	return secretValueRegex.MatchString(value)
}

func randomBytes(reader io.Reader, size int) ([]byte, error) {
	value := make([]byte, size)
	if _, err := io.ReadFull(reader, value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}

	return value, nil
}

func randomHex(reader io.Reader, size int) (string, error) {
	value, err := randomBytes(reader, size)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(value), nil
}

// Provisioner fills secret entries in an env document. All dependencies
// are explicit so callers control the key set and the entropy source.
type Provisioner struct {
	// Keys are the entries to fill. DefaultKeys when empty.
	Keys []string

	// KeepExisting skips entries that already hold a well-formed
	// secret instead of overwriting them.
	KeepExisting bool

	// Rand is the entropy source. crypto/rand when nil.
	Rand io.Reader
}

// Provision generates an independent secret for each configured key and
// rewrites that key's entry in doc. It fails without generating
// anything if a key has no entry in the document, and fails without
// modifying the document if the entropy source gives out partway.
// It returns the keys that were filled, never their values.
func (p Provisioner) Provision(doc *envfile.Document) ([]string, error) {
	keys := p.Keys
	if len(keys) == 0 {
		keys = DefaultKeys
	}
	reader := p.Rand
	if reader == nil {
		reader = rand.Reader
	}

	for _, key := range keys {
		if !doc.Has(key) {
			return nil, fmt.Errorf("%w: %s", envfile.ErrKeyNotFound, key)
		}
	}

	pending := make(map[string]string, len(keys))
	filled := make([]string, 0, len(keys))
	for _, key := range keys {
		if p.KeepExisting {
			if current, ok := doc.Get(key); ok && Valid(current) {
				continue
			}
		}

		value, err := randomHex(reader, Size)
		if err != nil {
			return nil, err
		}

		pending[key] = value
		filled = append(filled, key)
	}

	for _, key := range filled {
		if err := doc.Set(key, pending[key]); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	return filled, nil
}
