package secrets

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldworks/panelforge/pkg/envfile"
)

const sampleEnv = "# Server\nPORT=3000\nJWT_SECRET=\nCSRF_SECRET=\nDATABASE_URL=\"file:./dev.db\"\n"

func TestRandomHex(t *testing.T) {
	value, err := RandomHex(Size)
	require.NoError(t, err)

	assert.Len(t, value, 64)
	assert.True(t, Valid(value), "generated value should be a well-formed secret")
}

func TestRandomHexIndependent(t *testing.T) {
	a, err := RandomHex(Size)
	require.NoError(t, err)
	b, err := RandomHex(Size)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestRandomBytes(t *testing.T) {
	value, err := RandomBytes(Size)
	require.NoError(t, err)
	assert.Len(t, value, Size)
}

func TestValid(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{
			name:     "well-formed secret",
			value:    strings.Repeat("0f", 32),
			expected: true,
		},
		{
			name:     "empty",
			value:    "",
			expected: false,
		},
		{
			name:     "too short",
			value:    strings.Repeat("0f", 31),
			expected: false,
		},
		{
			name:     "too long",
			value:    strings.Repeat("0f", 33),
			expected: false,
		},
		{
			name:     "uppercase hex",
			value:    strings.Repeat("0F", 32),
			expected: false,
		},
		{
			name:     "non-hex characters",
			value:    strings.Repeat("0g", 32),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Valid(tt.value))
		})
	}
}

func TestProvisionFillsDefaultKeys(t *testing.T) {
	doc := envfile.Parse([]byte(sampleEnv))

	filled, err := Provisioner{}.Provision(doc)
	require.NoError(t, err)
	assert.Equal(t, DefaultKeys, filled)

	jwt, ok := doc.Get("JWT_SECRET")
	require.True(t, ok)
	csrf, ok := doc.Get("CSRF_SECRET")
	require.True(t, ok)

	assert.True(t, Valid(jwt))
	assert.True(t, Valid(csrf))
	assert.NotEqual(t, jwt, csrf, "secrets must be independent")
}

func TestProvisionPreservesOtherLines(t *testing.T) {
	doc := envfile.Parse([]byte(sampleEnv))

	_, err := Provisioner{}.Provision(doc)
	require.NoError(t, err)

	rendered := string(doc.Render())
	assert.Contains(t, rendered, "# Server\n")
	assert.Contains(t, rendered, "PORT=3000\n")
	assert.Contains(t, rendered, "DATABASE_URL=\"file:./dev.db\"\n")

	port, ok := doc.Get("PORT")
	require.True(t, ok)
	assert.Equal(t, "3000", port)
}

func TestProvisionMissingKey(t *testing.T) {
	doc := envfile.Parse([]byte("PORT=3000\nJWT_SECRET=\n"))

	original := string(doc.Render())
	_, err := Provisioner{}.Provision(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, envfile.ErrKeyNotFound)
	assert.Contains(t, err.Error(), "CSRF_SECRET")

	assert.Equal(t, original, string(doc.Render()), "document must be untouched on failure")
}

func TestProvisionEntropyFailure(t *testing.T) {
	doc := envfile.Parse([]byte(sampleEnv))

	original := string(doc.Render())
	_, err := Provisioner{Rand: strings.NewReader("short")}.Provision(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEntropyUnavailable)

	assert.Equal(t, original, string(doc.Render()), "document must be untouched on failure")
}

func TestProvisionOverwritesByDefault(t *testing.T) {
	existing := strings.Repeat("ab", 32)
	doc := envfile.Parse([]byte("JWT_SECRET=" + existing + "\nCSRF_SECRET=\n"))

	filled, err := Provisioner{}.Provision(doc)
	require.NoError(t, err)
	assert.Equal(t, DefaultKeys, filled)

	jwt, _ := doc.Get("JWT_SECRET")
	assert.NotEqual(t, existing, jwt)
}

func TestProvisionKeepExisting(t *testing.T) {
	existing := strings.Repeat("ab", 32)
	doc := envfile.Parse([]byte("JWT_SECRET=" + existing + "\nCSRF_SECRET=stale\n"))

	filled, err := Provisioner{KeepExisting: true}.Provision(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"CSRF_SECRET"}, filled, "only malformed entries get refilled")

	jwt, _ := doc.Get("JWT_SECRET")
	assert.Equal(t, existing, jwt)

	csrf, _ := doc.Get("CSRF_SECRET")
	assert.True(t, Valid(csrf))
}

func TestProvisionCustomKeys(t *testing.T) {
	doc := envfile.Parse([]byte("SESSION_SECRET=\n"))

	filled, err := Provisioner{Keys: []string{"SESSION_SECRET"}}.Provision(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"SESSION_SECRET"}, filled)

	value, _ := doc.Get("SESSION_SECRET")
	assert.True(t, Valid(value))
}

func TestProvisionErrEntropyUnavailableWrapping(t *testing.T) {
	_, err := randomHex(strings.NewReader(""), Size)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEntropyUnavailable))
}

func BenchmarkRandomHex(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := RandomHex(Size); err != nil {
			b.Fatal(err)
		}
	}
}
