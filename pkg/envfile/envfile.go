package envfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrKeyNotFound is returned when an edit targets a key the document does not
// contain.
var ErrKeyNotFound = errors.New("key not found")

// DefaultMode is the permission mode used for documents that were not loaded
// from an existing file. Env files hold secrets, so they stay owner-only.
const DefaultMode os.FileMode = 0600

var entryRegex = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)=(.*)$`)

// line is a single physical line of the file. Entry lines keep their parsed
// key and value alongside the raw text; raw is what Render emits, so a line
// that was never edited is reproduced byte-for-byte.
type line struct {
	raw   string
	key   string
	value string
	entry bool
}

// Document is an ordered, line-preserving view of a dotenv file.
type Document struct {
	lines           []line
	trailingNewline bool
	mode            os.FileMode
}

// Parse builds a Document from raw file contents. Parsing is total: lines
// that don't look like KEY=VALUE entries are preserved as opaque text.
func Parse(data []byte) *Document {
	doc := &Document{
		trailingNewline: true,
		mode:            DefaultMode,
	}

	text := string(data)
	if len(text) == 0 {
		doc.lines = nil
		return doc
	}

	if !strings.HasSuffix(text, "\n") {
		doc.trailingNewline = false
	} else {
		text = strings.TrimSuffix(text, "\n")
	}

	for _, raw := range strings.Split(text, "\n") {
		l := line{raw: raw}
		if m := entryRegex.FindStringSubmatch(raw); m != nil {
			l.key = m[1]
			l.value = m[2]
			l.entry = true
		}
		doc.lines = append(doc.lines, l)
	}

	return doc
}

// Load reads and parses the file at path, remembering its permission mode so
// Save can preserve it.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}

	doc := Parse(data)
	if info, err := os.Stat(path); err == nil {
		doc.mode = info.Mode().Perm()
	}
	return doc, nil
}

// Get returns the value of the first entry with the given key.
func (d *Document) Get(key string) (string, bool) {
	for _, l := range d.lines {
		if l.entry && l.key == key {
			return l.value, true
		}
	}
	return "", false
}

// Has reports whether the document contains an entry with the given key.
func (d *Document) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// Set replaces the value of the first entry with the given key. Only that
// line is rewritten; returns ErrKeyNotFound if no such entry exists.
func (d *Document) Set(key, value string) error {
	for i := range d.lines {
		if d.lines[i].entry && d.lines[i].key == key {
			d.lines[i].value = value
			d.lines[i].raw = key + "=" + value
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrKeyNotFound, key)
}

// Keys returns the entry keys in file order.
func (d *Document) Keys() []string {
	var keys []string
	for _, l := range d.lines {
		if l.entry {
			keys = append(keys, l.key)
		}
	}
	return keys
}

// Len returns the number of physical lines.
func (d *Document) Len() int {
	return len(d.lines)
}

// Render serializes the document, reproducing unedited lines exactly as they
// were read, including the original trailing-newline state.
func (d *Document) Render() []byte {
	if len(d.lines) == 0 {
		return []byte{}
	}

	var sb strings.Builder
	for i, l := range d.lines {
		sb.WriteString(l.raw)
		if i < len(d.lines)-1 || d.trailingNewline {
			sb.WriteByte('\n')
		}
	}
	return []byte(sb.String())
}

// Save atomically writes the document to path: the rendered contents go to a
// temporary file in the same directory which is then renamed over the
// destination, so a failure leaves any existing file untouched. The mode of
// the originally loaded file is preserved; documents built in memory get
// DefaultMode.
func (d *Document) Save(path string) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".env-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	if err := tmp.Chmod(d.mode); err != nil {
		cleanup()
		return fmt.Errorf("failed to set mode on temp file: %w", err)
	}

	if _, err := tmp.Write(d.Render()); err != nil {
		cleanup()
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}
