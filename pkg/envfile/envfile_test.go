package envfile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sampleEnv = "# Server\nPORT=3000\nJWT_SECRET=\nCSRF_SECRET=\nDATABASE_URL=\"file:./dev.db\"\n"

func TestParseRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{
			name: "typical file",
			in:   sampleEnv,
		},
		{
			name: "no trailing newline",
			in:   "PORT=3000\nJWT_SECRET=",
		},
		{
			name: "empty file",
			in:   "",
		},
		{
			name: "comments and blanks",
			in:   "# header\n\n  # indented comment\nKEY=value\n\n",
		},
		{
			name: "malformed lines kept verbatim",
			in:   "not an entry\n=nokey\n2BAD=value\nKEY=ok\n",
		},
		{
			name: "quoted values with equals",
			in:   "DATABASE_URL=\"postgres://u:p@localhost:5432/db?sslmode=disable\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse([]byte(tt.in))
			out := doc.Render()
			if !bytes.Equal(out, []byte(tt.in)) {
				t.Errorf("round trip mismatch:\n got %q\nwant %q", out, tt.in)
			}
		})
	}
}

func TestGet(t *testing.T) {
	doc := Parse([]byte(sampleEnv))

	v, ok := doc.Get("PORT")
	if !ok || v != "3000" {
		t.Errorf("Get(PORT) = %q, %v; want %q, true", v, ok, "3000")
	}

	v, ok = doc.Get("JWT_SECRET")
	if !ok || v != "" {
		t.Errorf("Get(JWT_SECRET) = %q, %v; want empty, true", v, ok)
	}

	if _, ok := doc.Get("MISSING"); ok {
		t.Error("Get(MISSING) should not find a value")
	}
}

func TestSetRewritesOnlyTargetLine(t *testing.T) {
	doc := Parse([]byte(sampleEnv))

	if err := doc.Set("JWT_SECRET", "abc123"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	want := "# Server\nPORT=3000\nJWT_SECRET=abc123\nCSRF_SECRET=\nDATABASE_URL=\"file:./dev.db\"\n"
	if got := string(doc.Render()); got != want {
		t.Errorf("Render mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestSetMissingKey(t *testing.T) {
	doc := Parse([]byte(sampleEnv))

	err := doc.Set("SESSION_SECRET", "value")
	if err == nil {
		t.Fatal("expected error for missing key")
	}
	if !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("error = %v; want ErrKeyNotFound", err)
	}
}

func TestSetReplacesExistingValue(t *testing.T) {
	doc := Parse([]byte("KEY=old\n"))

	if err := doc.Set("KEY", "new"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	v, _ := doc.Get("KEY")
	if v != "new" {
		t.Errorf("value = %q; want %q", v, "new")
	}
}

func TestKeys(t *testing.T) {
	doc := Parse([]byte(sampleEnv))

	want := []string{"PORT", "JWT_SECRET", "CSRF_SECRET", "DATABASE_URL"}
	got := doc.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q; want %q", i, got[i], want[i])
		}
	}
}

func TestLoadAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")

	if err := os.WriteFile(path, []byte(sampleEnv), 0600); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if err := doc.Set("CSRF_SECRET", "deadbeef"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := doc.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "# Server\nPORT=3000\nJWT_SECRET=\nCSRF_SECRET=deadbeef\nDATABASE_URL=\"file:./dev.db\"\n"
	if string(data) != want {
		t.Errorf("file contents:\n got %q\nwant %q", data, want)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("mode = %v; want 0600", info.Mode().Perm())
	}
}

func TestSavePreservesMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")

	if err := os.WriteFile(path, []byte("KEY=1\n"), 0640); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := doc.Save(path); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0640 {
		t.Errorf("mode = %v; want 0640", info.Mode().Perm())
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")

	doc := Parse([]byte("KEY=1\n"))
	if err := doc.Save(path); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != ".env" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory contents = %v; want only .env", names)
	}
}

func TestSaveFailureLeavesOriginalUntouched(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "nope", ".env")

	doc := Parse([]byte("KEY=1\n"))
	if err := doc.Save(missing); err == nil {
		t.Fatal("expected error saving into missing directory")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v; want wrapped os.ErrNotExist", err)
	}
}
