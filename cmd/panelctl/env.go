package main

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// lookupProjectEnv resolves key for the project in dir with the same
// precedence the generated app's dotenv loader uses: the process
// environment wins, then the project's .env file.
func lookupProjectEnv(dir, key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}

	path := filepath.Join(dir, ".env")
	values, err := godotenv.Read(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	if value := values[key]; value != "" {
		return value, nil
	}

	return "", fmt.Errorf("%s is not set in the environment or %s", key, path)
}

// normalizeDatabaseURL rewrites a generated project's postgres URL for
// Go database drivers. Prisma's schema query parameter is not a libpq
// option; it maps to the search_path run-time parameter.
func normalizeDatabaseURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid DATABASE_URL: %w", err)
	}

	q := u.Query()
	if schema := q.Get("schema"); schema != "" {
		q.Del("schema")
		q.Set("search_path", schema)
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}
