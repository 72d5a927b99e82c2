package integration

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestContext holds all the resources needed for integration tests
type TestContext struct {
	DB          *gorm.DB
	RawDB       *sql.DB
	Container   testcontainers.Container
	DatabaseURL string // Connection string for the test database
	BinaryPath  string
	WorkDir     string // Scratch directory scaffolded projects are created in
}

// NewTestContext creates a new test context with a PostgreSQL testcontainer
// and a panelctl binary to drive.
//
// Set PANELCTL_BINARY to the path of a prebuilt binary; when unset the suite
// builds one from ./cmd/panelctl into the scratch directory.
func NewTestContext(ctx context.Context) (*TestContext, error) {
	projectRoot, err := findProjectRoot()
	if err != nil {
		return nil, fmt.Errorf("failed to find project root: %w", err)
	}

	workDir, err := os.MkdirTemp("", "panelforge-integration-")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}

	binaryPath, err := resolveBinary(projectRoot, workDir)
	if err != nil {
		_ = os.RemoveAll(workDir)
		return nil, err
	}
	log.Printf("Using binary: %s", binaryPath)

	// Start PostgreSQL container
	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("panelforge_test"),
		tcpostgres.WithUsername("panelforge"),
		tcpostgres.WithPassword("panelforge"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		_ = os.RemoveAll(workDir)
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	// Get connection string for the host (not container network)
	host, err := pgContainer.Host(ctx)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		_ = os.RemoveAll(workDir)
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	port, err := pgContainer.MappedPort(ctx, "5432")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		_ = os.RemoveAll(workDir)
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}
	connStr := fmt.Sprintf("postgres://panelforge:panelforge@%s:%s/panelforge_test?sslmode=disable", host, port.Port())

	// Connect with GORM for test assertions
	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		_ = os.RemoveAll(workDir)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	rawDB, err := db.DB()
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		_ = os.RemoveAll(workDir)
		return nil, fmt.Errorf("failed to get raw db: %w", err)
	}

	return &TestContext{
		DB:          db,
		RawDB:       rawDB,
		Container:   pgContainer,
		DatabaseURL: connStr,
		BinaryPath:  binaryPath,
		WorkDir:     workDir,
	}, nil
}

// resolveBinary returns the panelctl binary to test against, building one
// when PANELCTL_BINARY is not set.
func resolveBinary(projectRoot, workDir string) (string, error) {
	if binaryPath := os.Getenv("PANELCTL_BINARY"); binaryPath != "" {
		if _, err := os.Stat(binaryPath); err != nil {
			return "", fmt.Errorf("PANELCTL_BINARY path does not exist: %s", binaryPath)
		}
		return binaryPath, nil
	}

	binaryPath := filepath.Join(workDir, "panelctl")
	build := exec.Command("go", "build", "-o", binaryPath, "./cmd/panelctl")
	build.Dir = projectRoot
	if out, err := build.CombinedOutput(); err != nil {
		return "", fmt.Errorf("failed to build panelctl: %w\n%s", err, out)
	}
	return binaryPath, nil
}

// RunPanelctl runs the panelctl binary in dir and returns its combined
// output. DATABASE_URL and JWT_SECRET are cleared from the inherited
// environment so commands resolve them from the project's env file the way
// they would on a developer machine.
func (tc *TestContext) RunPanelctl(dir string, extraEnv []string, args ...string) (string, error) {
	cmd := exec.Command(tc.BinaryPath, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "DATABASE_URL=", "JWT_SECRET=", "CSRF_SECRET=")
	cmd.Env = append(cmd.Env, extraEnv...)

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	return buf.String(), err
}

// ProjectDir returns the path a scaffolded project lives at.
func (tc *TestContext) ProjectDir(name string) string {
	return filepath.Join(tc.WorkDir, name)
}

// Close cleans up all test resources
func (tc *TestContext) Close(ctx context.Context) {
	if tc.RawDB != nil {
		_ = tc.RawDB.Close()
	}
	if tc.Container != nil {
		_ = tc.Container.Terminate(ctx)
	}
	if tc.WorkDir != "" {
		_ = os.RemoveAll(tc.WorkDir)
	}
}

// findProjectRoot locates the project root directory
func findProjectRoot() (string, error) {
	// Try relative paths from test directory
	paths := []string{
		"../..",
		"..",
		".",
	}

	for _, p := range paths {
		goMod := filepath.Join(p, "go.mod")
		if _, err := os.Stat(goMod); err == nil {
			return filepath.Abs(p)
		}
	}

	return "", fmt.Errorf("project root not found (looking for go.mod)")
}
