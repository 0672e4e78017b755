package testing

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vvka-141/emploader/internal/db"
	"github.com/vvka-141/emploader/internal/testinfra"
	"github.com/vvka-141/emploader/pkg/emploader"
)

// TestConnEnvVar overrides the auto-started container with an existing server.
const TestConnEnvVar = "EMPLOADER_TEST_CONN"

var (
	testContainerOnce sync.Once
	testContainerConn string
	testContainerErr  error
)

func getOrStartTestContainer() (string, error) {
	testContainerOnce.Do(func() {
		container, err := testinfra.StartPostgres(context.Background())
		if err != nil {
			testContainerErr = err
			return
		}
		testContainerConn = container.ConnString
	})
	return testContainerConn, testContainerErr
}

// GetTestConnectionString returns the test server connection string.
// Priority: EMPLOADER_TEST_CONN env var > auto-started testcontainer > skip test.
func GetTestConnectionString(t *testing.T) string {
	t.Helper()

	if connString := os.Getenv(TestConnEnvVar); connString != "" {
		return connString
	}

	connString, err := getOrStartTestContainer()
	if err != nil {
		t.Skipf("%s not set and Docker unavailable: %v", TestConnEnvVar, err)
	}
	return connString
}

// SkipIfShort skips the test if running in short mode (-short flag).
func SkipIfShort(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
}

// RequireDatabase combines SkipIfShort and GetTestConnectionString for convenience.
func RequireDatabase(t *testing.T) string {
	t.Helper()

	SkipIfShort(t)
	return GetTestConnectionString(t)
}

// NewTestDB creates an empty database with a unique name on the test server
// and drops it when the test completes. It returns the connection
// parameters for the new database.
func NewTestDB(t *testing.T) emploader.ConnectionConfig {
	t.Helper()

	connString := RequireDatabase(t)
	admin, err := pgx.ParseConfig(connString)
	if err != nil {
		t.Fatalf("Failed to parse test connection string: %v", err)
	}

	dbName := "emploader_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	ctx := context.Background()

	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		t.Fatalf("Failed to connect for test DB creation: %v", err)
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{dbName}.Sanitize()); err != nil {
		t.Fatalf("Failed to create test database %s: %v", dbName, err)
	}
	t.Logf("✓ Created test database %s", dbName)

	t.Cleanup(func() {
		dropTestDB(t, connString, dbName)
	})

	sslMode := "disable"
	if admin.TLSConfig != nil {
		sslMode = "require"
	}
	return emploader.ConnectionConfig{
		Host:             admin.Host,
		Port:             int(admin.Port),
		Database:         dbName,
		Username:         admin.User,
		Password:         admin.Password,
		SSLMode:          sslMode,
		AdditionalParams: map[string]string{},
	}
}

func dropTestDB(t *testing.T, connString, dbName string) {
	t.Helper()

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		t.Logf("Warning: Failed to connect for cleanup: %v", err)
		return
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+pgx.Identifier{dbName}.Sanitize()+" WITH (FORCE)"); err != nil {
		t.Logf("Warning: Failed to drop database %s: %v", dbName, err)
	}
}

// Connect opens a connection to the database described by config and
// closes it when the test completes.
func Connect(t *testing.T, config emploader.ConnectionConfig) *pgx.Conn {
	t.Helper()

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, db.BuildConnectionString(&config))
	if err != nil {
		t.Fatalf("Failed to connect to %s: %v", config.Database, err)
	}
	t.Cleanup(func() {
		conn.Close(context.Background())
	})
	return conn
}

// WriteEmployees writes lines to a new employee file and returns its path.
func WriteEmployees(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "employees.txt")
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write employee file: %v", err)
	}
	return path
}
