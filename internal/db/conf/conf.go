// Package conf
package conf

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Config holds a database connection and its metadata
type Config struct {
	Name    string
	DB      *sqlx.DB
	ConnStr string
	AdminDB *sqlx.DB
	Timeout time.Duration
}

// Open connects to connStr and applies the pool limits.
func Open(connStr string, maxOpen, maxIdle int, timeout time.Duration) (Config, error) {
	db, err := sqlx.Open("postgres", connStr)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open postgres: %w", err)
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(30 * time.Minute)
	if err := db.Ping(); err != nil {
		db.Close()
		return Config{}, fmt.Errorf("failed to ping postgres: %w", err)
	}
	return Config{DB: db, ConnStr: connStr, Timeout: timeout}, nil
}

func (c Config) Close() error {
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}

// NewTestConfig creates a database with a random name and applies schema.
// The test is skipped when no server is reachable. Connection parameters
// come from EZPZ_TEST_PG (a key=value connection string without dbname).
func NewTestConfig(t *testing.T, schema string) (*Config, func()) {
	t.Helper()

	base := os.Getenv("EZPZ_TEST_PG")
	if base == "" {
		base = "host=localhost port=5432 user=postgres password=postgres sslmode=disable"
	}

	adminDB, err := sqlx.Open("postgres", base+" dbname=postgres")
	if err != nil {
		t.Fatalf("Failed to connect to postgres: %v", err)
	}
	if err := adminDB.Ping(); err != nil {
		adminDB.Close()
		t.Skipf("Skipping test: PostgreSQL is not running or not accessible: %v", err)
		return nil, func() {}
	}

	// Random name avoids clashes between parallel packages
	dbName := fmt.Sprintf("ezpz_test_%d", rand.Int31())
	if _, err := adminDB.Exec(fmt.Sprintf("CREATE DATABASE %s", dbName)); err != nil {
		adminDB.Close()
		t.Fatalf("Failed to create test database: %v", err)
	}

	dbConnStr := base + " dbname=" + dbName
	db, err := sqlx.Open("postgres", dbConnStr)
	if err != nil {
		adminDB.Close()
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	for stmt := range strings.SplitSeq(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			adminDB.Close()
			t.Fatalf("Failed to apply schema statement: %s\nError: %v", stmt, err)
		}
	}

	cfg := &Config{
		Name:    dbName,
		DB:      db,
		ConnStr: dbConnStr,
		AdminDB: adminDB,
		Timeout: 5 * time.Second,
	}

	cleanup := func() {
		db.Close()
		if _, err := adminDB.Exec(fmt.Sprintf("DROP DATABASE %s WITH (FORCE)", dbName)); err != nil {
			t.Logf("Warning: Failed to drop test database %s: %v", dbName, err)
		}
		adminDB.Close()
	}
	return cfg, cleanup
}
