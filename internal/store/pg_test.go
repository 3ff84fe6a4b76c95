package store

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/bburrets/mdf-contract-management/internal/testutil/pgtest"
)

var testDB *pgtest.Database

// TestMain sets up the test database before running tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	var err error
	testDB, err = pgtest.Start(ctx)
	if err != nil {
		fmt.Printf("Failed to set up test database: %v\n", err)
		os.Exit(1)
	}

	// Run tests
	code := m.Run()

	// Cleanup
	testDB.Terminate(ctx)

	os.Exit(code)
}

// initPGTestDB initializes a test database for each test
// Every test runs inside its own transaction which is rolled back on cleanup
func initPGTestDB(t *testing.T) Store {
	tx := testDB.Tx(t)
	pgtest.SeedStyle(t, tx, testStyle, "SS25", "Footwear")
	pgtest.SeedStyle(t, tx, otherStyle, "FW25", "Apparel")
	return NewPGStore(tx)
}

// cleanupPGTestDB is called after each test to clean up
// With transaction-based isolation, this is handled by the t.Cleanup rollback
func cleanupPGTestDB(t *testing.T) {
	// Cleanup is handled by transaction rollback in t.Cleanup
}

// TestPostgreSQLStore runs all store tests against PostgreSQL
func TestPostgreSQLStore(t *testing.T) {
	if testDB == nil {
		t.Fatal("Test database not initialized")
	}

	RunStoreTests(t, initPGTestDB, cleanupPGTestDB)
}
