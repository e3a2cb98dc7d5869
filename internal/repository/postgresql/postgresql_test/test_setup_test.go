package postgresql_test

import (
	"context"
	"os"
	"testing"

	"github.com/hrapp/hr-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

// TestDatabaseSetup wraps a migrated, empty test database.
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL, skipping the test when it is unset.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn, database.PoolOptions{MaxConns: 4})
	require.NoError(t, err, "failed to connect to test database")

	setup := &TestDatabaseSetup{DB: db}
	require.NoError(t, db.Reset(context.Background()))
	t.Cleanup(setup.Close)
	return setup
}

// TruncateAllTables removes every row while keeping the schema.
func (s *TestDatabaseSetup) TruncateAllTables(t *testing.T) {
	t.Helper()
	_, err := s.DB.Exec(context.Background(), "TRUNCATE TABLE applications, attendance, employees CASCADE")
	require.NoError(t, err)
}

func (s *TestDatabaseSetup) Close() {
	s.DB.Close()
}
