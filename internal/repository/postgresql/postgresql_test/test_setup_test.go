package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limatime/attendance-backend-go/internal/domain/employee"
	"github.com/limatime/attendance-backend-go/internal/domain/user"
	"github.com/limatime/attendance-backend-go/internal/pkg/database"
	"github.com/limatime/attendance-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/require"
)

// TestDatabaseSetup wraps a connection to the database named by TEST_DATABASE_URL
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects and applies the schema. Tests are skipped when TEST_DATABASE_URL is unset.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn)
	require.NoError(t, err)

	schema, err := os.ReadFile(migrationPath())
	require.NoError(t, err)
	_, err = db.Exec(ctx, string(schema))
	require.NoError(t, err)

	setup := &TestDatabaseSetup{DB: db}
	require.NoError(t, setup.TruncateAllTables(ctx))
	t.Cleanup(setup.Close)
	return setup
}

func migrationPath() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "migrations", "001_init.sql")
}

// TruncateAllTables removes every row except the schedule seed
func (t *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tx, err := t.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tables := []string{
		"field_commissions",
		"leave_permits",
		"attendances",
		"employees",
	}

	for _, table := range tables {
		_, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}

func (t *TestDatabaseSetup) Close() {
	t.DB.Close()
}

// CreateEmployee inserts an active employee with the given code.
func (t *TestDatabaseSetup) CreateEmployee(tb testing.TB, code string) employee.Employee {
	tb.Helper()

	suffix := uuid.NewString()[:8]
	repo := postgresql.NewEmployeeRepository(t.DB)
	emp, err := repo.Create(context.Background(), employee.Employee{
		DNI:          fmt.Sprintf("%08d", time.Now().UnixNano()%100000000),
		FirstName:    "Test",
		LastName:     code,
		Email:        suffix + "@example.pe",
		EmployeeCode: code,
		PasswordHash: "hash",
		HireDate:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		IsActive:     true,
		Role:         user.RoleEmployee,
	})
	require.NoError(tb, err)
	return emp
}
