package migration_test

import (
	"context"
	"regexp"
	"testing"
	"testing/fstest"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/bburrets/mdf-contract-management/internal/migration"
	"github.com/bburrets/mdf-contract-management/internal/store"
)

const (
	ensureTableQuery   = `CREATE TABLE IF NOT EXISTS schema_migrations`
	executedQuery      = `SELECT \* FROM "schema_migrations" ORDER BY version ASC,filename ASC`
	recordMigrationSQL = `INSERT INTO schema_migrations (filename, version) VALUES ($1, $2)`
)

func newMockedStore(t *testing.T) (store.Store, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return store.NewPGStore(gdb), mock
}

func sqlSource() migration.Source {
	return migration.Source{
		FS: fstest.MapFS{
			"001_init.sql": {Data: []byte("CREATE TABLE init (id INT);\nINSERT INTO init VALUES (1);")},
			"002_add.sql":  {Data: []byte("ALTER TABLE init ADD COLUMN name TEXT;")},
		},
		Dir: ".",
	}
}

func TestRunner_SQL_AppliesEachFileInItsOwnTransaction(t *testing.T) {
	st, mock := newMockedStore(t)
	runner := migration.NewRunner(st, sqlSource())

	mock.ExpectExec(ensureTableQuery).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(executedQuery).
		WillReturnRows(sqlmock.NewRows([]string{"id", "filename", "version", "executed_at"}))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE init (id INT);\nINSERT INTO init VALUES (1);")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(recordMigrationSQL)).
		WithArgs("001_init.sql", 1).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("ALTER TABLE init ADD COLUMN name TEXT;")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(recordMigrationSQL)).
		WithArgs("002_add.sql", 2).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	applied, err := runner.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunner_SQL_FailureRollsBackAndStops(t *testing.T) {
	st, mock := newMockedStore(t)
	runner := migration.NewRunner(st, sqlSource())

	mock.ExpectExec(ensureTableQuery).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(executedQuery).
		WillReturnRows(sqlmock.NewRows([]string{"id", "filename", "version", "executed_at"}))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE init (id INT);")).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()
	// 002_add.sql must not be attempted

	applied, err := runner.Run(context.Background())
	require.Error(t, err)
	assert.Zero(t, applied)
	assert.Contains(t, err.Error(), "001_init.sql")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunner_SQL_SkipsExecutedFiles(t *testing.T) {
	st, mock := newMockedStore(t)
	runner := migration.NewRunner(st, sqlSource())
	executedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(ensureTableQuery).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(executedQuery).
		WillReturnRows(sqlmock.NewRows([]string{"id", "filename", "version", "executed_at"}).
			AddRow(1, "001_init.sql", 1, executedAt).
			AddRow(2, "002_add.sql", 2, executedAt))

	applied, err := runner.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}
