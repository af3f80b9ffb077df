package database

import (
	"context"
	"errors"
	"folio/database/migrations"
	"folio/models"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errConnRefused = errors.New("connection refused")

func setupMockStore(t *testing.T) (*SQLiteStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewSQLiteStore(db), mock
}

func TestSQLiteStore_CreateMessage_StoreFailure(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectQuery(`INSERT INTO messages`).
		WithArgs("Jane", "jane@x.com", "hello", sqlmock.AnyArg()).
		WillReturnError(errConnRefused)

	_, err := store.CreateMessage(context.Background(), models.CreateMessageRequest{
		Name: "Jane", Email: "jane@x.com", Message: "hello",
	})

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "create message", storageErr.Op)
	assert.ErrorIs(t, err, errConnRefused)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_CreateProject_ConstraintViolation(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectQuery(`INSERT INTO projects`).
		WillReturnError(errors.New("NOT NULL constraint failed: projects.title"))

	_, err := store.CreateProject(context.Background(), models.CreateProjectRequest{})

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "create project", storageErr.Op)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_ListProjects_StoreFailure(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectQuery(`SELECT (.+) FROM projects ORDER BY id ASC`).
		WillReturnError(errConnRefused)

	projects, err := store.ListProjects(context.Background())

	assert.Nil(t, projects)
	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "list projects", storageErr.Op)
}

func TestSQLiteStore_GetProject_StoreFailureIsNotNotFound(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectQuery(`SELECT (.+) FROM projects WHERE id = \?`).
		WithArgs(int64(7)).
		WillReturnError(errConnRefused)

	project, found, err := store.GetProject(context.Background(), 7)

	assert.Nil(t, project)
	assert.False(t, found)
	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "get project", storageErr.Op)
}

func TestSQLiteStore_GetProject_ScansNullableColumns(t *testing.T) {
	store, mock := setupMockStore(t)

	rows := sqlmock.NewRows([]string{
		"id", "title", "description", "image_url", "project_url", "repo_url", "featured", "created_at",
	}).AddRow(int64(1), "T", "D", "https://img", nil, "https://github.com/x", false, int64(1700000000000))

	mock.ExpectQuery(`SELECT (.+) FROM projects WHERE id = \?`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	project, found, err := store.GetProject(context.Background(), 1)

	require.NoError(t, err)
	require.True(t, found)
	assert.Nil(t, project.ProjectURL)
	require.NotNil(t, project.RepoURL)
	assert.Equal(t, "https://github.com/x", *project.RepoURL)
	assert.Equal(t, int64(1700000000000), project.CreatedAt.UnixMilli())
}

func TestSQLiteStore_Migrate_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := NewTestSQLiteStore(t)

	require.NoError(t, store.Migrate(ctx))

	var count int
	err := store.sqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestOpenSQLite_File(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "folio.db")

	store, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(ctx))
	_, err = store.CreateProject(ctx, models.CreateProjectRequest{Title: "T", Description: "D", ImageURL: "https://img"})
	require.NoError(t, err)
	store.Close()

	reopened, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	projects, err := reopened.ListProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 1)
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	_, err := OpenSQLite(context.Background(), "  ")
	assert.Error(t, err)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), "mysql", "whatever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestOpen_SQLite(t *testing.T) {
	store, err := Open(context.Background(), DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer store.Close()

	assert.NoError(t, store.Ping(context.Background()))
}

func TestLoadMigrations_Sorted(t *testing.T) {
	tests := []struct {
		dir  string
		fsys fs.FS
	}{
		{dir: "postgres", fsys: migrations.Postgres},
		{dir: "sqlite", fsys: migrations.SQLite},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			pending, err := loadMigrations(tt.fsys, tt.dir)
			require.NoError(t, err)
			require.Len(t, pending, 2)
			assert.Equal(t, "001_create_messages", pending[0].version)
			assert.Equal(t, "002_create_projects", pending[1].version)
			assert.Contains(t, pending[0].sql, "CREATE TABLE IF NOT EXISTS messages")
		})
	}
}
