package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"folio/models"
	"log"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const memoryPath = ":memory:"

// SQLiteStore is the SQLite-backed Storage, used for local runs and tests.
// created_at is stored as unix milliseconds.
type SQLiteStore struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// OpenSQLite opens the database file at path. ":memory:" gives a private
// in-memory database that lives as long as the store.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	dsn := memoryPath
	if path != memoryPath {
		dsn = filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// Every new connection to ":memory:" is a fresh empty database.
	if path == memoryPath {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	log.Printf("SQLite database opened: path=%s", path)
	return &SQLiteStore{sqlDB: sqlDB}, nil
}

// NewSQLiteStore wraps an already opened handle.
func NewSQLiteStore(sqlDB *sql.DB) *SQLiteStore {
	return &SQLiteStore{sqlDB: sqlDB}
}

func (s *SQLiteStore) CreateMessage(ctx context.Context, req models.CreateMessageRequest) (*models.Message, error) {
	query := `
		INSERT INTO messages (name, email, message, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id, name, email, message, created_at
	`

	var message models.Message
	var createdAt int64
	err := s.sqlDB.QueryRowContext(ctx, query, req.Name, req.Email, req.Message, toMillis(time.Now())).Scan(
		&message.ID,
		&message.Name,
		&message.Email,
		&message.Message,
		&createdAt,
	)
	if err != nil {
		return nil, storageErr("create message", err)
	}
	message.CreatedAt = fromMillis(createdAt)

	return &message, nil
}

func (s *SQLiteStore) CreateProject(ctx context.Context, req models.CreateProjectRequest) (*models.Project, error) {
	query := `
		INSERT INTO projects (title, description, image_url, project_url, repo_url, featured, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING ` + projectColumns

	project, err := scanSQLiteProject(s.sqlDB.QueryRowContext(ctx, query,
		req.Title, req.Description, req.ImageURL, nullString(req.ProjectURL), nullString(req.RepoURL), req.IsFeatured(), toMillis(time.Now())))
	if err != nil {
		return nil, storageErr("create project", err)
	}

	return project, nil
}

func (s *SQLiteStore) ListProjects(ctx context.Context) ([]models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY id ASC`

	rows, err := s.sqlDB.QueryContext(ctx, query)
	if err != nil {
		return nil, storageErr("list projects", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		project, err := scanSQLiteProject(rows)
		if err != nil {
			return nil, storageErr("list projects", fmt.Errorf("failed to scan project: %w", err))
		}
		projects = append(projects, *project)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("list projects", fmt.Errorf("error iterating projects: %w", err))
	}

	return projects, nil
}

func (s *SQLiteStore) GetProject(ctx context.Context, id int64) (*models.Project, bool, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`

	project, err := scanSQLiteProject(s.sqlDB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, storageErr("get project", err)
	}

	return project, true, nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	if err := s.sqlDB.PingContext(ctx); err != nil {
		return storageErr("ping", err)
	}
	return nil
}

func (s *SQLiteStore) Close() {
	if s == nil || s.sqlDB == nil {
		return
	}
	_ = s.sqlDB.Close()
	log.Println("SQLite database closed")
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func scanSQLiteProject(row rowScanner) (*models.Project, error) {
	var project models.Project
	var projectURL, repoURL sql.NullString
	var createdAt int64
	err := row.Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.ImageURL,
		&projectURL,
		&repoURL,
		&project.Featured,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if projectURL.Valid {
		project.ProjectURL = &projectURL.String
	}
	if repoURL.Valid {
		project.RepoURL = &repoURL.String
	}
	project.CreatedAt = fromMillis(createdAt)

	return &project, nil
}
