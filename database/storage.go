package database

import (
	"context"
	"fmt"
	"folio/models"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Storage is the only path from the application to the messages and
// projects tables. Each call runs exactly one statement; nothing is cached.
//
// GetProject reports a missing row with found == false and a nil error.
// Any failure of the underlying store is returned as *StorageError.
type Storage interface {
	CreateMessage(ctx context.Context, req models.CreateMessageRequest) (*models.Message, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, id int64) (project *models.Project, found bool, err error)
	CreateProject(ctx context.Context, req models.CreateProjectRequest) (*models.Project, error)
}

// Store is a Storage with its connection lifecycle.
type Store interface {
	Storage
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close()
}

// StorageError wraps a failure reported by the database driver.
// Op names the gateway operation that failed.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// Open connects to the store selected by driver. dsn is a postgres URL for
// DriverPostgres and a file path (or ":memory:") for DriverSQLite.
func Open(ctx context.Context, driver, dsn string) (Store, error) {
	switch driver {
	case DriverPostgres:
		db, err := Connect(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return db, nil
	case DriverSQLite:
		store, err := OpenSQLite(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
