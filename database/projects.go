package database

import (
	"context"
	"errors"
	"fmt"
	"folio/models"
	"log"

	"github.com/jackc/pgx/v5"
)

const projectColumns = `id, title, description, image_url, project_url, repo_url, featured, created_at`

// CreateProject inserts one project. It has no public endpoint; the seed
// routine is its only caller.
func (db *DB) CreateProject(ctx context.Context, req models.CreateProjectRequest) (*models.Project, error) {
	query := `
		INSERT INTO projects (title, description, image_url, project_url, repo_url, featured)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + projectColumns

	project, err := scanProject(db.Pool.QueryRow(ctx, query,
		req.Title, req.Description, req.ImageURL, req.ProjectURL, req.RepoURL, req.IsFeatured()))
	if err != nil {
		return nil, storageErr("create project", err)
	}

	log.Printf("Created project: %s (ID: %d)", project.Title, project.ID)
	return project, nil
}

// ListProjects returns every project ordered by id. Returns an empty slice
// (not nil) when the table is empty.
func (db *DB) ListProjects(ctx context.Context) ([]models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY id ASC`

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, storageErr("list projects", err)
	}
	defer rows.Close()

	projects, err := scanProjects(rows)
	if err != nil {
		return nil, storageErr("list projects", err)
	}
	return projects, nil
}

func (db *DB) GetProject(ctx context.Context, id int64) (*models.Project, bool, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	project, err := scanProject(db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, storageErr("get project", err)
	}

	return project, true, nil
}

// Helper functions

func scanProject(row rowScanner) (*models.Project, error) {
	var project models.Project
	err := row.Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.ImageURL,
		&project.ProjectURL,
		&project.RepoURL,
		&project.Featured,
		&project.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func scanProjects(rows rowsScanner) ([]models.Project, error) {
	projects := []models.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}
