package models

import "time"

// Project is one showcased portfolio entry.
// ProjectURL and RepoURL are serialized as null when absent.
type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	ProjectURL  *string   `json:"projectUrl"`
	RepoURL     *string   `json:"repoUrl"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateProjectRequest is the payload for creating a project.
// Featured defaults to false when nil.
type CreateProjectRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	ImageURL    string  `json:"imageUrl" validate:"required"`
	ProjectURL  *string `json:"projectUrl"`
	RepoURL     *string `json:"repoUrl"`
	Featured    *bool   `json:"featured"`
}

// IsFeatured resolves the featured default.
func (r CreateProjectRequest) IsFeatured() bool {
	return r.Featured != nil && *r.Featured
}
