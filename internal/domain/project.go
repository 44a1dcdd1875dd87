package domain

import (
	"context"
	"errors"
)

// Project represents one portfolio project record. The catalog is fixed data
// initialized at process start; records are never mutated.
type Project struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Category        string   `json:"category"`
	Meta            string   `json:"meta"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription"`
	Technologies    []string `json:"technologies"`
	Tags            []string `json:"tags"`
	Image           string   `json:"image"`
	Date            string   `json:"date"` // YYYY-MM-DD
	Featured        bool     `json:"featured"`
	GitHub          *string  `json:"github"`
	Demo            *string  `json:"demo"`
}

// ProjectFilter narrows List results. Zero value means no filtering.
type ProjectFilter struct {
	Category     string // exact match; "" or "all" disables the filter
	FeaturedOnly bool
}

// ErrProjectNotFound is returned for lookups of ids absent from the catalog
var ErrProjectNotFound = errors.New("project not found")

// ProjectRepository is a read-only view over the project catalog
type ProjectRepository interface {
	// List returns matching records sorted by date descending (stable).
	// An empty result is not an error.
	List(ctx context.Context, filter ProjectFilter) ([]Project, error)
	// GetByID returns the unique record with the given id or ErrProjectNotFound.
	GetByID(ctx context.Context, id string) (*Project, error)
}

// ProjectUsecase defines the interface for catalog queries
type ProjectUsecase interface {
	ListProjects(ctx context.Context, category string, featuredOnly bool) ([]Project, error)
	GetProject(ctx context.Context, id string) (*Project, error)
}
