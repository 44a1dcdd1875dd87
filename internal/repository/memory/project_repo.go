package memory

import (
	"context"
	"sort"
	"time"

	"go-portfolio-backend/internal/domain"
)

// projectRepository serves the static catalog. Read-only after construction,
// so it is safe for concurrent use without locking.
type projectRepository struct {
	projects []domain.Project
}

// NewProjectRepository creates the in-memory catalog repository
func NewProjectRepository(projects []domain.Project) domain.ProjectRepository {
	return &projectRepository{projects: projects}
}

// List returns projects matching the filter, newest first
func (r *projectRepository) List(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error) {
	filtered := make([]domain.Project, 0, len(r.projects))
	for _, p := range r.projects {
		if filter.Category != "" && filter.Category != "all" && p.Category != filter.Category {
			continue
		}
		if filter.FeaturedOnly && !p.Featured {
			continue
		}
		filtered = append(filtered, p)
	}

	// Stable keeps the original order for projects sharing a date
	sort.SliceStable(filtered, func(i, j int) bool {
		return parseDate(filtered[i].Date).After(parseDate(filtered[j].Date))
	})

	return filtered, nil
}

// GetByID returns the project with the given id or domain.ErrProjectNotFound
func (r *projectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	for i := range r.projects {
		if r.projects[i].ID == id {
			p := r.projects[i]
			return &p, nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

func parseDate(date string) time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		// Unparseable dates sort last
		return time.Time{}
	}
	return t
}
