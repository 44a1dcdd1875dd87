package usecase

import (
	"context"

	"go-portfolio-backend/internal/domain"
)

type projectUsecase struct {
	repo domain.ProjectRepository
}

// NewProjectUsecase creates a new project usecase
func NewProjectUsecase(repo domain.ProjectRepository) domain.ProjectUsecase {
	return &projectUsecase{repo: repo}
}

// ListProjects returns catalog records, optionally narrowed by category and
// featured flag, sorted newest first. "all" and "" mean no category filter.
func (uc *projectUsecase) ListProjects(ctx context.Context, category string, featuredOnly bool) ([]domain.Project, error) {
	return uc.repo.List(ctx, domain.ProjectFilter{
		Category:     category,
		FeaturedOnly: featuredOnly,
	})
}

// GetProject returns the record with the given id or domain.ErrProjectNotFound
func (uc *projectUsecase) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	return uc.repo.GetByID(ctx, id)
}
