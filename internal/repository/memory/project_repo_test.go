package memory_test

import (
	"context"
	"testing"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo() domain.ProjectRepository {
	return memory.NewProjectRepository(memory.DefaultProjects())
}

func assertSortedByDateDesc(t *testing.T, projects []domain.Project) {
	t.Helper()
	for i := 1; i < len(projects); i++ {
		// Dates are YYYY-MM-DD so string order matches chronological order
		assert.GreaterOrEqual(t, projects[i-1].Date, projects[i].Date)
	}
}

func TestList(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()

	t.Run("no filter returns everything newest first", func(t *testing.T) {
		projects, err := repo.List(ctx, domain.ProjectFilter{})
		require.NoError(t, err)
		assert.Len(t, projects, 5)
		assertSortedByDateDesc(t, projects)
		assert.Equal(t, "microfinance-mis", projects[0].ID)
	})

	t.Run("category all is a pass-through", func(t *testing.T) {
		projects, err := repo.List(ctx, domain.ProjectFilter{Category: "all"})
		require.NoError(t, err)
		assert.Len(t, projects, 5)
	})

	t.Run("category filter is exact", func(t *testing.T) {
		projects, err := repo.List(ctx, domain.ProjectFilter{Category: "networking"})
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, "network-redesign", projects[0].ID)
	})

	t.Run("featured only", func(t *testing.T) {
		projects, err := repo.List(ctx, domain.ProjectFilter{FeaturedOnly: true})
		require.NoError(t, err)
		assert.Len(t, projects, 3)
		for _, p := range projects {
			assert.True(t, p.Featured)
		}
		assertSortedByDateDesc(t, projects)
	})

	t.Run("combined filters", func(t *testing.T) {
		projects, err := repo.List(ctx, domain.ProjectFilter{Category: "development", FeaturedOnly: true})
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, "microfinance-mis", projects[0].ID)
	})

	t.Run("no match yields empty slice not error", func(t *testing.T) {
		projects, err := repo.List(ctx, domain.ProjectFilter{Category: "gardening"})
		require.NoError(t, err)
		assert.NotNil(t, projects)
		assert.Empty(t, projects)
	})
}

func TestListStableOrder(t *testing.T) {
	// Two projects sharing a date keep their original relative order
	repo := memory.NewProjectRepository([]domain.Project{
		{ID: "first", Date: "2024-01-01"},
		{ID: "second", Date: "2024-01-01"},
		{ID: "older", Date: "2023-01-01"},
	})

	projects, err := repo.List(context.Background(), domain.ProjectFilter{})
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "first", projects[0].ID)
	assert.Equal(t, "second", projects[1].ID)
	assert.Equal(t, "older", projects[2].ID)
}

func TestGetByID(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()

	t.Run("existing id", func(t *testing.T) {
		project, err := repo.GetByID(ctx, "cloud-migration")
		require.NoError(t, err)
		assert.Equal(t, "Cloud Migration & Hardening", project.Title)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "does-not-exist")
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	})
}

func TestFixtureIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range memory.DefaultProjects() {
		assert.False(t, seen[p.ID], "duplicate project id %q", p.ID)
		seen[p.ID] = true
	}
}
