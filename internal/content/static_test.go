package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticRepository_BuiltInContent(t *testing.T) {
	repo := NewStaticRepository()
	ctx := context.Background()

	experience, err := repo.Experience(ctx)
	require.NoError(t, err)
	require.Len(t, experience, 1)
	assert.Equal(t, "HRUTHA TECHNOLOGIES", experience[0].Company)
	assert.Equal(t, []string{"Python", "Machine Learning", "Data Science", "Data Visualization"}, experience[0].Technologies)

	projects, err := repo.Projects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, 1, projects[0].ID)
	assert.Equal(t, 2, projects[1].ID)

	categories, err := repo.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{AllCategory}, categories)

	profile, err := repo.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Nishanth Gowda R S", profile.Name)
	assert.Len(t, profile.NavLinks, 6)

	require.NoError(t, Validate(experience, projects))
}

func TestStaticRepository_ReturnsCopies(t *testing.T) {
	repo := NewStaticRepository()
	ctx := context.Background()

	projects, err := repo.Projects(ctx)
	require.NoError(t, err)
	projects[0].Tags[0] = "mutated"
	projects[0].Title = "mutated"

	again, err := repo.Projects(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Python", again[0].Tags[0])
	assert.Equal(t, "RFID Attendance System", again[0].Title)

	experience, err := repo.Experience(ctx)
	require.NoError(t, err)
	experience[0].Technologies[0] = "mutated"

	again2, err := repo.Experience(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Python", again2[0].Technologies[0])
}

func TestStaticRepository_Options(t *testing.T) {
	repo := NewStaticRepository(
		WithExperience(),
		WithProjects(ProjectEntry{ID: 7, Title: "Only"}),
		WithCategories("All", "Go"),
	)
	ctx := context.Background()

	experience, err := repo.Experience(ctx)
	require.NoError(t, err)
	assert.Empty(t, experience)

	projects, err := repo.Projects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, 7, projects[0].ID)

	categories, err := repo.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"All", "Go"}, categories)
}
