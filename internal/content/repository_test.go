package content

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_DuplicateIDs(t *testing.T) {
	tests := []struct {
		name       string
		experience []ExperienceEntry
		projects   []ProjectEntry
		wantErr    string
	}{
		{name: "empty lists"},
		{
			name:       "unique ids",
			experience: []ExperienceEntry{{ID: 1}, {ID: 2}},
			projects:   []ProjectEntry{{ID: 1}, {ID: 2}},
		},
		{
			name:       "duplicate experience",
			experience: []ExperienceEntry{{ID: 1}, {ID: 1}},
			wantErr:    "duplicate experience id 1",
		},
		{
			name:     "duplicate project",
			projects: []ProjectEntry{{ID: 3}, {ID: 4}, {ID: 3}},
			wantErr:  "duplicate project id 3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.experience, tt.projects)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestProjectByID(t *testing.T) {
	repo := NewStaticRepository()
	ctx := context.Background()

	p, err := ProjectByID(ctx, repo, 2)
	require.NoError(t, err)
	assert.Equal(t, "Weather App", p.Title)

	_, err = ProjectByID(ctx, repo, 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDeriveCategories(t *testing.T) {
	projects := []ProjectEntry{
		{ID: 1, Tags: []string{"Python"}},
		{ID: 2, Tags: []string{"OpenWeather API", "CSS", "HTML", "JavaScript"}},
		{ID: 3, Tags: []string{"CSS", "Python", "All"}},
	}
	assert.Equal(t,
		[]string{"All", "Python", "OpenWeather API", "CSS", "HTML", "JavaScript"},
		DeriveCategories(projects))
	assert.Equal(t, []string{"All"}, DeriveCategories(nil))
}

func TestWithDerivedCategories(t *testing.T) {
	repo := WithDerivedCategories(NewStaticRepository())

	categories, err := repo.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"All", "Python", "OpenWeather API", "CSS", "HTML", "JavaScript"}, categories)
}

func TestProjectEntry_HasTag(t *testing.T) {
	p := ProjectEntry{Tags: []string{"CSS", "HTML"}}
	assert.True(t, p.HasTag("CSS"))
	assert.False(t, p.HasTag("css"))
	assert.False(t, p.HasTag(""))
}

func TestCheck(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, Check(ctx, NewStaticRepository()))

	bad := NewStaticRepository(WithProjects(ProjectEntry{ID: 1}, ProjectEntry{ID: 1}))
	assert.Error(t, Check(ctx, bad))
}
