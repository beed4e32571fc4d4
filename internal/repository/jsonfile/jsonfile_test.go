package jsonfile_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/repository/jsonfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPortfolioRepo(t *testing.T) domain.PortfolioRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	return jsonfile.NewPortfolioRepository(path)
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	repo := newPortfolioRepo(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		item, err := repo.CreateProject(ctx, "Web", domain.ProjectItem{Title: "t", Description: "d", Year: "2024"})
		require.NoError(t, err)
		require.NotEmpty(t, item.ID)
		assert.False(t, seen[item.ID], "id %q assigned twice", item.ID)
		seen[item.ID] = true
	}

	p, err := repo.Fetch(ctx)
	require.NoError(t, err)
	assert.Len(t, p["Web"].Projects, 5)
}

func TestCreateNewCategoryGetsEmptyGeneralInfo(t *testing.T) {
	repo := newPortfolioRepo(t)

	_, err := repo.CreateProject(context.Background(), "Art", domain.ProjectItem{Title: "t"})
	require.NoError(t, err)

	p, err := repo.Fetch(context.Background())
	require.NoError(t, err)
	rec, ok := p["Art"]
	require.True(t, ok)
	assert.Equal(t, "", rec.GeneralInfo)
}

func TestUpdateMovesBetweenCategories(t *testing.T) {
	repo := newPortfolioRepo(t)
	ctx := context.Background()

	created, err := repo.CreateProject(ctx, "Web", domain.ProjectItem{Title: "t", Year: "2020"})
	require.NoError(t, err)

	updated, err := repo.UpdateProject(ctx, created.ID, "Games", domain.ProjectItem{Title: "t2", Year: "2021"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID, "move must keep the id")

	p, err := repo.Fetch(ctx)
	require.NoError(t, err)
	assert.Empty(t, p["Web"].Projects, "old category must no longer list the project")
	require.Len(t, p["Games"].Projects, 1)
	assert.Equal(t, "t2", p["Games"].Projects[0].Title)
}

func TestUpdateInPlaceIsFullReplace(t *testing.T) {
	repo := newPortfolioRepo(t)
	ctx := context.Background()

	created, err := repo.CreateProject(ctx, "Web", domain.ProjectItem{Title: "t", Year: "2020", Upfront: true, Queuenumber: 3})
	require.NoError(t, err)

	// Caller re-supplies every field; omitted flags reset to defaults.
	_, err = repo.UpdateProject(ctx, created.ID, "Web", domain.ProjectItem{Title: "t", Year: "2020"})
	require.NoError(t, err)

	p, err := repo.Fetch(ctx)
	require.NoError(t, err)
	require.Len(t, p["Web"].Projects, 1)
	assert.False(t, p["Web"].Projects[0].Upfront)
	assert.Equal(t, 0, p["Web"].Projects[0].Queuenumber)
}

func TestUpdateUnknownID(t *testing.T) {
	repo := newPortfolioRepo(t)

	_, err := repo.UpdateProject(context.Background(), "ghost", "Web", domain.ProjectItem{Title: "t"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSetGeneralInfoCreatesCategory(t *testing.T) {
	repo := newPortfolioRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetGeneralInfo(ctx, "Music", "<p>about music</p>"))

	p, err := repo.Fetch(ctx)
	require.NoError(t, err)
	rec, ok := p["Music"]
	require.True(t, ok)
	assert.Equal(t, "<p>about music</p>", rec.GeneralInfo)
	// Empty, but present: a nil slice would persist as "projects": null
	// and break consumers that iterate the field.
	require.NotNil(t, rec.Projects)
	assert.Empty(t, rec.Projects)

	raw, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"projects":[]`)
}

func TestDeleteCategoryCascades(t *testing.T) {
	repo := newPortfolioRepo(t)
	ctx := context.Background()

	a, err := repo.CreateProject(ctx, "Web", domain.ProjectItem{Title: "a"})
	require.NoError(t, err)
	_, err = repo.CreateProject(ctx, "Web", domain.ProjectItem{Title: "b"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteCategory(ctx, "Web"))

	p, err := repo.Fetch(ctx)
	require.NoError(t, err)
	_, exists := p["Web"]
	assert.False(t, exists)
	for _, rec := range p {
		for _, item := range rec.Projects {
			assert.NotEqual(t, a.ID, item.ID)
		}
	}
}

func TestDeleteProject(t *testing.T) {
	repo := newPortfolioRepo(t)
	ctx := context.Background()

	a, err := repo.CreateProject(ctx, "Web", domain.ProjectItem{Title: "a"})
	require.NoError(t, err)
	b, err := repo.CreateProject(ctx, "Web", domain.ProjectItem{Title: "b"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteProject(ctx, "Web", a.ID))

	p, err := repo.Fetch(ctx)
	require.NoError(t, err)
	require.Len(t, p["Web"].Projects, 1)
	assert.Equal(t, b.ID, p["Web"].Projects[0].ID)

	assert.ErrorIs(t, repo.DeleteProject(ctx, "Ghost", a.ID), domain.ErrNotFound)
}

func TestMalformedPortfolioFileFailsHard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	repo := jsonfile.NewPortfolioRepository(path)

	_, err := repo.Fetch(context.Background())
	assert.Error(t, err)
}

func TestProfileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	repo := jsonfile.NewProfileRepository(path)
	ctx := context.Background()

	rec := domain.ProfileRecord{
		Name:     "Owner",
		BioShort: "builder of things",
		Socials:  []domain.SocialLink{{Platform: "github", URL: "https://github.com/owner"}},
		Languages: map[string]domain.LanguageSkill{
			"English": {Reading: 90, Writing: 80, Speaking: 85, Listening: 95},
		},
		Programming: map[string]domain.ProgrammingSkill{
			"Go": {Level: 80, Skill: "backend"},
		},
	}
	require.NoError(t, repo.Replace(ctx, rec))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestProfileGetMissingFile(t *testing.T) {
	repo := jsonfile.NewProfileRepository(filepath.Join(t.TempDir(), "profile.json"))

	_, err := repo.Get(context.Background())
	assert.Error(t, err, "the repository itself fails hard; soft-fail lives in the usecase")
}

func TestSeedCreatesMissingFilesOnly(t *testing.T) {
	dir := t.TempDir()
	portfolioPath := filepath.Join(dir, "portfolio.json")
	profilePath := filepath.Join(dir, "profile.json")

	require.NoError(t, os.WriteFile(profilePath, []byte(`{"name":"kept"}`), 0o644))
	require.NoError(t, jsonfile.Seed(portfolioPath, profilePath))

	p, err := jsonfile.NewPortfolioRepository(portfolioPath).Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, p)

	rec, err := jsonfile.NewProfileRepository(profilePath).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "kept", rec.Name, "existing files must not be overwritten")
}
