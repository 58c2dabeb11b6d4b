package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestOpenSeedsEmptyCatalog(t *testing.T) {
	repo := openTestRepo(t)

	n, err := repo.count()
	require.NoError(t, err)
	assert.Equal(t, len(seedProducts), n)
}

func TestOpenDoesNotReseedExistingCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	repo, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	repo, err = Open(path)
	require.NoError(t, err)
	defer repo.Close()

	n, err := repo.count()
	require.NoError(t, err)
	assert.Equal(t, len(seedProducts), n)
}

func TestSearchByName(t *testing.T) {
	repo := openTestRepo(t)

	results, err := repo.Search("miel", "", 10)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, p := range results {
		assert.Contains(t, p.Name, "Miel")
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	repo := openTestRepo(t)

	lower, err := repo.Search("miel", "", 10)
	require.NoError(t, err)
	upper, err := repo.Search("MIEL", "", 10)
	require.NoError(t, err)
	assert.Equal(t, lower, upper)
}

func TestSearchFiltersByCategory(t *testing.T) {
	repo := openTestRepo(t)

	results, err := repo.Search("", "alimentos", 20)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, p := range results {
		assert.Equal(t, "alimentos", p.Category)
	}

	other, err := repo.Search("miel", "servicios", 20)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestSearchRespectsLimit(t *testing.T) {
	repo := openTestRepo(t)

	results, err := repo.Search("", "", 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearchNoMatches(t *testing.T) {
	repo := openTestRepo(t)

	results, err := repo.Search("zapatos de tacón", "", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestGetProduct(t *testing.T) {
	repo := openTestRepo(t)

	p, err := repo.Get("prod-001")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Miel de abejas 300g", p.Name)
	assert.Equal(t, 18000.0, p.Price)
	assert.True(t, p.InStock)
}

func TestGetUnknownProduct(t *testing.T) {
	repo := openTestRepo(t)

	p, err := repo.Get("prod-999")
	require.NoError(t, err)
	assert.Nil(t, p)
}
