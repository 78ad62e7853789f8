package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kozlekmarchewkowy/magazyn/internal/apperror"
	"github.com/kozlekmarchewkowy/magazyn/internal/dto"
	"github.com/kozlekmarchewkowy/magazyn/internal/model"
)

func TestBuildLookupEmptyDirectory(t *testing.T) {
	repo := newStubCategoryRepo()
	d := NewDirectory(repo, nil)

	_, err := d.BuildLookup(context.Background())
	require.Error(t, err)

	kind, ok := apperror.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindEmptyDirectory, kind, "empty directory is a warning state, not a transport failure")
}

func TestBuildLookupTransportFailureIsRemote(t *testing.T) {
	repo := newStubCategoryRepo()
	repo.failWith = errStoreDown
	d := NewDirectory(repo, nil)

	_, err := d.BuildLookup(context.Background())
	require.Error(t, err)

	kind, ok := apperror.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindRemote, kind)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestBuildLookupMapsNamesToIDs(t *testing.T) {
	repo := newStubCategoryRepo()
	repo.categories = []model.Category{
		{ID: 1, Name: "Fruit"},
		{ID: 2, Name: "Veg"},
	}

	d := NewDirectory(repo, nil)
	lookup, err := d.BuildLookup(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]uint{"Fruit": 1, "Veg": 2}, lookup.IDByName)
	assert.Equal(t, []string{"Fruit", "Veg"}, lookup.Names)
	assert.Equal(t, d.Version(), lookup.Version)
}

func TestBuildLookupDuplicateNamesLastWriteWins(t *testing.T) {
	repo := newStubCategoryRepo()
	repo.categories = []model.Category{
		{ID: 1, Name: "Fruit"},
		{ID: 7, Name: "Fruit"},
	}

	d := NewDirectory(repo, nil)
	lookup, err := d.BuildLookup(context.Background())
	require.NoError(t, err)

	id, ok := lookup.Resolve("Fruit")
	require.True(t, ok)
	assert.Equal(t, uint(7), id)
	assert.Equal(t, []string{"Fruit"}, lookup.Names, "duplicate names collapse to one entry")
}

func TestBuildLookupIdempotentWithoutMutation(t *testing.T) {
	repo := newStubCategoryRepo()
	repo.categories = []model.Category{
		{ID: 1, Name: "Fruit"},
		{ID: 2, Name: "Veg"},
	}

	d := NewDirectory(repo, nil)
	first, err := d.BuildLookup(context.Background())
	require.NoError(t, err)
	second, err := d.BuildLookup(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.IDByName, second.IDByName)
	assert.Equal(t, first.Version, second.Version)
}

func TestInvalidateBumpsVersion(t *testing.T) {
	d := NewDirectory(newStubCategoryRepo(), nil)

	before := d.Version()
	d.Invalidate(context.Background())
	assert.Equal(t, before+1, d.Version())
}

func TestCategoriesWarmCacheSkipsStore(t *testing.T) {
	repo := newStubCategoryRepo()
	repo.categories = []model.Category{{ID: 1, Name: "Fruit"}}
	cache := newFakeCache()
	d := NewDirectory(repo, cache)

	first, err := d.Categories(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, repo.listCalls)
	assert.Equal(t, 1, cache.setCalls)

	second, err := d.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls, "warm cache must serve the second read")
	assert.Equal(t, first, second)
}

func TestInvalidateDropsCacheEntry(t *testing.T) {
	repo := newStubCategoryRepo()
	repo.categories = []model.Category{{ID: 1, Name: "Fruit"}}
	cache := newFakeCache()
	d := NewDirectory(repo, cache)

	_, err := d.Categories(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, cache.entries)

	d.Invalidate(context.Background())
	assert.Equal(t, 1, cache.delCalls)
	assert.Empty(t, cache.entries)

	// Next read goes back to the store and sees the new state.
	repo.categories = append(repo.categories, model.Category{ID: 2, Name: "Veg"})
	list, err := d.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
	assert.Len(t, list, 2)
}

func TestInvalidateFailedDropCannotServeStaleList(t *testing.T) {
	repo := newStubCategoryRepo()
	repo.categories = []model.Category{{ID: 1, Name: "Fruit"}}
	cache := newFakeCache()
	cache.delErr = errStoreDown
	d := NewDirectory(repo, cache)

	_, err := d.Categories(context.Background())
	require.NoError(t, err)

	d.Invalidate(context.Background())
	require.NotEmpty(t, cache.entries, "the stale entry survived the failed drop")

	// Entries are keyed by version, so the surviving entry is unreachable:
	// the read after the bump must hit the store.
	repo.categories = append(repo.categories, model.Category{ID: 2, Name: "Veg"})
	list, err := d.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
	assert.Len(t, list, 2)
}

func TestCorruptCacheEntryFallsThroughToStore(t *testing.T) {
	repo := newStubCategoryRepo()
	repo.categories = []model.Category{{ID: 1, Name: "Fruit"}}
	cache := newFakeCache()
	d := NewDirectory(repo, cache)

	cache.entries[categoryCacheKey(d.Version())] = []byte("{not json")

	list, err := d.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls)
	require.Len(t, list, 1)
	assert.Equal(t, "Fruit", list[0].Name)
	assert.Equal(t, 1, cache.delCalls, "corrupt entry is dropped")
}

func TestCategoryCreateDropsWarmCache(t *testing.T) {
	repo := newStubCategoryRepo()
	cache := newFakeCache()
	d := NewDirectory(repo, cache)
	svc := NewCategoryEntry(repo, d)

	_, err := svc.Create(context.Background(), dto.NewCategoryRequest{Name: "Fruit"})
	require.NoError(t, err)

	lookup, err := d.BuildLookup(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Fruit"}, lookup.Names)
	listCallsAfterWarm := repo.listCalls

	_, err = svc.Create(context.Background(), dto.NewCategoryRequest{Name: "Veg"})
	require.NoError(t, err)

	lookup, err = d.BuildLookup(context.Background())
	require.NoError(t, err)
	assert.Equal(t, listCallsAfterWarm+1, repo.listCalls, "creation must drop the cached list")
	assert.ElementsMatch(t, []string{"Fruit", "Veg"}, lookup.Names)
}
