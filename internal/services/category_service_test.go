package services_test

import (
	"testing"

	"shop_admin/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryPrefixValidation(t *testing.T) {
	f := setup(t)

	for _, prefix := range []string{"", "a", "abc", "ABC", "A1", "1A", "aB"} {
		_, err := f.categoryService.CreateCategory("Bags", prefix)
		assert.ErrorIs(t, err, services.ErrInvalidPrefix, "prefix %q", prefix)
	}

	category, err := f.categoryService.CreateCategory("Bags", "BG")
	require.NoError(t, err)
	assert.Equal(t, "BG", category.Prefix)
}

func TestCategoryPrefixUniqueness(t *testing.T) {
	f := setup(t)

	// "A" is taken by the fixture's Shoes category.
	_, err := f.categoryService.CreateCategory("Bags", "A")
	assert.ErrorIs(t, err, services.ErrPrefixTaken)

	bags, err := f.categoryService.CreateCategory("Bags", "BG")
	require.NoError(t, err)

	_, err = f.categoryService.UpdateCategory(bags.ID, "Bags", "A")
	assert.ErrorIs(t, err, services.ErrPrefixTaken)

	// Keeping your own prefix on update is fine.
	updated, err := f.categoryService.UpdateCategory(bags.ID, "Handbags", "BG")
	require.NoError(t, err)
	assert.Equal(t, "Handbags", updated.Name)
	assert.Equal(t, "BG", updated.Prefix)
}
