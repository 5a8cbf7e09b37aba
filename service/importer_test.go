package service

import (
	"context"
	"testing"

	"Foodgram/pkg/errs"
	"Foodgram/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIngredients(t *testing.T) {
	t.Parallel()

	items, err := ParseIngredients([]byte(`[{"name": " salt ", "measurement_unit": "g"}, {"name": "milk", "measurement_unit": "ml"}]`))
	require.NoError(t, err)
	assert.Equal(t, []types.IngredientImport{
		{Name: "salt", MeasurementUnit: "g"},
		{Name: "milk", MeasurementUnit: "ml"},
	}, items)

	for _, bad := range []string{`{"name": "salt"}`, `[1, 2]`, `not json`} {
		_, err := ParseIngredients([]byte(bad))
		assert.ErrorIs(t, err, ErrImportFormat, bad)
	}
}

func TestParseTags(t *testing.T) {
	t.Parallel()

	items, err := ParseTags([]byte(`[{"name": "Breakfast", "slug": "breakfast"}, {"name": "Late Dinner"}]`))
	require.NoError(t, err)
	assert.Equal(t, []types.TagImport{
		{Name: "Breakfast", Slug: "breakfast"},
		{Name: "Late Dinner"},
	}, items)
}

func TestIngredientService_Import(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)

	res, err := e.ingredients.Import(ctx, []types.IngredientImport{
		{Name: "salt", MeasurementUnit: "g"},
		{Name: "milk", MeasurementUnit: "ml"},
		{Name: "salt", MeasurementUnit: "g"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)
	assert.Equal(t, 1, res.Existing)

	list, err := e.ingredients.List(ctx, "SA")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "salt", list[0].Name)

	// one bad item rolls back the whole batch
	_, err = e.ingredients.Import(ctx, []types.IngredientImport{
		{Name: "pepper", MeasurementUnit: "g"},
		{Name: "", MeasurementUnit: "g"},
	})
	assert.Equal(t, errs.KindInvalidInput, errs.KindOf(err))

	list, err = e.ingredients.List(ctx, "pepper")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTagService_Import(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)

	res, err := e.tags.Import(ctx, []types.TagImport{
		{Name: "Breakfast", Slug: "breakfast"},
		{Name: "Late Dinner"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)

	tags, err := e.tags.List(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "late-dinner", tags[1].Slug)

	_, err = e.tags.Import(ctx, []types.TagImport{{Name: "Bad", Slug: "no spaces"}})
	assert.Equal(t, errs.KindInvalidInput, errs.KindOf(err))

	_, err = e.tags.Get(ctx, 999)
	assert.Equal(t, errs.CodeTagNotFound, errs.CodeOf(err))
}
