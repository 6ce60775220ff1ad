package ingredients_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/bakerypro/bakerypro/internal/assets"
	"github.com/bakerypro/bakerypro/internal/ingredients"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type memoryStore struct {
	rows   map[int64]ingredients.Ingredient
	nextID int64
}

func (m *memoryStore) List(_ context.Context) ([]ingredients.Ingredient, error) {
	items := make([]ingredients.Ingredient, 0, len(m.rows))
	for _, i := range m.rows {
		items = append(items, i)
	}
	return items, nil
}

func (m *memoryStore) Get(_ context.Context, id int64) (*ingredients.Ingredient, error) {
	i, ok := m.rows[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ingredients.ErrNotFound, id)
	}
	i.IsLow = i.StockQty <= i.ReorderPoint
	return &i, nil
}

func (m *memoryStore) Create(_ context.Context, ingredient *ingredients.Ingredient) error {
	m.nextID++
	ingredient.ID = m.nextID
	m.rows[ingredient.ID] = *ingredient
	return nil
}

func (m *memoryStore) Update(_ context.Context, ingredient *ingredients.Ingredient) error {
	m.rows[ingredient.ID] = *ingredient
	return nil
}

func (m *memoryStore) Delete(_ context.Context, id int64) error {
	delete(m.rows, id)
	return nil
}

type recordingImages struct {
	categories []assets.Category
	removed    []string
}

func (r *recordingImages) Add(_ context.Context, category assets.Category, _ []byte, _ string) (*assets.Asset, error) {
	r.categories = append(r.categories, category)
	url := fmt.Sprintf("https://raw.example.com/acme/images/main/%s/%d.jpg", category, len(r.categories))
	return &assets.Asset{Category: category, URL: url}, nil
}

func (r *recordingImages) RemoveByURL(_ context.Context, url, _ string) {
	r.removed = append(r.removed, url)
}

func TestService_Lifecycle(t *testing.T) {
	images := &recordingImages{}
	service := ingredients.NewService(
		&memoryStore{rows: map[int64]ingredients.Ingredient{}},
		images,
		zaptest.NewLogger(t),
	)
	ctx := context.Background()

	_, err := service.Create(ctx, ingredients.IngredientDraft{Name: "Flour"}, nil)
	require.ErrorIs(t, err, ingredients.ErrImageRequired)

	created, err := service.Create(ctx, ingredients.IngredientDraft{
		Name:         "Flour",
		UnitName:     "kg",
		StockQty:     5,
		ReorderPoint: 10,
	}, &ingredients.Image{Content: []byte("img"), ContentType: "image/jpeg"})
	require.NoError(t, err)
	assert.True(t, created.IsLow)
	assert.Equal(t, []assets.Category{assets.CategoryIngredients}, images.categories)

	updated, err := service.Update(ctx, created.ID, ingredients.IngredientDraft{
		Name:         "Flour",
		UnitName:     "kg",
		StockQty:     50,
		ReorderPoint: 10,
	}, &ingredients.Image{Content: []byte("new")})
	require.NoError(t, err)
	assert.False(t, updated.IsLow)
	assert.Equal(t, []string{created.ImageURL}, images.removed)

	require.NoError(t, service.Delete(ctx, created.ID))
	assert.Equal(t, []string{created.ImageURL, updated.ImageURL}, images.removed)
}
