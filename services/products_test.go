package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine/store"
)

func newProductService(t *testing.T) *ProductService {
	t.Helper()
	s := NewProductService(store.NewMemoryStore())
	s.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func shirtForm() ProductForm {
	return ProductForm{
		Name:        "Shirt",
		Description: "Cotton shirt",
		Price:       "29.90",
		Category:    "tops",
		Sizes:       []string{"M", "L"},
	}
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	s := newProductService(t)

	shirt, err := s.Create(shirtForm(), "uploads/shirt.png")
	require.NoError(t, err)
	assert.Equal(t, 1, shirt.ID)
	assert.Equal(t, 29.90, shirt.Price)
	assert.Equal(t, []string{"M", "L"}, shirt.Sizes)

	pants := shirtForm()
	pants.Name = "Pants"
	pants.Price = "49.90"
	second, err := s.Create(pants, "uploads/pants.png")
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestIDsNotReusedAfterDelete(t *testing.T) {
	s := newProductService(t)

	_, err := s.Create(shirtForm(), "uploads/shirt.png")
	require.NoError(t, err)
	pants := shirtForm()
	pants.Name = "Pants"
	_, err = s.Create(pants, "uploads/pants.png")
	require.NoError(t, err)

	require.NoError(t, s.Delete(1))

	hat := shirtForm()
	hat.Name = "Hat"
	created, err := s.Create(hat, "uploads/hat.png")
	require.NoError(t, err)
	assert.Equal(t, 3, created.ID)
}

func TestGetAfterDelete(t *testing.T) {
	s := newProductService(t)

	created, err := s.Create(shirtForm(), "uploads/shirt.png")
	require.NoError(t, err)

	require.NoError(t, s.Delete(created.ID))

	_, err = s.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteUnknownID(t *testing.T) {
	s := newProductService(t)
	assert.ErrorIs(t, s.Delete(42), ErrNotFound)
}

func TestListInsertionOrder(t *testing.T) {
	s := newProductService(t)

	names := []string{"Shirt", "Pants", "Hat"}
	for _, name := range names {
		form := shirtForm()
		form.Name = name
		_, err := s.Create(form, "uploads/x.png")
		require.NoError(t, err)
	}

	products, err := s.List()
	require.NoError(t, err)
	require.Len(t, products, 3)
	for i, name := range names {
		assert.Equal(t, name, products[i].Name)
	}
}

func TestCreateValidation(t *testing.T) {
	s := newProductService(t)

	tests := []struct {
		name   string
		mutate func(*ProductForm)
		image  string
	}{
		{"missing name", func(f *ProductForm) { f.Name = "" }, "uploads/x.png"},
		{"missing description", func(f *ProductForm) { f.Description = "" }, "uploads/x.png"},
		{"missing price", func(f *ProductForm) { f.Price = "" }, "uploads/x.png"},
		{"missing category", func(f *ProductForm) { f.Category = "" }, "uploads/x.png"},
		{"negative price", func(f *ProductForm) { f.Price = "-1" }, "uploads/x.png"},
		{"garbage price", func(f *ProductForm) { f.Price = "abc" }, "uploads/x.png"},
		{"missing image", func(f *ProductForm) {}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := shirtForm()
			tt.mutate(&form)
			_, err := s.Create(form, tt.image)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	products, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestUpdate(t *testing.T) {
	s := newProductService(t)

	created, err := s.Create(shirtForm(), "uploads/shirt.png")
	require.NoError(t, err)

	form := shirtForm()
	form.Name = "Linen Shirt"
	form.Price = "39.90"
	form.Sizes = []string{"S"}

	updated, err := s.Update(created.ID, form, "uploads/linen.png")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Linen Shirt", updated.Name)
	assert.Equal(t, 39.90, updated.Price)
	assert.Equal(t, []string{"S"}, updated.Sizes)
	assert.Equal(t, "uploads/linen.png", updated.Image)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
}

func TestUpdateKeepsImageWhenNoneSupplied(t *testing.T) {
	s := newProductService(t)

	created, err := s.Create(shirtForm(), "uploads/shirt.png")
	require.NoError(t, err)

	updated, err := s.Update(created.ID, shirtForm(), "")
	require.NoError(t, err)
	assert.Equal(t, "uploads/shirt.png", updated.Image)
}

func TestUpdateUnknownID(t *testing.T) {
	s := newProductService(t)
	_, err := s.Update(7, shirtForm(), "")
	assert.ErrorIs(t, err, ErrNotFound)
}
