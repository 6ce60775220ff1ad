package products_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bakerypro/bakerypro/internal/assets"
	"github.com/bakerypro/bakerypro/internal/git"
	"github.com/bakerypro/bakerypro/internal/products"
	"github.com/bakerypro/bakerypro/pkg/badgerfx"
	gogit "github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeStore struct {
	rows   map[int64]products.Product
	nextID int64
	fail   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: map[int64]products.Product{}}
}

func (f *fakeStore) List(_ context.Context) ([]products.Product, error) {
	items := make([]products.Product, 0, len(f.rows))
	for _, p := range f.rows {
		items = append(items, p)
	}
	return items, nil
}

func (f *fakeStore) Get(_ context.Context, id int64) (*products.Product, error) {
	p, ok := f.rows[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", products.ErrNotFound, id)
	}
	return &p, nil
}

func (f *fakeStore) Create(_ context.Context, product *products.Product) error {
	if f.fail != nil {
		return f.fail
	}
	f.nextID++
	product.ID = f.nextID
	f.rows[product.ID] = *product
	return nil
}

func (f *fakeStore) Update(_ context.Context, product *products.Product) error {
	if f.fail != nil {
		return f.fail
	}
	if _, ok := f.rows[product.ID]; !ok {
		return products.ErrNotFound
	}
	f.rows[product.ID] = *product
	return nil
}

func (f *fakeStore) Delete(_ context.Context, id int64) error {
	if f.fail != nil {
		return f.fail
	}
	delete(f.rows, id)
	return nil
}

type fakeImages struct {
	added   []string
	removed []string
}

func (f *fakeImages) Add(_ context.Context, category assets.Category, _ []byte, _ string) (*assets.Asset, error) {
	relPath := fmt.Sprintf("%s/%d.png", category, len(f.added)+1)
	url := "https://raw.example.com/acme/images/main/" + relPath
	f.added = append(f.added, url)
	return &assets.Asset{Category: category, Path: relPath, URL: url}, nil
}

func (f *fakeImages) RemoveByURL(_ context.Context, url, _ string) {
	f.removed = append(f.removed, url)
}

func draft() products.ProductDraft {
	return products.ProductDraft{
		Name:          "Croissant",
		CategoryID:    1,
		ShelfLifeDays: 2,
		UnitPrice:     1.5,
		ReorderPoint:  10,
	}
}

func newAssetService(t *testing.T) (*assets.Service, string) {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary is not available")
	}

	remote := filepath.Join(t.TempDir(), "images.git")
	bare, err := gogit.PlainInit(remote, true)
	require.NoError(t, err)
	require.NoError(t, bare.Storer.SetReference(
		plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName("main")),
	))

	dir := filepath.Join(t.TempDir(), "images")
	logger := zaptest.NewLogger(t)
	gitSvc := git.NewService(git.Config{
		Dir:       dir,
		RemoteURL: remote,
		Token:     "test-token",
		Branch:    "main",
	}, logger)

	db, err := badgerfx.Open(badgerfx.Config{InMemory: true}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return assets.NewService(
		assets.Config{RemoteURL: remote, Branch: "main"},
		gitSvc,
		assets.NewRepository(db),
		logger,
	), dir
}

func TestService_CreateWithPNG(t *testing.T) {
	images, dir := newAssetService(t)
	store := newFakeStore()
	service := products.NewService(store, images, zaptest.NewLogger(t))
	ctx := context.Background()

	content := []byte("\x89PNG\r\n\x1a\nfake image body")
	product, err := service.Create(ctx, draft(), &products.Image{Content: content, ContentType: "image/png"})
	require.NoError(t, err)

	relPath, err := images.PathOf(ctx, product.ImageURL)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(relPath, "products/"), relPath)
	assert.True(t, strings.HasSuffix(relPath, ".png"), relPath)
	assert.Contains(t, product.ImageURL, relPath)

	row := store.rows[product.ID]
	assert.Equal(t, product.ImageURL, row.ImageURL)

	stored, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(relPath)))
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}

func TestService_CreateRequiresImage(t *testing.T) {
	images := &fakeImages{}
	service := products.NewService(newFakeStore(), images, zaptest.NewLogger(t))

	_, err := service.Create(context.Background(), draft(), nil)
	require.ErrorIs(t, err, products.ErrImageRequired)

	_, err = service.Create(context.Background(), draft(), &products.Image{ContentType: "image/png"})
	require.ErrorIs(t, err, products.ErrImageRequired)

	assert.Empty(t, images.added)
}

func TestService_CreateRemovesImageWhenRowFails(t *testing.T) {
	images := &fakeImages{}
	store := newFakeStore()
	store.fail = errors.New("insert failed")
	service := products.NewService(store, images, zaptest.NewLogger(t))

	_, err := service.Create(context.Background(), draft(), &products.Image{Content: []byte("x")})
	require.Error(t, err)

	require.Len(t, images.added, 1)
	assert.Equal(t, images.added, images.removed)
}

func TestService_UpdateReplacesImage(t *testing.T) {
	images := &fakeImages{}
	store := newFakeStore()
	service := products.NewService(store, images, zaptest.NewLogger(t))
	ctx := context.Background()

	created, err := service.Create(ctx, draft(), &products.Image{Content: []byte("old")})
	require.NoError(t, err)

	changed := draft()
	changed.Name = "Pain au chocolat"
	updated, err := service.Update(ctx, created.ID, changed, &products.Image{Content: []byte("new")})
	require.NoError(t, err)

	assert.Equal(t, "Pain au chocolat", updated.Name)
	assert.NotEqual(t, created.ImageURL, updated.ImageURL)
	assert.Equal(t, []string{created.ImageURL}, images.removed)
}

func TestService_UpdateKeepsImage(t *testing.T) {
	images := &fakeImages{}
	store := newFakeStore()
	service := products.NewService(store, images, zaptest.NewLogger(t))
	ctx := context.Background()

	created, err := service.Create(ctx, draft(), &products.Image{Content: []byte("old")})
	require.NoError(t, err)

	updated, err := service.Update(ctx, created.ID, draft(), nil)
	require.NoError(t, err)

	assert.Equal(t, created.ImageURL, updated.ImageURL)
	assert.Empty(t, images.removed)
}

func TestService_Delete(t *testing.T) {
	images := &fakeImages{}
	store := newFakeStore()
	service := products.NewService(store, images, zaptest.NewLogger(t))
	ctx := context.Background()

	created, err := service.Create(ctx, draft(), &products.Image{Content: []byte("img")})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, created.ID))
	assert.Equal(t, []string{created.ImageURL}, images.removed)

	_, err = service.Get(ctx, created.ID)
	require.ErrorIs(t, err, products.ErrNotFound)

	err = service.Delete(ctx, created.ID)
	require.ErrorIs(t, err, products.ErrNotFound)
}

func TestService_DeleteKeepsImageWhenRowStays(t *testing.T) {
	images := &fakeImages{}
	store := newFakeStore()
	service := products.NewService(store, images, zaptest.NewLogger(t))
	ctx := context.Background()

	created, err := service.Create(ctx, draft(), &products.Image{Content: []byte("img")})
	require.NoError(t, err)

	store.fail = products.ErrInUse
	require.ErrorIs(t, service.Delete(ctx, created.ID), products.ErrInUse)
	assert.Empty(t, images.removed)
}
