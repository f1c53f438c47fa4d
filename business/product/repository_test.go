package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"mobileHospital/business/store"
	"mobileHospital/domain"
	"mobileHospital/internal/testutil"
	"mobileHospital/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (*Repository, *store.Store) {
	t.Helper()
	s, _ := testutil.NewStore(t)
	return NewRepository(context.Background(), s, utils.NewIDGenerator(), utils.NewValidator()), s
}

func pixel() domain.ProductDraft {
	return domain.ProductDraft{
		Name:      "Pixel 7",
		Price:     20000,
		Condition: domain.ConditionGood,
		Category:  domain.CategoryMobile,
		Specs:     domain.Specs{RAM: "8GB", Storage: "128GB"},
	}
}

func TestNewRepository_SeedsDefaultCatalog(t *testing.T) {
	repo, _ := newRepo(t)

	products := repo.GetAll()
	require.Len(t, products, 4)
	assert.Equal(t, "1", products[0].ID)
}

func TestNewRepository_CorruptCatalogFallsBackToDefaults(t *testing.T) {
	s, kv := testutil.NewStore(t)
	testutil.PutRaw(t, kv, store.KeyProducts, `{not json`)

	var repo *Repository
	require.NotPanics(t, func() {
		repo = NewRepository(context.Background(), s, utils.NewIDGenerator(), utils.NewValidator())
	})
	assert.Len(t, repo.GetAll(), 4)
}

func TestCreate_PrependsAndPersists(t *testing.T) {
	ctx := context.Background()
	repo, s := newRepo(t)

	created, err := repo.Create(ctx, pixel())
	require.NoError(t, err)

	all := repo.GetAll()
	require.Len(t, all, 5)
	assert.Equal(t, created, all[0])
	assert.NotEmpty(t, created.ID)
	assert.NotZero(t, created.CreatedAt)

	reloaded := NewRepository(ctx, s, utils.NewIDGenerator(), utils.NewValidator())
	assert.Equal(t, all, reloaded.GetAll())
}

func TestCreate_AssignsFreshIDsAndMonotonicCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo(t)

	seen := map[string]bool{}
	for _, p := range repo.GetAll() {
		seen[p.ID] = true
	}

	var last int64
	for i := 0; i < 5; i++ {
		p, err := repo.Create(ctx, pixel())
		require.NoError(t, err)
		assert.False(t, seen[p.ID], "id %s reused", p.ID)
		assert.GreaterOrEqual(t, p.CreatedAt, last)
		seen[p.ID] = true
		last = p.CreatedAt
	}
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(d *domain.ProductDraft)
		field string
	}{
		{"blank name", func(d *domain.ProductDraft) { d.Name = "   " }, "name"},
		{"non-positive price", func(d *domain.ProductDraft) { d.Price = -5 }, "price"},
		{"bad condition", func(d *domain.ProductDraft) { d.Condition = "New" }, "condition"},
		{"type on mobile", func(d *domain.ProductDraft) { d.Specs.Type = "Type-C" }, "specs.type"},
		{"ram on accessory", func(d *domain.ProductDraft) { d.Category = domain.CategoryAccessories }, "specs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _ := newRepo(t)
			d := pixel()
			tt.edit(&d)

			_, err := repo.Create(context.Background(), d)

			var vErr *domain.ValidationError
			require.True(t, errors.As(err, &vErr), "got %v", err)
			assert.Equal(t, tt.field, vErr.Field)
			assert.Len(t, repo.GetAll(), 4)
		})
	}
}

func TestUpdate_MergesPatch(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo(t)

	before, err := repo.FindByID("2")
	require.NoError(t, err)

	price := int64(29999)
	updated, err := repo.Update(ctx, "2", domain.ProductPatch{Price: &price})
	require.NoError(t, err)

	assert.Equal(t, price, updated.Price)
	assert.Equal(t, before.Name, updated.Name)
	assert.Equal(t, before.CreatedAt, updated.CreatedAt)

	got, _ := repo.FindByID("2")
	assert.Equal(t, updated, got)
}

func TestUpdate_InvalidPatchChangesNothing(t *testing.T) {
	repo, _ := newRepo(t)
	before := repo.GetAll()

	empty := ""
	_, err := repo.Update(context.Background(), "1", domain.ProductPatch{Name: &empty})

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, before, repo.GetAll())
}

func TestUpdateDelete_NotFound(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo(t)

	_, err := repo.Update(ctx, "missing", domain.ProductPatch{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "missing"), domain.ErrNotFound)
	_, err = repo.FindByID("missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_RemovesAndPersists(t *testing.T) {
	ctx := context.Background()
	repo, s := newRepo(t)

	require.NoError(t, repo.Delete(ctx, "3"))

	_, err := repo.FindByID("3")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	reloaded := NewRepository(ctx, s, utils.NewIDGenerator(), utils.NewValidator())
	assert.Len(t, reloaded.GetAll(), 3)
}

func TestCreate_CancelledContext(t *testing.T) {
	repo, _ := newRepo(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	_, err := repo.Create(ctx, pixel())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
