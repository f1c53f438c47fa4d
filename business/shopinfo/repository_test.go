package shopinfo

import (
	"context"
	"testing"

	"mobileHospital/business/store"
	"mobileHospital/domain"
	"mobileHospital/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_DefaultsWhenAbsent(t *testing.T) {
	s, _ := testutil.NewStore(t)

	assert.Equal(t, domain.DefaultShopInfo(), NewRepository(context.Background(), s).Get())
}

func TestReplace_Wholesale(t *testing.T) {
	ctx := context.Background()
	s, _ := testutil.NewStore(t)
	repo := NewRepository(ctx, s)

	info := domain.ShopInfo{Name: "Mobile Hospital Annex", Whatsapp: "919000000001"}
	got, err := repo.Replace(ctx, info)
	require.NoError(t, err)
	assert.Equal(t, info, got)

	// fields left out of the replacement are gone, not merged
	reloaded := NewRepository(ctx, s).Get()
	assert.Equal(t, info, reloaded)
	assert.Empty(t, reloaded.Address)
}

func TestReplace_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, _ := testutil.NewStore(t)
	repo := NewRepository(context.Background(), s)

	_, err := repo.Replace(ctx, domain.ShopInfo{Name: "x"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, domain.DefaultShopInfo(), repo.Get())
}

func TestReplace_BackendDownKeepsMemoryCopy(t *testing.T) {
	ctx := context.Background()
	s := store.New(testutil.FailingBackend{})
	repo := NewRepository(ctx, s)

	_, err := repo.Replace(ctx, domain.ShopInfo{Name: "Offline"})
	require.NoError(t, err)
	assert.Equal(t, "Offline", repo.Get().Name)
	assert.False(t, s.Healthy())
}
