package shopinfo

import (
	"context"
	"fmt"

	"mobileHospital/business/store"
	"mobileHospital/domain"
	"mobileHospital/pkg/logger"
	"mobileHospital/pkg/metrics"
)

// Repository holds the singleton shop_info record.
type Repository struct {
	value *store.Value[domain.ShopInfo]
}

func NewRepository(ctx context.Context, s *store.Store) *Repository {
	def := domain.DefaultShopInfo()
	return &Repository{value: store.NewValue(ctx, s, store.KeyShopInfo, &def)}
}

func (r *Repository) Get() domain.ShopInfo {
	info, _ := r.value.Get()
	return info
}

// Replace overwrites the record wholesale. Any strings are accepted.
func (r *Repository) Replace(ctx context.Context, info domain.ShopInfo) (domain.ShopInfo, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when replacing shop info")
		return domain.ShopInfo{}, fmt.Errorf("context error: %w", err)
	}

	r.value.Set(ctx, info)

	metrics.Mutations.WithLabelValues("shop_info", "replace").Inc()
	logger.Info("shop info updated", "name", info.Name)

	return info, nil
}
