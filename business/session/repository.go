package session

import (
	"context"

	"mobileHospital/business/store"
	"mobileHospital/domain"
	"mobileHospital/pkg/metrics"
)

// Repository persists the signed-in user under shop_current_user. An absent
// key means nobody is signed in.
type Repository struct {
	value *store.Value[domain.User]
}

func NewRepository(ctx context.Context, s *store.Store) *Repository {
	return &Repository{value: store.NewValue[domain.User](ctx, s, store.KeyCurrentUser, nil)}
}

func (r *Repository) Current() (domain.User, bool) {
	return r.value.Get()
}

func (r *Repository) Set(ctx context.Context, u domain.User) {
	r.value.Set(ctx, u)
	metrics.Mutations.WithLabelValues("session", "set").Inc()
}

func (r *Repository) Clear(ctx context.Context) {
	r.value.Clear(ctx)
	metrics.Mutations.WithLabelValues("session", "clear").Inc()
}
