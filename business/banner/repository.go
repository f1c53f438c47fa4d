package banner

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"mobileHospital/business/store"
	"mobileHospital/domain"
	"mobileHospital/pkg/logger"
	"mobileHospital/pkg/metrics"
	"mobileHospital/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// Repository owns the shop_banners collection. Insertion order is display order.
type Repository struct {
	items    *store.Collection[domain.Banner]
	ids      *utils.IDGenerator
	validate *validator.Validate

	mu        sync.Mutex
	listeners []func(n int)
}

func NewRepository(ctx context.Context, s *store.Store, ids *utils.IDGenerator, validate *validator.Validate) *Repository {
	return &Repository{
		items:    store.NewCollection(ctx, s, store.KeyBanners, domain.DefaultBanners(), bannerID),
		ids:      ids,
		validate: validate,
	}
}

func bannerID(b domain.Banner) string {
	return b.ID
}

// OnChange registers fn to be called with the new length after every create or delete.
func (r *Repository) OnChange(fn func(n int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, fn)
}

func (r *Repository) notify() {
	r.mu.Lock()
	listeners := append([]func(int){}, r.listeners...)
	r.mu.Unlock()

	n := r.items.Len()
	for _, fn := range listeners {
		fn(n)
	}
}

func (r *Repository) GetAll() []domain.Banner {
	return r.items.All()
}

func (r *Repository) Len() int {
	return r.items.Len()
}

func (r *Repository) FindByID(id string) (domain.Banner, error) {
	banner, ok := r.items.Find(id)
	if !ok {
		return domain.Banner{}, fmt.Errorf("banner %s: %w", id, domain.ErrNotFound)
	}

	return banner, nil
}

func (r *Repository) Create(ctx context.Context, draft domain.BannerDraft) (domain.Banner, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create banner")
		return domain.Banner{}, fmt.Errorf("context error: %w", err)
	}

	draft, err := r.checkDraft(draft)
	if err != nil {
		logger.Warn("invalid banner data", "error", err)
		return domain.Banner{}, err
	}

	var created domain.Banner
	err = r.items.Mutate(ctx, func(items []domain.Banner) ([]domain.Banner, error) {
		id, _ := r.ids.Next(func(id string) bool {
			return r.items.IndexOf(items, id) >= 0
		})

		created = fromDraft(id, draft)
		return append(items, created), nil
	})
	if err != nil {
		return domain.Banner{}, err
	}

	metrics.Mutations.WithLabelValues("banner", "create").Inc()
	logger.Info("banner created successfully", "id", created.ID)
	r.notify()

	return created, nil
}

func (r *Repository) Update(ctx context.Context, id string, patch domain.BannerPatch) (domain.Banner, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating banner")
		return domain.Banner{}, fmt.Errorf("context error: %w", err)
	}

	var updated domain.Banner
	err := r.items.Mutate(ctx, func(items []domain.Banner) ([]domain.Banner, error) {
		idx := r.items.IndexOf(items, id)
		if idx < 0 {
			return nil, fmt.Errorf("banner %s: %w", id, domain.ErrNotFound)
		}

		draft, err := r.checkDraft(items[idx].Draft().Apply(patch))
		if err != nil {
			return nil, err
		}

		updated = fromDraft(id, draft)
		items[idx] = updated
		return items, nil
	})
	if err != nil {
		logger.Warn("failed to update banner", "id", id, "error", err)
		return domain.Banner{}, err
	}

	metrics.Mutations.WithLabelValues("banner", "update").Inc()
	logger.Info("banner updated success", "id", id)

	return updated, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting banner")
		return fmt.Errorf("context error: %w", err)
	}

	err := r.items.Mutate(ctx, func(items []domain.Banner) ([]domain.Banner, error) {
		idx := r.items.IndexOf(items, id)
		if idx < 0 {
			return nil, fmt.Errorf("banner %s: %w", id, domain.ErrNotFound)
		}
		return append(items[:idx], items[idx+1:]...), nil
	})
	if err != nil {
		logger.Warn("failed to delete banner", "id", id, "error", err)
		return err
	}

	metrics.Mutations.WithLabelValues("banner", "delete").Inc()
	logger.Info("banner deleted success", "id", id)
	r.notify()

	return nil
}

// checkDraft requires a non-blank title and image.
func (r *Repository) checkDraft(draft domain.BannerDraft) (domain.BannerDraft, error) {
	draft.Title = strings.TrimSpace(draft.Title)
	draft.Image = strings.TrimSpace(draft.Image)

	if err := r.validate.Struct(draft); err != nil {
		return draft, utils.ToValidationError(err)
	}

	return draft, nil
}

func fromDraft(id string, d domain.BannerDraft) domain.Banner {
	return domain.Banner{
		ID:       id,
		Title:    d.Title,
		Subtitle: d.Subtitle,
		Tag:      d.Tag,
		Bg:       d.Bg,
		Image:    d.Image,
	}
}
