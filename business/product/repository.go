package product

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mobileHospital/business/store"
	"mobileHospital/domain"
	"mobileHospital/pkg/logger"
	"mobileHospital/pkg/metrics"
	"mobileHospital/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// Repository owns the shop_products collection. New listings go to the front.
type Repository struct {
	items    *store.Collection[domain.Product]
	ids      *utils.IDGenerator
	validate *validator.Validate
}

func NewRepository(ctx context.Context, s *store.Store, ids *utils.IDGenerator, validate *validator.Validate) *Repository {
	defaults := domain.DefaultProducts(time.Now().UnixMilli())

	return &Repository{
		items:    store.NewCollection(ctx, s, store.KeyProducts, defaults, productID),
		ids:      ids,
		validate: validate,
	}
}

func productID(p domain.Product) string {
	return p.ID
}

func (r *Repository) GetAll() []domain.Product {
	return r.items.All()
}

func (r *Repository) FindByID(id string) (domain.Product, error) {
	product, ok := r.items.Find(id)
	if !ok {
		return domain.Product{}, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}

	return product, nil
}

func (r *Repository) Create(ctx context.Context, draft domain.ProductDraft) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create product")
		return domain.Product{}, fmt.Errorf("context error: %w", err)
	}

	draft, err := r.checkDraft(draft)
	if err != nil {
		logger.Warn("invalid product data", "error", err)
		return domain.Product{}, err
	}

	var created domain.Product
	err = r.items.Mutate(ctx, func(items []domain.Product) ([]domain.Product, error) {
		id, createdAt := r.ids.Next(func(id string) bool {
			return r.items.IndexOf(items, id) >= 0
		})

		created = fromDraft(id, createdAt, draft)
		return append([]domain.Product{created}, items...), nil
	})
	if err != nil {
		return domain.Product{}, err
	}

	metrics.Mutations.WithLabelValues("product", "create").Inc()
	logger.Info("product created successfully", "id", created.ID)

	return created, nil
}

func (r *Repository) Update(ctx context.Context, id string, patch domain.ProductPatch) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating product")
		return domain.Product{}, fmt.Errorf("context error: %w", err)
	}

	var updated domain.Product
	err := r.items.Mutate(ctx, func(items []domain.Product) ([]domain.Product, error) {
		idx := r.items.IndexOf(items, id)
		if idx < 0 {
			return nil, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
		}

		existing := items[idx]
		draft, err := r.checkDraft(existing.Draft().Apply(patch))
		if err != nil {
			return nil, err
		}

		updated = fromDraft(existing.ID, existing.CreatedAt, draft)
		items[idx] = updated
		return items, nil
	})
	if err != nil {
		logger.Warn("failed to update product", "id", id, "error", err)
		return domain.Product{}, err
	}

	metrics.Mutations.WithLabelValues("product", "update").Inc()
	logger.Info("product updated success", "id", id)

	return updated, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting product")
		return fmt.Errorf("context error: %w", err)
	}

	err := r.items.Mutate(ctx, func(items []domain.Product) ([]domain.Product, error) {
		idx := r.items.IndexOf(items, id)
		if idx < 0 {
			return nil, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
		}
		return append(items[:idx], items[idx+1:]...), nil
	})
	if err != nil {
		logger.Warn("failed to delete product", "id", id, "error", err)
		return err
	}

	metrics.Mutations.WithLabelValues("product", "delete").Inc()
	logger.Info("product deleted success", "id", id)

	return nil
}

// checkDraft normalises and validates a draft. Specs are tagged by category:
// ram/storage only on Mobile, type only on Accessories.
func (r *Repository) checkDraft(draft domain.ProductDraft) (domain.ProductDraft, error) {
	draft.Name = strings.TrimSpace(draft.Name)

	if err := r.validate.Struct(draft); err != nil {
		return draft, utils.ToValidationError(err)
	}

	switch draft.Category {
	case domain.CategoryMobile:
		if draft.Specs.Type != "" {
			return draft, domain.NewValidationError("specs.type", "only applies to Accessories")
		}
	case domain.CategoryAccessories:
		if draft.Specs.RAM != "" || draft.Specs.Storage != "" {
			return draft, domain.NewValidationError("specs", "ram and storage only apply to Mobile")
		}
	}

	return draft, nil
}

func fromDraft(id string, createdAt int64, d domain.ProductDraft) domain.Product {
	return domain.Product{
		ID:          id,
		Name:        d.Name,
		Price:       d.Price,
		Condition:   d.Condition,
		Category:    d.Category,
		Description: d.Description,
		Specs:       d.Specs,
		Image:       d.Image,
		CreatedAt:   createdAt,
	}
}
