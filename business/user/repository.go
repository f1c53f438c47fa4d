package user

import (
	"context"
	"fmt"
	"strings"

	"mobileHospital/business/store"
	"mobileHospital/domain"
	"mobileHospital/pkg/logger"
	"mobileHospital/pkg/metrics"
	"mobileHospital/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// Repository owns shop_users. There is always at least one admin: if the
// persisted collection has none, the configured dealer account is prepended
// on load.
type Repository struct {
	items    *store.Collection[domain.User]
	ids      *utils.IDGenerator
	validate *validator.Validate
}

func NewRepository(ctx context.Context, s *store.Store, ids *utils.IDGenerator, validate *validator.Validate, admin domain.User) *Repository {
	r := &Repository{
		items:    store.NewCollection(ctx, s, store.KeyUsers, []domain.User{admin}, userID),
		ids:      ids,
		validate: validate,
	}

	r.ensureAdmin(ctx, admin)
	return r
}

func userID(u domain.User) string {
	return u.ID
}

func (r *Repository) ensureAdmin(ctx context.Context, admin domain.User) {
	for _, u := range r.items.All() {
		if u.IsAdmin() {
			return
		}
	}

	// The configured dealer phone wins: a customer holding it is replaced in
	// place so phone numbers stay unique.
	_ = r.items.Mutate(ctx, func(items []domain.User) ([]domain.User, error) {
		for i, u := range items {
			if u.PhoneNumber == admin.PhoneNumber {
				logger.Warn("customer holds the dealer phone, replacing it with the dealer account", "id", u.ID, "phone", u.PhoneNumber)
				items[i] = admin
				return items, nil
			}
		}
		return append([]domain.User{admin}, items...), nil
	})
	logger.Info("no admin in user store, seeded dealer account", "id", admin.ID)
}

func (r *Repository) GetAll() []domain.User {
	return r.items.All()
}

// Customers returns every non-admin user in insertion order.
func (r *Repository) Customers() []domain.User {
	var out []domain.User
	for _, u := range r.items.All() {
		if !u.IsAdmin() {
			out = append(out, u)
		}
	}
	return out
}

// Admin returns the first admin account.
func (r *Repository) Admin() domain.User {
	for _, u := range r.items.All() {
		if u.IsAdmin() {
			return u
		}
	}
	return domain.User{}
}

func (r *Repository) FindByID(id string) (domain.User, error) {
	u, ok := r.items.Find(id)
	if !ok {
		return domain.User{}, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return u, nil
}

func (r *Repository) FindByPhone(phone string) (domain.User, error) {
	for _, u := range r.items.All() {
		if u.PhoneNumber == phone {
			return u, nil
		}
	}
	return domain.User{}, fmt.Errorf("user with phone %s: %w", phone, domain.ErrNotFound)
}

// Create registers a customer. The phone number must be unique.
func (r *Repository) Create(ctx context.Context, draft domain.UserDraft) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create user")
		return domain.User{}, fmt.Errorf("context error: %w", err)
	}

	draft.Name = strings.TrimSpace(draft.Name)
	draft.PhoneNumber = strings.TrimSpace(draft.PhoneNumber)

	if err := r.validate.Struct(draft); err != nil {
		err = utils.ToValidationError(err)
		logger.Warn("invalid user data", "error", err)
		return domain.User{}, err
	}

	var created domain.User
	err := r.items.Mutate(ctx, func(items []domain.User) ([]domain.User, error) {
		if phoneTaken(items, draft.PhoneNumber, "") {
			return nil, domain.ErrDuplicatePhone
		}

		id, createdAt := r.ids.Next(func(id string) bool {
			return r.items.IndexOf(items, id) >= 0
		})

		created = domain.User{
			ID:          id,
			Name:        draft.Name,
			PhoneNumber: draft.PhoneNumber,
			Password:    draft.Password,
			Role:        domain.RoleCustomer,
			CreatedAt:   createdAt,
		}
		return append(items, created), nil
	})
	if err != nil {
		logger.Warn("failed to create user", "phone", draft.PhoneNumber, "error", err)
		return domain.User{}, err
	}

	metrics.Mutations.WithLabelValues("user", "create").Inc()
	logger.Info("user created successfully", "id", created.ID)

	return created, nil
}

// Update merges patch into the user. Role and id never change.
func (r *Repository) Update(ctx context.Context, id string, patch domain.UserPatch) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating user")
		return domain.User{}, fmt.Errorf("context error: %w", err)
	}

	var updated domain.User
	err := r.items.Mutate(ctx, func(items []domain.User) ([]domain.User, error) {
		idx := r.items.IndexOf(items, id)
		if idx < 0 {
			return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
		}

		u := items[idx]
		if patch.Name != nil {
			u.Name = strings.TrimSpace(*patch.Name)
		}
		if patch.PhoneNumber != nil {
			u.PhoneNumber = strings.TrimSpace(*patch.PhoneNumber)
		}
		if patch.Password != nil {
			u.Password = *patch.Password
		}

		draft := domain.UserDraft{Name: u.Name, PhoneNumber: u.PhoneNumber, Password: u.Password}
		if err := r.validate.Struct(draft); err != nil {
			return nil, utils.ToValidationError(err)
		}

		if phoneTaken(items, u.PhoneNumber, id) {
			return nil, domain.ErrDuplicatePhone
		}

		updated = u
		items[idx] = u
		return items, nil
	})
	if err != nil {
		logger.Warn("failed to update user", "id", id, "error", err)
		return domain.User{}, err
	}

	metrics.Mutations.WithLabelValues("user", "update").Inc()
	logger.Info("user updated success", "id", id)

	return updated, nil
}

// Delete removes a customer. Admin records cannot be removed here.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting user")
		return fmt.Errorf("context error: %w", err)
	}

	err := r.items.Mutate(ctx, func(items []domain.User) ([]domain.User, error) {
		idx := r.items.IndexOf(items, id)
		if idx < 0 {
			return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
		}
		if items[idx].IsAdmin() {
			return nil, fmt.Errorf("delete admin %s: %w", id, domain.ErrForbidden)
		}
		return append(items[:idx], items[idx+1:]...), nil
	})
	if err != nil {
		logger.Warn("failed to delete user", "id", id, "error", err)
		return err
	}

	metrics.Mutations.WithLabelValues("user", "delete").Inc()
	logger.Info("user deleted success", "id", id)

	return nil
}

func phoneTaken(items []domain.User, phone, exceptID string) bool {
	for _, u := range items {
		if u.PhoneNumber == phone && u.ID != exceptID {
			return true
		}
	}
	return false
}
