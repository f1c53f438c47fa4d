package admin

import (
	"context"
	"strings"

	"mobileHospital/domain"
	"mobileHospital/pkg/logger"
)

// ProductRepository contract interface
type ProductRepository interface {
	Create(ctx context.Context, draft domain.ProductDraft) (domain.Product, error)
	Update(ctx context.Context, id string, patch domain.ProductPatch) (domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// BannerRepository contract interface
type BannerRepository interface {
	Create(ctx context.Context, draft domain.BannerDraft) (domain.Banner, error)
	Update(ctx context.Context, id string, patch domain.BannerPatch) (domain.Banner, error)
	Delete(ctx context.Context, id string) error
}

// ShopInfoRepository contract interface
type ShopInfoRepository interface {
	Get() domain.ShopInfo
	Replace(ctx context.Context, info domain.ShopInfo) (domain.ShopInfo, error)
}

// UserRepository contract interface
type UserRepository interface {
	Customers() []domain.User
	Update(ctx context.Context, id string, patch domain.UserPatch) (domain.User, error)
	Delete(ctx context.Context, id string) error
}

// SessionUpdater keeps the signed-in user in step with the user store.
type SessionUpdater interface {
	UpdateSession(ctx context.Context, u domain.User)
	Forget(ctx context.Context, id string)
}

// DescriptionGenerator always returns some text, falling back to a fixed
// sentence on failure.
type DescriptionGenerator interface {
	GenerateDescription(ctx context.Context, name string, condition domain.Condition, category domain.Category) string
}

// Surface is the set of dealer-only operations. Every method checks that the
// acting user is an admin before touching a repository. The check is a
// usability gate for the storefront, not a security boundary.
type Surface struct {
	products     ProductRepository
	banners      BannerRepository
	shop         ShopInfoRepository
	users        UserRepository
	sessions     SessionUpdater
	descriptions DescriptionGenerator
}

func NewSurface(
	products ProductRepository,
	banners BannerRepository,
	shop ShopInfoRepository,
	users UserRepository,
	sessions SessionUpdater,
	descriptions DescriptionGenerator,
) *Surface {
	return &Surface{
		products:     products,
		banners:      banners,
		shop:         shop,
		users:        users,
		sessions:     sessions,
		descriptions: descriptions,
	}
}

func guard(actor domain.User, op string) error {
	if !actor.IsAdmin() {
		logger.Warn("admin operation refused", "op", op, "actor", actor.ID, "role", actor.Role)
		return domain.ErrNotAuthorized
	}
	return nil
}

func (s *Surface) CreateProduct(ctx context.Context, actor domain.User, draft domain.ProductDraft) (domain.Product, error) {
	if err := guard(actor, "create_product"); err != nil {
		return domain.Product{}, err
	}

	// An empty description is filled by the generator before saving.
	if strings.TrimSpace(draft.Description) == "" && strings.TrimSpace(draft.Name) != "" {
		draft.Description = s.descriptions.GenerateDescription(ctx, strings.TrimSpace(draft.Name), draft.Condition, draft.Category)
	}

	return s.products.Create(ctx, draft)
}

func (s *Surface) UpdateProduct(ctx context.Context, actor domain.User, id string, patch domain.ProductPatch) (domain.Product, error) {
	if err := guard(actor, "update_product"); err != nil {
		return domain.Product{}, err
	}
	return s.products.Update(ctx, id, patch)
}

func (s *Surface) DeleteProduct(ctx context.Context, actor domain.User, id string) error {
	if err := guard(actor, "delete_product"); err != nil {
		return err
	}
	return s.products.Delete(ctx, id)
}

func (s *Surface) CreateBanner(ctx context.Context, actor domain.User, draft domain.BannerDraft) (domain.Banner, error) {
	if err := guard(actor, "create_banner"); err != nil {
		return domain.Banner{}, err
	}
	return s.banners.Create(ctx, draft)
}

func (s *Surface) UpdateBanner(ctx context.Context, actor domain.User, id string, patch domain.BannerPatch) (domain.Banner, error) {
	if err := guard(actor, "update_banner"); err != nil {
		return domain.Banner{}, err
	}
	return s.banners.Update(ctx, id, patch)
}

func (s *Surface) DeleteBanner(ctx context.Context, actor domain.User, id string) error {
	if err := guard(actor, "delete_banner"); err != nil {
		return err
	}
	return s.banners.Delete(ctx, id)
}

func (s *Surface) ReplaceShopInfo(ctx context.Context, actor domain.User, info domain.ShopInfo) (domain.ShopInfo, error) {
	if err := guard(actor, "replace_shop_info"); err != nil {
		return domain.ShopInfo{}, err
	}
	return s.shop.Replace(ctx, info)
}

func (s *Surface) ListCustomers(actor domain.User) ([]domain.User, error) {
	if err := guard(actor, "list_customers"); err != nil {
		return nil, err
	}
	return s.users.Customers(), nil
}

func (s *Surface) DeleteUser(ctx context.Context, actor domain.User, id string) error {
	if err := guard(actor, "delete_user"); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.sessions.Forget(ctx, id)
	return nil
}

type DealerSettings struct {
	Profile  domain.UserPatch `json:"profile"`
	ShopInfo *domain.ShopInfo `json:"shopInfo,omitempty"`
}

// UpdateDealerSettings saves the dealer's own profile and, when given, the
// shop contact card. The profile is written first; a rejected profile leaves
// the shop info untouched.
func (s *Surface) UpdateDealerSettings(ctx context.Context, actor domain.User, settings DealerSettings) (domain.User, domain.ShopInfo, error) {
	if err := guard(actor, "update_dealer_settings"); err != nil {
		return domain.User{}, domain.ShopInfo{}, err
	}

	updated, err := s.users.Update(ctx, actor.ID, settings.Profile)
	if err != nil {
		return domain.User{}, domain.ShopInfo{}, err
	}
	s.sessions.UpdateSession(ctx, updated)

	info := s.shop.Get()
	if settings.ShopInfo != nil {
		info, err = s.shop.Replace(ctx, *settings.ShopInfo)
		if err != nil {
			return updated, domain.ShopInfo{}, err
		}
	}

	return updated, info, nil
}

// GenerateDescription asks the generator for a catalog blurb.
func (s *Surface) GenerateDescription(ctx context.Context, actor domain.User, name string, condition domain.Condition, category domain.Category) (string, error) {
	if err := guard(actor, "generate_description"); err != nil {
		return "", err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.NewValidationError("name", "is required")
	}

	return s.descriptions.GenerateDescription(ctx, name, condition, category), nil
}
