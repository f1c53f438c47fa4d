package rest

import (
	"context"

	"mobileHospital/business/admin"
	"mobileHospital/domain"
)

// AdminSurface is the dealer command set used by the admin endpoints.
type AdminSurface interface {
	CreateProduct(ctx context.Context, actor domain.User, draft domain.ProductDraft) (domain.Product, error)
	UpdateProduct(ctx context.Context, actor domain.User, id string, patch domain.ProductPatch) (domain.Product, error)
	DeleteProduct(ctx context.Context, actor domain.User, id string) error
	GenerateDescription(ctx context.Context, actor domain.User, name string, condition domain.Condition, category domain.Category) (string, error)

	CreateBanner(ctx context.Context, actor domain.User, draft domain.BannerDraft) (domain.Banner, error)
	UpdateBanner(ctx context.Context, actor domain.User, id string, patch domain.BannerPatch) (domain.Banner, error)
	DeleteBanner(ctx context.Context, actor domain.User, id string) error

	ReplaceShopInfo(ctx context.Context, actor domain.User, info domain.ShopInfo) (domain.ShopInfo, error)
	UpdateDealerSettings(ctx context.Context, actor domain.User, settings admin.DealerSettings) (domain.User, domain.ShopInfo, error)

	ListCustomers(actor domain.User) ([]domain.User, error)
	DeleteUser(ctx context.Context, actor domain.User, id string) error
}
