package rest

import (
	"context"
	"net/http"
	"time"

	"mobileHospital/business/admin"
	"mobileHospital/business/contact"
	"mobileHospital/domain"
	"mobileHospital/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type ShopReader interface {
	Get() domain.ShopInfo
}

type ShopHandler struct {
	shop    ShopReader
	surface AdminSurface
	users   UserLookup
	timeout time.Duration
}

func NewShopHandler(shop ShopReader, surface AdminSurface, users UserLookup, timeout time.Duration) *ShopHandler {
	return &ShopHandler{
		shop:    shop,
		surface: surface,
		users:   users,
		timeout: timeout,
	}
}

func (h *ShopHandler) GetShopInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.shop.Get()))
}

// Contact returns chat, call, map and share targets, optionally about ?product=.
func (h *ShopHandler) Contact(c echo.Context) error {
	links := contact.LinksFor(h.shop.Get(), c.QueryParam("product"))
	return c.JSON(http.StatusOK, fres.Response.StatusOK(links))
}

func (h *ShopHandler) ReplaceShopInfo(c echo.Context) error {
	var info domain.ShopInfo
	if err := c.Bind(&info); err != nil {
		logger.Warn("failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	actor, err := actorFrom(c, h.users)
	if err != nil {
		return writeError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	saved, err := h.surface.ReplaceShopInfo(ctx, actor, info)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "Shop info successfully updated",
		"shopInfo": saved,
	})
}

// UpdateDealerSettings saves the dealer's own profile and the shop info in one call.
func (h *ShopHandler) UpdateDealerSettings(c echo.Context) error {
	var settings admin.DealerSettings
	if err := c.Bind(&settings); err != nil {
		logger.Warn("failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	actor, err := actorFrom(c, h.users)
	if err != nil {
		return writeError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	dealer, info, err := h.surface.UpdateDealerSettings(ctx, actor, settings)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "Dealer settings successfully updated",
		"dealer":   dealer.Public(),
		"shopInfo": info,
	})
}
