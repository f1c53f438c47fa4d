package rest

import (
	"context"
	"net/http"
	"time"

	"mobileHospital/domain"
	"mobileHospital/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type BannerReader interface {
	GetAll() []domain.Banner
}

type CarouselReader interface {
	Index() int
}

type BannerHandler struct {
	banners  BannerReader
	carousel CarouselReader
	surface  AdminSurface
	users    UserLookup
	timeout  time.Duration
}

func NewBannerHandler(banners BannerReader, carousel CarouselReader, surface AdminSurface, users UserLookup, timeout time.Duration) *BannerHandler {
	return &BannerHandler{
		banners:  banners,
		carousel: carousel,
		surface:  surface,
		users:    users,
		timeout:  timeout,
	}
}

func (h *BannerHandler) GetAllBanners(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.banners.GetAll()))
}

// CurrentBanner returns the slide the carousel is showing. Banner is null
// when there are no banners.
func (h *BannerHandler) CurrentBanner(c echo.Context) error {
	banners := h.banners.GetAll()
	idx := h.carousel.Index()

	var current *domain.Banner
	if idx >= 0 && idx < len(banners) {
		current = &banners[idx]
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"index":  idx,
		"total":  len(banners),
		"banner": current,
	})
}

func (h *BannerHandler) CreateBanner(c echo.Context) error {
	var draft domain.BannerDraft
	if err := c.Bind(&draft); err != nil {
		logger.Warn("failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	actor, err := actorFrom(c, h.users)
	if err != nil {
		return writeError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	banner, err := h.surface.CreateBanner(ctx, actor, draft)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(banner))
}

func (h *BannerHandler) UpdateBanner(c echo.Context) error {
	var patch domain.BannerPatch
	if err := c.Bind(&patch); err != nil {
		logger.Warn("failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	actor, err := actorFrom(c, h.users)
	if err != nil {
		return writeError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	banner, err := h.surface.UpdateBanner(ctx, actor, c.Param("id"), patch)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Banner successfully updated",
		"banner":  banner,
	})
}

func (h *BannerHandler) DeleteBanner(c echo.Context) error {
	actor, err := actorFrom(c, h.users)
	if err != nil {
		return writeError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.surface.DeleteBanner(ctx, actor, c.Param("id")); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Banner successfully deleted",
	})
}
