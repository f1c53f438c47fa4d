package rest

import (
	"context"
	"net/http"
	"time"

	"mobileHospital/business/catalog"
	"mobileHospital/domain"
	"mobileHospital/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type ProductReader interface {
	GetAll() []domain.Product
	FindByID(id string) (domain.Product, error)
}

type ProductHandler struct {
	products ProductReader
	surface  AdminSurface
	users    UserLookup
	timeout  time.Duration
}

func NewProductHandler(products ProductReader, surface AdminSurface, users UserLookup, timeout time.Duration) *ProductHandler {
	return &ProductHandler{
		products: products,
		surface:  surface,
		users:    users,
		timeout:  timeout,
	}
}

type DescriptionRequest struct {
	Name      string           `json:"name"`
	Condition domain.Condition `json:"condition"`
	Category  domain.Category  `json:"category"`
}

// Catalog lists the products visible under ?tab= matching ?q=.
func (h *ProductHandler) Catalog(c echo.Context) error {
	tab, err := catalog.ParseTab(c.QueryParam("tab"))
	if err != nil {
		return writeError(c, err)
	}

	products := catalog.VisibleProducts(h.products.GetAll(), tab, c.QueryParam("q"))
	return c.JSON(http.StatusOK, fres.Response.StatusOK(products))
}

func (h *ProductHandler) Tabs(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(catalog.Tabs(h.products.GetAll())))
}

func (h *ProductHandler) GetProductByID(c echo.Context) error {
	product, err := h.products.FindByID(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully find product by id",
		"product": product,
	})
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var draft domain.ProductDraft
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

	product, err := h.surface.CreateProduct(ctx, actor, draft)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Product successfully created",
		"product": product,
	})
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var patch domain.ProductPatch
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

	product, err := h.surface.UpdateProduct(ctx, actor, c.Param("id"), patch)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Product successfully updated",
		"product": product,
	})
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	actor, err := actorFrom(c, h.users)
	if err != nil {
		return writeError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.surface.DeleteProduct(ctx, actor, c.Param("id")); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Product successfully deleted",
	})
}

func (h *ProductHandler) GenerateDescription(c echo.Context) error {
	var req DescriptionRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	actor, err := actorFrom(c, h.users)
	if err != nil {
		return writeError(c, err)
	}

	// The generator has its own timeout; the request one still bounds it.
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	text, err := h.surface.GenerateDescription(ctx, actor, req.Name, req.Condition, req.Category)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":     "description generated",
		"description": text,
	})
}
