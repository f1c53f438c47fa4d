package rest

import (
	"context"
	"net/http"
	"time"

	"mobileHospital/domain"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	surface AdminSurface
	users   UserLookup
	timeout time.Duration
}

func NewUserHandler(surface AdminSurface, users UserLookup, timeout time.Duration) *UserHandler {
	return &UserHandler{
		surface: surface,
		users:   users,
		timeout: timeout,
	}
}

// GetAllCustomers lists registered customers without their passwords.
func (h *UserHandler) GetAllCustomers(c echo.Context) error {
	actor, err := actorFrom(c, h.users)
	if err != nil {
		return writeError(c, err)
	}

	customers, err := h.surface.ListCustomers(actor)
	if err != nil {
		return writeError(c, err)
	}

	out := make([]domain.User, 0, len(customers))
	for _, u := range customers {
		out = append(out, u.Public())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get all customers",
		"users":   out,
	})
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	actor, err := actorFrom(c, h.users)
	if err != nil {
		return writeError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.surface.DeleteUser(ctx, actor, c.Param("id")); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "User successfully deleted",
	})
}
