package rest

import (
	"errors"
	"fmt"

	"mobileHospital/domain"
	"mobileHospital/internal/middleware"

	"github.com/labstack/echo/v4"
)

// UserLookup resolves the token subject to the stored account.
type UserLookup interface {
	FindByID(id string) (domain.User, error)
}

// actorFrom returns the stored user behind the request token. A token for an
// account that no longer exists is not authorized.
func actorFrom(c echo.Context, users UserLookup) (domain.User, error) {
	userID, ok := c.Get(middleware.ContextUserID).(string)
	if !ok || userID == "" {
		return domain.User{}, domain.ErrNotAuthorized
	}

	u, err := users.FindByID(userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, fmt.Errorf("account %s: %w", userID, domain.ErrNotAuthorized)
	}
	if err != nil {
		return domain.User{}, err
	}

	return u, nil
}
