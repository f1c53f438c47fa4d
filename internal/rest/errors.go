package rest

import (
	"mobileHospital/internal/middleware"

	"github.com/labstack/echo/v4"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// writeError renders a domain error in the shared error envelope.
func writeError(c echo.Context, err error) error {
	status, body := middleware.ErrorBody(err)
	return c.JSON(status, body)
}
