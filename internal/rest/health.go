package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type StoreHealth interface {
	Healthy() bool
}

type HealthHandler struct {
	store   StoreHealth
	version string
}

func NewHealthHandler(store StoreHealth, version string) *HealthHandler {
	return &HealthHandler{store: store, version: version}
}

// Health reports 503 while the last durable write failed. The service keeps
// serving from memory in that state.
func (h *HealthHandler) Health(c echo.Context) error {
	status := http.StatusOK
	storage := "ok"
	if !h.store.Healthy() {
		status = http.StatusServiceUnavailable
		storage = "degraded"
	}

	return c.JSON(status, map[string]interface{}{
		"status":  storage,
		"version": h.version,
	})
}
