package rest

import (
	"context"
	"net/http"
	"time"

	"mobileHospital/business/auth"
	"mobileHospital/domain"
	"mobileHospital/pkg/logger"

	"github.com/labstack/echo/v4"
)

type AuthGate interface {
	Show(mode auth.State) (auth.State, error)
	Login(ctx context.Context, phone, password string) (domain.User, error)
	AdminLogin(ctx context.Context, phone, password string) (domain.User, error)
	Signup(ctx context.Context, draft domain.UserDraft) (domain.User, error)
	Logout(ctx context.Context)
	State() auth.State
	Current() (domain.User, bool)
}

type TokenGenerator interface {
	GenerateJWT(userID, role string) (string, error)
}

type AuthHandler struct {
	gate    AuthGate
	tokens  TokenGenerator
	timeout time.Duration
}

func NewAuthHandler(gate AuthGate, tokens TokenGenerator, timeout time.Duration) *AuthHandler {
	return &AuthHandler{
		gate:    gate,
		tokens:  tokens,
		timeout: timeout,
	}
}

type LoginRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

type ModeRequest struct {
	Mode string `json:"mode"`
}

type SignupRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

// Mode switches the anonymous device between login, signup and admin login.
func (h *AuthHandler) Mode(c echo.Context) error {
	var req ModeRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("invalid request body", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	mode, err := auth.ParseMode(req.Mode)
	if err != nil {
		return writeError(c, err)
	}

	state, err := h.gate.Show(mode)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"state": state,
	})
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("invalid request body", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	u, err := h.gate.Signup(ctx, domain.UserDraft{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}

	return h.issue(c, http.StatusCreated, "account created", u)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("invalid request body", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	u, err := h.gate.Login(ctx, req.PhoneNumber, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	return h.issue(c, http.StatusOK, "login success", u)
}

func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("invalid request body", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	u, err := h.gate.AdminLogin(ctx, req.PhoneNumber, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	return h.issue(c, http.StatusOK, "admin login success", u)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	h.gate.Logout(ctx)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "logout success",
	})
}

func (h *AuthHandler) State(c echo.Context) error {
	resp := map[string]interface{}{
		"state": h.gate.State(),
	}
	if u, ok := h.gate.Current(); ok {
		resp["user"] = u.Public()
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) issue(c echo.Context, status int, message string, u domain.User) error {
	token, err := h.tokens.GenerateJWT(u.ID, u.Role)
	if err != nil {
		logger.Error("failed to generate token", "id", u.ID, "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to generate token"})
	}

	return c.JSON(status, map[string]interface{}{
		"message": message,
		"token":   token,
		"user":    u.Public(),
	})
}
