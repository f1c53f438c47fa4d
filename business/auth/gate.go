package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"mobileHospital/domain"
	"mobileHospital/pkg/logger"
	"mobileHospital/pkg/metrics"
	"mobileHospital/pkg/utils"
)

type State string

const (
	StateAnonymousLogin      State = "login"
	StateAnonymousSignup     State = "signup"
	StateAnonymousAdminLogin State = "admin_login"
	StateAuthenticated       State = "authenticated"
)

// UserRepository contract interface
type UserRepository interface {
	FindByID(id string) (domain.User, error)
	FindByPhone(phone string) (domain.User, error)
	Create(ctx context.Context, draft domain.UserDraft) (domain.User, error)
}

// SessionRepository contract interface
type SessionRepository interface {
	Current() (domain.User, bool)
	Set(ctx context.Context, u domain.User)
	Clear(ctx context.Context)
}

// Gate decides which surface the device shows and owns the persisted
// session. Every submit either authenticates or returns exactly one error.
type Gate struct {
	mu       sync.Mutex
	users    UserRepository
	sessions SessionRepository
	state    State
}

// NewGate restores a persisted session only while its user still exists.
func NewGate(ctx context.Context, users UserRepository, sessions SessionRepository) *Gate {
	g := &Gate{
		users:    users,
		sessions: sessions,
		state:    StateAnonymousLogin,
	}

	current, ok := sessions.Current()
	if !ok {
		return g
	}

	if _, err := users.FindByID(current.ID); err != nil {
		logger.Warn("persisted session has no matching user, signing out", "id", current.ID, "error", err)
		sessions.Clear(ctx)
		return g
	}

	g.state = StateAuthenticated
	return g
}

func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Gate) Current() (domain.User, bool) {
	return g.sessions.Current()
}

// ParseMode maps a requested sign-in mode onto its anonymous state.
func ParseMode(raw string) (State, error) {
	switch s := State(strings.ToLower(strings.TrimSpace(raw))); s {
	case StateAnonymousLogin, StateAnonymousSignup, StateAnonymousAdminLogin:
		return s, nil
	default:
		return "", domain.NewValidationError("mode", "must be one of login, signup, admin_login")
	}
}

// Show switches between the anonymous surfaces. A signed-in device must log
// out first.
func (g *Gate) Show(mode State) (State, error) {
	if _, err := ParseMode(string(mode)); err != nil {
		return "", err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == StateAuthenticated {
		return g.state, domain.ErrAlreadySignedIn
	}

	g.state = mode
	return g.state, nil
}

// Login signs a user in by phone and password. An unknown phone is
// ErrNotRegistered, a wrong password ErrInvalidCredentials.
func (g *Gate) Login(ctx context.Context, phone, password string) (domain.User, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.expect(StateAnonymousLogin); err != nil {
		g.record("login", err)
		return domain.User{}, err
	}

	u, err := g.match(phone, password)
	if err != nil {
		g.record("login", err)
		return domain.User{}, err
	}

	g.establish(ctx, u)
	g.record("login", nil)
	return u, nil
}

// AdminLogin is Login restricted to admin accounts. Correct customer
// credentials are rejected with ErrNotAuthorized.
func (g *Gate) AdminLogin(ctx context.Context, phone, password string) (domain.User, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.expect(StateAnonymousAdminLogin); err != nil {
		g.record("admin_login", err)
		return domain.User{}, err
	}

	u, err := g.match(phone, password)
	if err == nil && !u.IsAdmin() {
		err = domain.ErrNotAuthorized
	}
	if err != nil {
		g.record("admin_login", err)
		return domain.User{}, err
	}

	g.establish(ctx, u)
	g.record("admin_login", nil)
	return u, nil
}

// Signup registers a customer and signs them in.
func (g *Gate) Signup(ctx context.Context, draft domain.UserDraft) (domain.User, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.expect(StateAnonymousSignup); err != nil {
		g.record("signup", err)
		return domain.User{}, err
	}

	if err := checkPhone(draft.PhoneNumber); err != nil {
		g.record("signup", err)
		return domain.User{}, err
	}

	u, err := g.users.Create(ctx, draft)
	if err != nil {
		g.record("signup", err)
		return domain.User{}, err
	}

	g.establish(ctx, u)
	g.record("signup", nil)
	return u, nil
}

func (g *Gate) Logout(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.sessions.Clear(ctx)
	g.state = StateAnonymousLogin
	logger.Info("user logged out")
}

// UpdateSession refreshes the persisted session when u is the signed-in user.
func (g *Gate) UpdateSession(ctx context.Context, u domain.User) {
	g.mu.Lock()
	defer g.mu.Unlock()

	current, ok := g.sessions.Current()
	if ok && current.ID == u.ID {
		g.sessions.Set(ctx, u)
	}
}

// Forget signs the device out when the removed user id is the signed-in one.
func (g *Gate) Forget(ctx context.Context, id string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	current, ok := g.sessions.Current()
	if !ok || current.ID != id {
		return
	}

	g.sessions.Clear(ctx)
	g.state = StateAnonymousLogin
	logger.Info("signed-in user removed, session cleared", "id", id)
}

// expect rejects a submit made from any state other than want.
func (g *Gate) expect(want State) error {
	switch g.state {
	case want:
		return nil
	case StateAuthenticated:
		return domain.ErrAlreadySignedIn
	default:
		return domain.ErrWrongMode
	}
}

func (g *Gate) match(phone, password string) (domain.User, error) {
	if err := checkPhone(phone); err != nil {
		return domain.User{}, err
	}

	u, err := g.users.FindByPhone(phone)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, domain.ErrNotRegistered
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("find user: %w", err)
	}

	if u.Password != password {
		return domain.User{}, domain.ErrInvalidCredentials
	}

	return u, nil
}

func (g *Gate) establish(ctx context.Context, u domain.User) {
	g.sessions.Set(ctx, u)
	g.state = StateAuthenticated
	logger.Info("user signed in", "id", u.ID, "role", u.Role)
}

func (g *Gate) record(mode string, err error) {
	result := "success"
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrValidation):
		result = "invalid"
	case errors.Is(err, domain.ErrNotRegistered):
		result = "not_registered"
	case errors.Is(err, domain.ErrInvalidCredentials):
		result = "invalid_credentials"
	case errors.Is(err, domain.ErrNotAuthorized):
		result = "not_authorized"
	case errors.Is(err, domain.ErrDuplicatePhone):
		result = "duplicate_phone"
	case errors.Is(err, domain.ErrWrongMode), errors.Is(err, domain.ErrAlreadySignedIn):
		result = "wrong_state"
	default:
		result = "error"
	}

	if err != nil {
		logger.Warn("auth attempt rejected", "mode", mode, "error", err)
	}
	metrics.AuthAttempts.WithLabelValues(mode, result).Inc()
}

func checkPhone(phone string) error {
	if !utils.ValidPhone(phone) {
		return domain.NewValidationError("phoneNumber", "must be a valid 10-digit Indian phone number")
	}
	return nil
}
