package auth

import (
	"context"
	"testing"

	"mobileHospital/business/session"
	"mobileHospital/business/store"
	"mobileHospital/business/user"
	"mobileHospital/domain"
	"mobileHospital/internal/testutil"
	"mobileHospital/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	adminPhone    = "8167435566"
	adminPassword = "Hospital@3030"
)

type fixture struct {
	gate     *Gate
	users    *user.Repository
	sessions *session.Repository
	kv       store.Backend
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()

	s, kv := testutil.NewStore(t)
	users := user.NewRepository(ctx, s, utils.NewIDGenerator(), utils.NewValidator(),
		domain.DefaultAdmin("Dealer Admin", adminPhone, adminPassword))
	sessions := session.NewRepository(ctx, s)

	return fixture{
		gate:     NewGate(ctx, users, sessions),
		users:    users,
		sessions: sessions,
		kv:       kv,
	}
}

func TestSignup_EstablishesCustomerSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	before := len(f.users.GetAll())

	state, err := f.gate.Show(StateAnonymousSignup)
	require.NoError(t, err)
	assert.Equal(t, StateAnonymousSignup, state)

	u, err := f.gate.Signup(ctx, domain.UserDraft{Name: "Asha", PhoneNumber: "9876543210", Password: "pw123"})
	require.NoError(t, err)

	assert.Equal(t, StateAuthenticated, f.gate.State())
	assert.Equal(t, domain.RoleCustomer, u.Role)

	persistedUsers := store.Load[[]domain.User](ctx, store.New(f.kv), store.KeyUsers, nil)
	require.Len(t, persistedUsers, before+1)
	assert.Equal(t, u, persistedUsers[len(persistedUsers)-1])

	current := store.Load[*domain.User](ctx, store.New(f.kv), store.KeyCurrentUser, nil)
	require.NotNil(t, current)
	assert.Equal(t, u, *current)
}

func TestSignup_Errors(t *testing.T) {
	tests := []struct {
		name  string
		draft domain.UserDraft
		want  error
	}{
		{"invalid phone", domain.UserDraft{Name: "Asha", PhoneNumber: "12345", Password: "pw"}, domain.ErrValidation},
		{"invalid phone before missing name", domain.UserDraft{PhoneNumber: "5555555555", Password: "pw"}, domain.ErrValidation},
		{"duplicate phone", domain.UserDraft{Name: "Asha", PhoneNumber: adminPhone, Password: "pw"}, domain.ErrDuplicatePhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.gate.Show(StateAnonymousSignup)
			require.NoError(t, err)

			_, err = f.gate.Signup(context.Background(), tt.draft)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, StateAnonymousSignup, f.gate.State())

			_, ok := f.gate.Current()
			assert.False(t, ok)
		})
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		phone    string
		password string
		want     error
	}{
		{"customer ok", "9876543210", "pw123", nil},
		{"admin ok", adminPhone, adminPassword, nil},
		{"wrong password", "9876543210", "nope", domain.ErrInvalidCredentials},
		{"unregistered", "9123456789", "pw123", domain.ErrNotRegistered},
		{"malformed phone", "98765", "pw123", domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.users.Create(ctx, domain.UserDraft{Name: "Asha", PhoneNumber: "9876543210", Password: "pw123"})
			require.NoError(t, err)

			u, err := f.gate.Login(ctx, tt.phone, tt.password)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
				assert.Equal(t, StateAnonymousLogin, f.gate.State())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.phone, u.PhoneNumber)
			assert.Equal(t, StateAuthenticated, f.gate.State())
		})
	}
}

func TestAdminLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.users.Create(ctx, domain.UserDraft{Name: "Asha", PhoneNumber: "9876543210", Password: "pw123"})
	require.NoError(t, err)

	_, err = f.gate.Show(StateAnonymousAdminLogin)
	require.NoError(t, err)

	_, err = f.gate.AdminLogin(ctx, "9876543210", "pw123")
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	assert.Equal(t, StateAnonymousAdminLogin, f.gate.State())

	_, err = f.gate.AdminLogin(ctx, adminPhone, "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	u, err := f.gate.AdminLogin(ctx, adminPhone, adminPassword)
	require.NoError(t, err)
	assert.True(t, u.IsAdmin())
	assert.Equal(t, StateAuthenticated, f.gate.State())
}

func TestNewGate_RestoresPersistedSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.gate.Login(ctx, adminPhone, adminPassword)
	require.NoError(t, err)

	restarted := NewGate(ctx, f.users, session.NewRepository(ctx, store.New(f.kv)))
	assert.Equal(t, StateAuthenticated, restarted.State())

	current, ok := restarted.Current()
	require.True(t, ok)
	assert.Equal(t, domain.DefaultAdminID, current.ID)
}

func TestLogout_ClearsSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.gate.Login(ctx, adminPhone, adminPassword)
	require.NoError(t, err)

	state, err := f.gate.Show(StateAnonymousSignup)
	assert.ErrorIs(t, err, domain.ErrAlreadySignedIn)
	assert.Equal(t, StateAuthenticated, state)

	f.gate.Logout(ctx)
	assert.Equal(t, StateAnonymousLogin, f.gate.State())

	_, present, err := f.kv.Get(ctx, store.KeyCurrentUser)
	require.NoError(t, err)
	assert.False(t, present)

	restarted := NewGate(ctx, f.users, session.NewRepository(ctx, store.New(f.kv)))
	assert.Equal(t, StateAnonymousLogin, restarted.State())
}

func TestUpdateSession_OnlyForSignedInUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	admin, err := f.gate.Login(ctx, adminPhone, adminPassword)
	require.NoError(t, err)

	f.gate.UpdateSession(ctx, domain.User{ID: "someone-else", Name: "X"})
	current, _ := f.gate.Current()
	assert.Equal(t, admin, current)

	admin.Name = "Renamed"
	f.gate.UpdateSession(ctx, admin)
	current, _ = f.gate.Current()
	assert.Equal(t, "Renamed", current.Name)
}

func TestSubmit_FromWrongState(t *testing.T) {
	ctx := context.Background()
	signupDraft := domain.UserDraft{Name: "Asha", PhoneNumber: "9876543210", Password: "pw123"}

	tests := []struct {
		name   string
		mode   State
		submit func(g *Gate) error
	}{
		{"signup from login", StateAnonymousLogin, func(g *Gate) error {
			_, err := g.Signup(ctx, signupDraft)
			return err
		}},
		{"admin login from login", StateAnonymousLogin, func(g *Gate) error {
			_, err := g.AdminLogin(ctx, adminPhone, adminPassword)
			return err
		}},
		{"login from signup", StateAnonymousSignup, func(g *Gate) error {
			_, err := g.Login(ctx, adminPhone, adminPassword)
			return err
		}},
		{"signup from admin login", StateAnonymousAdminLogin, func(g *Gate) error {
			_, err := g.Signup(ctx, signupDraft)
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.gate.Show(tt.mode)
			require.NoError(t, err)
			before := len(f.users.GetAll())

			assert.ErrorIs(t, tt.submit(f.gate), domain.ErrWrongMode)
			assert.Equal(t, tt.mode, f.gate.State())
			assert.Len(t, f.users.GetAll(), before)

			_, ok := f.gate.Current()
			assert.False(t, ok)
		})
	}
}

func TestSubmit_WhileSignedInKeepsSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.gate.Show(StateAnonymousSignup)
	require.NoError(t, err)
	customer, err := f.gate.Signup(ctx, domain.UserDraft{Name: "Asha", PhoneNumber: "9876543210", Password: "pw123"})
	require.NoError(t, err)

	_, err = f.gate.Login(ctx, adminPhone, adminPassword)
	assert.ErrorIs(t, err, domain.ErrAlreadySignedIn)
	_, err = f.gate.AdminLogin(ctx, adminPhone, adminPassword)
	assert.ErrorIs(t, err, domain.ErrAlreadySignedIn)
	_, err = f.gate.Signup(ctx, domain.UserDraft{Name: "Ravi", PhoneNumber: "9123456789", Password: "pw"})
	assert.ErrorIs(t, err, domain.ErrAlreadySignedIn)

	current, ok := f.gate.Current()
	require.True(t, ok)
	assert.Equal(t, customer.ID, current.ID)
	assert.Equal(t, StateAuthenticated, f.gate.State())
}

func TestParseMode(t *testing.T) {
	for raw, want := range map[string]State{
		"login":       StateAnonymousLogin,
		" Signup ":    StateAnonymousSignup,
		"ADMIN_LOGIN": StateAnonymousAdminLogin,
	} {
		got, err := ParseMode(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got)
	}

	for _, raw := range []string{"", "authenticated", "register"} {
		_, err := ParseMode(raw)
		assert.ErrorIs(t, err, domain.ErrValidation, raw)
	}
}

func TestNewGate_DropsSessionOfRemovedUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.gate.Show(StateAnonymousSignup)
	require.NoError(t, err)
	customer, err := f.gate.Signup(ctx, domain.UserDraft{Name: "Asha", PhoneNumber: "9876543210", Password: "pw123"})
	require.NoError(t, err)

	// removed behind the gate's back, as a second process sharing the store would
	require.NoError(t, f.users.Delete(ctx, customer.ID))

	restarted := NewGate(ctx, f.users, session.NewRepository(ctx, store.New(f.kv)))
	assert.Equal(t, StateAnonymousLogin, restarted.State())
	_, ok := restarted.Current()
	assert.False(t, ok)

	_, present, err := f.kv.Get(ctx, store.KeyCurrentUser)
	require.NoError(t, err)
	assert.False(t, present)
}

func TestForget(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.gate.Login(ctx, adminPhone, adminPassword)
	require.NoError(t, err)

	f.gate.Forget(ctx, "someone-else")
	assert.Equal(t, StateAuthenticated, f.gate.State())

	f.gate.Forget(ctx, domain.DefaultAdminID)
	assert.Equal(t, StateAnonymousLogin, f.gate.State())
	_, ok := f.gate.Current()
	assert.False(t, ok)
}
