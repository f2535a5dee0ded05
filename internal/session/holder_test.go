package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fernandoemejia/ecommerce-frontend/internal/domain"
	"github.com/fernandoemejia/ecommerce-frontend/internal/store"
)

type mockAuthAPI struct {
	m         sync.Mutex
	loginResp *domain.LoginResponse
	loginErr  error
	user      *domain.User
	userErr   error
	calls     int
}

func (m *mockAuthAPI) Login(context.Context, domain.LoginRequest) (*domain.LoginResponse, error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.calls++
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	return m.loginResp, nil
}

func (m *mockAuthAPI) Register(_ context.Context, req domain.RegisterRequest) (*domain.User, error) {
	return &domain.User{Username: req.Username, Email: req.Email, Role: domain.RoleCustomer}, nil
}

func (m *mockAuthAPI) CurrentUser(context.Context) (*domain.User, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.userErr != nil {
		return nil, m.userErr
	}
	return m.user, nil
}

func newHolder(auth *mockAuthAPI, st store.Store) *Holder {
	return NewHolder(auth, st, zap.NewNop())
}

func TestHydrateRestoresValidSession(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	require.NoError(t, st.Set(ctx, "auth_token", "abc"))
	require.NoError(t, st.Set(ctx, "auth_user", `{"id":7,"username":"ann","email":"ann@example.com","role":"CUSTOMER"}`))

	h := newHolder(&mockAuthAPI{}, st)
	h.Hydrate(ctx)

	assert.True(t, h.Authenticated())
	assert.Equal(t, "abc", h.Token())
	require.NotNil(t, h.CurrentUser())
	assert.Equal(t, int64(7), h.CurrentUser().ID)
	assert.Equal(t, "ann", h.CurrentUser().Username)
}

func TestHydrateCorruptUserClearsMirror(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	require.NoError(t, st.Set(ctx, "auth_token", "abc"))
	require.NoError(t, st.Set(ctx, "auth_user", "{not json"))

	h := newHolder(&mockAuthAPI{}, st)
	h.Hydrate(ctx)

	assert.False(t, h.Authenticated())
	_, err := st.Get(ctx, "auth_token")
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Get(ctx, "auth_user")
	assert.ErrorIs(t, err, store.ErrNotFound)

	// second hydrate on the cleared mirror is a quiet no-op
	h.Hydrate(ctx)
	assert.False(t, h.Authenticated())
}

func TestHydrateHalfPairClearsTheRest(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	require.NoError(t, st.Set(ctx, "auth_token", "abc"))

	h := newHolder(&mockAuthAPI{}, st)
	h.Hydrate(ctx)

	assert.False(t, h.Authenticated())
	_, err := st.Get(ctx, "auth_token")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestHydrateExpiredJWTClearsMirror(t *testing.T) {
	ctx := context.Background()

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "7",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)

	st := store.NewMemory()
	require.NoError(t, st.Set(ctx, "auth_token", expired))
	require.NoError(t, st.Set(ctx, "auth_user", `{"id":7,"role":"CUSTOMER"}`))

	h := newHolder(&mockAuthAPI{}, st)
	h.Hydrate(ctx)

	assert.False(t, h.Authenticated())
	_, err = st.Get(ctx, "auth_token")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestHydrateOpaqueTokenIsAccepted(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	require.NoError(t, st.Set(ctx, "auth_token", "not-a-jwt-at-all"))
	require.NoError(t, st.Set(ctx, "auth_user", `{"id":1,"role":"CUSTOMER"}`))

	h := newHolder(&mockAuthAPI{}, st)
	h.Hydrate(ctx)

	assert.True(t, h.Authenticated())
}

func TestLoginPersistsAndSwapsState(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	auth := &mockAuthAPI{loginResp: &domain.LoginResponse{
		Token: "fresh-token",
		User:  domain.User{ID: 3, Username: "bob", Email: "bob@example.com", Role: domain.RoleSeller},
	}}

	h := newHolder(auth, st)
	user, err := h.Login(ctx, domain.LoginRequest{Email: "bob@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)
	assert.True(t, h.Authenticated())
	assert.True(t, h.IsSeller())
	assert.False(t, h.IsAdmin())
	assert.Equal(t, "fresh-token", h.Token())

	tok, err := st.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", tok)
	_, err = st.Get(ctx, "auth_user")
	require.NoError(t, err)
}

func TestLoginFailureLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	require.NoError(t, st.Set(ctx, "auth_token", "old"))
	require.NoError(t, st.Set(ctx, "auth_user", `{"id":1,"role":"CUSTOMER"}`))

	h := newHolder(&mockAuthAPI{loginErr: errors.New("invalid credentials")}, st)
	h.Hydrate(ctx)

	_, err := h.Login(ctx, domain.LoginRequest{Email: "x", Password: "wrong"})

	assert.Error(t, err)
	assert.True(t, h.Authenticated())
	assert.Equal(t, "old", h.Token())
}

func TestLogoutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	auth := &mockAuthAPI{loginResp: &domain.LoginResponse{
		Token: "t", User: domain.User{ID: 1, Role: domain.RoleCustomer},
	}}

	h := newHolder(auth, st)
	_, err := h.Login(ctx, domain.LoginRequest{})
	require.NoError(t, err)

	h.Logout(ctx)
	h.Logout(ctx)

	assert.False(t, h.Authenticated())
	assert.Empty(t, h.Token())
	assert.Nil(t, h.CurrentUser())
	_, err = st.Get(ctx, "auth_token")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRefreshIdentityKeepsToken(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	auth := &mockAuthAPI{
		loginResp: &domain.LoginResponse{Token: "t1", User: domain.User{ID: 1, Username: "old-name", Role: domain.RoleCustomer}},
		user:      &domain.User{ID: 1, Username: "new-name", Role: domain.RoleAdmin},
	}

	h := newHolder(auth, st)
	_, err := h.Login(ctx, domain.LoginRequest{})
	require.NoError(t, err)

	user, err := h.RefreshIdentity(ctx)
	require.NoError(t, err)

	assert.Equal(t, "new-name", user.Username)
	assert.Equal(t, "t1", h.Token())
	assert.True(t, h.IsAdmin())
}

func TestRefreshIdentityFailureLeavesSessionIntact(t *testing.T) {
	ctx := context.Background()
	auth := &mockAuthAPI{
		loginResp: &domain.LoginResponse{Token: "t1", User: domain.User{ID: 1, Username: "ann", Role: domain.RoleCustomer}},
		userErr:   errors.New("network unreachable"),
	}

	h := newHolder(auth, store.NewMemory())
	_, err := h.Login(context.Background(), domain.LoginRequest{})
	require.NoError(t, err)

	_, err = h.RefreshIdentity(ctx)

	assert.Error(t, err)
	assert.True(t, h.Authenticated())
	assert.Equal(t, "ann", h.CurrentUser().Username)
}

func TestRefreshIdentityWithoutSession(t *testing.T) {
	h := newHolder(&mockAuthAPI{}, store.NewMemory())

	_, err := h.RefreshIdentity(context.Background())

	assert.ErrorIs(t, err, ErrNoSession)
}
