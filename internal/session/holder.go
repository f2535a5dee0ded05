package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/fernandoemejia/ecommerce-frontend/internal/domain"
	"github.com/fernandoemejia/ecommerce-frontend/internal/store"
)

// Persisted mirror keys. Always written together and cleared together so
// the mirror can never hold a token without its user or vice versa.
const (
	tokenKey = "auth_token"
	userKey  = "auth_user"
)

type authAPI interface {
	Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error)
	CurrentUser(ctx context.Context) (*domain.User, error)
}

// state is swapped as a whole value; readers never see a token without
// its user.
type state struct {
	user  *domain.User
	token string
}

// Holder owns the current authenticated identity. The persisted copy in
// the store is a mirror only; once loaded, the in-memory state wins.
type Holder struct {
	m      sync.RWMutex
	state  state
	auth   authAPI
	store  store.Store
	logger *zap.Logger
}

func NewHolder(auth authAPI, st store.Store, logger *zap.Logger) *Holder {
	return &Holder{
		auth:   auth,
		store:  st,
		logger: logger,
	}
}

// Hydrate restores the session persisted by a previous run. Any problem
// with the persisted pair (missing half, corrupt user JSON, expired
// token) degrades to logged out; it never fails the caller.
func (h *Holder) Hydrate(ctx context.Context) {
	token, errToken := h.store.Get(ctx, tokenKey)
	userJSON, errUser := h.store.Get(ctx, userKey)

	if errors.Is(errToken, store.ErrNotFound) && errors.Is(errUser, store.ErrNotFound) {
		return
	}
	if errToken != nil || errUser != nil {
		// one half missing breaks the pair invariant, wipe the rest
		if errors.Is(errToken, store.ErrNotFound) || errors.Is(errUser, store.ErrNotFound) {
			h.clearStored(ctx)
			return
		}
		h.logger.Warn("session store unreadable, starting logged out",
			zap.NamedError("token_err", errToken), zap.NamedError("user_err", errUser))
		return
	}

	var user domain.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		h.logger.Warn("stored user is corrupt, clearing session", zap.Error(err))
		h.clearStored(ctx)
		return
	}

	if tokenExpired(token) {
		h.logger.Info("stored token expired, clearing session")
		h.clearStored(ctx)
		return
	}

	h.m.Lock()
	h.state = state{user: &user, token: token}
	h.m.Unlock()
}

// Login authenticates against the API. On success the new identity is
// persisted and swapped in; on failure the current session is untouched.
func (h *Holder) Login(ctx context.Context, credentials domain.LoginRequest) (*domain.User, error) {
	resp, err := h.auth.Login(ctx, credentials)
	if err != nil {
		return nil, err
	}

	user := resp.User
	h.persist(ctx, resp.Token, &user)

	h.m.Lock()
	h.state = state{user: &user, token: resp.Token}
	h.m.Unlock()

	return &user, nil
}

// Register creates an account. It does not log the new user in.
func (h *Holder) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	return h.auth.Register(ctx, req)
}

// Logout clears the session unconditionally and without contacting the
// API. Calling it twice is the same as calling it once.
func (h *Holder) Logout(ctx context.Context) {
	h.clearStored(ctx)
	h.m.Lock()
	h.state = state{}
	h.m.Unlock()
}

// RefreshIdentity re-fetches the current user with the existing token.
// Failure to refresh does not imply logout; the session stays as is.
func (h *Holder) RefreshIdentity(ctx context.Context) (*domain.User, error) {
	h.m.RLock()
	token := h.state.token
	h.m.RUnlock()
	if token == "" {
		return nil, ErrNoSession
	}

	user, err := h.auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	h.persist(ctx, token, user)

	h.m.Lock()
	// token may have been cleared by a concurrent logout, do not revive it
	if h.state.token == token {
		h.state = state{user: user, token: token}
	}
	h.m.Unlock()

	return user, nil
}

func (h *Holder) Authenticated() bool {
	h.m.RLock()
	defer h.m.RUnlock()
	return h.state.user != nil && h.state.token != ""
}

func (h *Holder) IsAdmin() bool {
	h.m.RLock()
	defer h.m.RUnlock()
	return h.state.user != nil && h.state.user.Role == domain.RoleAdmin
}

func (h *Holder) IsSeller() bool {
	h.m.RLock()
	defer h.m.RUnlock()
	return h.state.user != nil && h.state.user.Role == domain.RoleSeller
}

func (h *Holder) Token() string {
	h.m.RLock()
	defer h.m.RUnlock()
	return h.state.token
}

func (h *Holder) CurrentUser() *domain.User {
	h.m.RLock()
	defer h.m.RUnlock()
	if h.state.user == nil {
		return nil
	}
	u := *h.state.user
	return &u
}

func (h *Holder) persist(ctx context.Context, token string, user *domain.User) {
	userJSON, err := json.Marshal(user)
	if err != nil {
		h.logger.Warn("marshal user for session mirror", zap.Error(err))
		return
	}
	// mirror failures are logged, not surfaced: the in-memory session is
	// the source of truth and stays valid for this run
	if err := h.store.Set(ctx, tokenKey, token); err != nil {
		h.logger.Warn("persist session token", zap.Error(err))
		return
	}
	if err := h.store.Set(ctx, userKey, string(userJSON)); err != nil {
		h.logger.Warn("persist session user", zap.Error(err))
	}
}

func (h *Holder) clearStored(ctx context.Context) {
	if err := h.store.Delete(ctx, tokenKey); err != nil {
		h.logger.Warn("clear session token", zap.Error(err))
	}
	if err := h.store.Delete(ctx, userKey); err != nil {
		h.logger.Warn("clear session user", zap.Error(err))
	}
}

// tokenExpired inspects the token's exp claim without verifying the
// signature (verification is the server's job). Opaque non-JWT tokens
// pass through untouched.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
