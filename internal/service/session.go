package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/homecraft/homecraft-cli/internal/logger"
	"github.com/homecraft/homecraft-cli/internal/model"
	"github.com/homecraft/homecraft-cli/internal/token"
)

// Auth owns the client session lifecycle: login, registration, logout
// and rehydration from durable storage. It is the single writer of the
// model.Session it is constructed with.
type Auth struct {
	session *model.Session
	api     model.AuthAPI
	cart    *Cart
	store   model.CredentialStore
	logger  *logger.Logger
	now     func() time.Time
}

func NewAuth(session *model.Session, api model.AuthAPI, cart *Cart, store model.CredentialStore, logger *logger.Logger) *Auth {
	return &Auth{
		session: session,
		api:     api,
		cart:    cart,
		store:   store,
		logger:  logger,
		now:     time.Now,
	}
}

// Session exposes the session context object for read access.
func (a *Auth) Session() *model.Session {
	return a.session
}

// Register creates an account. Success does not mutate session state;
// registration does not imply login.
func (a *Auth) Register(ctx context.Context, reg model.Registration) error {
	a.begin(model.StateAnonymous)
	defer a.finish()

	if err := a.api.Register(ctx, reg); err != nil {
		return a.fail("registration", err)
	}

	a.logger.Info("Auth service: registration completed", "email", reg.Email)
	return nil
}

// Login authenticates against the backend, persists the credential
// triple and composes the in-memory user snapshot, merging in the
// server-side cart. A cart fetch failure is non-fatal and yields an
// empty cart.
func (a *Auth) Login(ctx context.Context, creds model.Credentials) error {
	a.begin(model.StateAuthenticating)
	defer a.finish()

	res, err := a.api.Login(ctx, creds)
	if err != nil {
		return a.fail("login", err)
	}

	expiresAt, err := token.DecodeExpiry(res.Token)
	if err != nil {
		return a.fail("login", err)
	}

	if err := a.store.SaveToken(res.Token, expiresAt); err != nil {
		return a.fail("login", err)
	}

	cartProducts := a.cart.Fetch(ctx)

	user := &model.User{
		ID:                res.User.ID,
		Email:             res.User.Email,
		Name:              strings.TrimSpace(res.User.FirstName + " " + res.User.LastName),
		ProfilePictureURL: res.User.ProfilePictureURL,
		IsAdmin:           res.IsAdmin,
		IsTechnician:      res.IsTechnician,
		CartProducts:      cartProducts,
	}
	if err := a.store.SaveUser(user); err != nil {
		return a.fail("login", err)
	}

	a.session.User = user
	a.session.Token = res.Token
	a.session.TokenExpiresAt = expiresAt
	a.session.IsAuthenticated = true
	a.session.State = model.StateAuthenticated

	a.logger.Info("Auth service: login completed", "email", user.Email)
	return nil
}

// Logout invalidates the server-side session on a best-effort basis
// and unconditionally clears both the credential store and the
// in-memory session. It never fails from the caller's perspective.
func (a *Auth) Logout(ctx context.Context) {
	if err := a.api.Logout(ctx); err != nil {
		a.logger.Warn("Auth service: server logout failed", "error", err)
	}
	if err := a.store.Clear(); err != nil {
		a.logger.Error("Auth service: failed to clear credential store", "error", err)
	}
	a.session.Reset()
	a.logger.Info("Auth service: logged out")
}

// InitializeFromStorage rehydrates the session from the credential
// store on startup. An absent or expired triple, and any re-validation
// failure, silently leaves the session anonymous; this runs on every
// start and must never surface an error to the user.
func (a *Auth) InitializeFromStorage(ctx context.Context) {
	creds, err := a.store.Load()
	if err != nil {
		a.logger.Error("Auth service: failed to load stored credentials", "error", err)
		return
	}
	if creds == nil {
		return
	}

	// Fail closed: a token expiring exactly now counts as expired.
	if a.now().UnixMilli() >= creds.ExpiresAt {
		a.logger.Debug("Auth service: stored token expired", "expires_at", creds.ExpiresAt)
		a.clearSilently()
		return
	}

	// Re-validate against the server and pick up fresh role flags.
	account, err := a.api.GetCurrentUser(ctx)
	if err != nil {
		a.logger.Warn("Auth service: session re-validation failed", "error", err)
		a.clearSilently()
		return
	}

	user := creds.User
	user.IsAdmin = account.IsAdmin
	user.IsTechnician = account.IsTechnician

	a.session.User = user
	a.session.Token = creds.Token
	a.session.TokenExpiresAt = creds.ExpiresAt
	a.session.IsAuthenticated = true
	a.session.State = model.StateAuthenticated

	a.logger.Debug("Auth service: session rehydrated", "email", user.Email)
}

// ResetState hard-resets both the credential store and the in-memory
// session without contacting the server. Used for forced sign-out.
func (a *Auth) ResetState() {
	a.clearSilently()
}

func (a *Auth) clearSilently() {
	if err := a.store.Clear(); err != nil {
		a.logger.Error("Auth service: failed to clear credential store", "error", err)
	}
	a.session.Reset()
}

func (a *Auth) begin(state model.SessionState) {
	if a.session.State == model.StateError {
		a.session.State = model.StateAnonymous
	}
	if state == model.StateAuthenticating {
		a.session.State = state
	}
	a.session.Loading = true
	a.session.LastError = ""
}

func (a *Auth) finish() {
	a.session.Loading = false
}

// fail records the user-facing message, flips the session into the
// transient error state and re-signals the failure to the caller.
func (a *Auth) fail(op string, err error) error {
	a.session.LastError = model.UserMessage(err)
	a.session.State = model.StateError
	a.logger.Error("Auth service: "+op+" failed", "error", err)
	return fmt.Errorf("%s failed: %w", op, err)
}
