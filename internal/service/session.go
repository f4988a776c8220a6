package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	domainauth "github.com/target/ticketdesk/internal/domain/auth"
	apperrors "github.com/target/ticketdesk/internal/errors"
	"github.com/target/ticketdesk/internal/ports"
)

// ErrSuperseded is returned by Login and Signup when a Logout happened while
// the request was in flight. The late result is discarded.
var ErrSuperseded = errors.New("session superseded by logout")

// SessionOptions groups dependencies for SessionController.
type SessionOptions struct {
	API    ports.AuthAPI
	Store  ports.CredentialStore
	Logger *slog.Logger
	// Now is the clock used to judge token expiry. Defaults to time.Now.
	Now func() time.Time
}

// SessionController owns the client session: the credential, the identity it
// resolves to, and whether resolution is in flight.
//
// Every identity resolution is tagged with the epoch current when it started.
// Results from an older epoch are dropped, so a Logout can never be undone by a
// late response.
type SessionController struct {
	api    ports.AuthAPI
	store  ports.CredentialStore
	logger *slog.Logger
	now    func() time.Time

	mu      sync.Mutex
	session domainauth.Session
	epoch   uint64
	logouts uint64

	obs observers[domainauth.Session]
}

// NewSessionController constructs a SessionController in the Unauthenticated state.
func NewSessionController(opts SessionOptions) *SessionController {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &SessionController{
		api:    opts.API,
		store:  opts.Store,
		logger: logger.With("component", "session"),
		now:    now,
	}
}

// Init restores a stored credential and resolves its identity.
// A credential the server rejects (or that is already expired) is cleared and
// the session ends Unauthenticated with Invalidated set; that outcome is logged,
// not returned. Only credential store read failures are returned.
func (s *SessionController) Init(ctx context.Context) error {
	gen := s.logoutGeneration()
	credential, err := s.store.Load(ctx)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "load stored credential")
	}
	if credential == "" {
		s.logger.DebugContext(ctx, "no stored credential")
		return nil
	}

	expiresAt := tokenExpiry(credential)

	s.mu.Lock()
	if s.logouts != gen {
		s.mu.Unlock()
		s.logger.DebugContext(ctx, "logout during credential load, not restoring")
		return nil
	}
	s.epoch++
	epoch := s.epoch
	s.api.SetToken(credential, expiresAt)
	s.session = domainauth.Session{Credential: credential, Resolving: true, ExpiresAt: expiresAt}
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.obs.notify(snap)

	if !expiresAt.IsZero() && !s.now().Before(expiresAt) {
		s.invalidate(ctx, epoch, true, fmt.Errorf("credential expired at %s", expiresAt.Format(time.RFC3339)))
		return nil
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		s.invalidate(ctx, epoch, true, err)
		return nil
	}
	s.commit(epoch, user)
	return nil
}

// Login exchanges email and password for a credential, persists it and
// resolves the identity. On endpoint failure the session is left untouched.
func (s *SessionController) Login(ctx context.Context, email, password string) (domainauth.User, error) {
	if email == "" || password == "" {
		return domainauth.User{}, apperrors.Validation("email and password are required")
	}
	gen := s.logoutGeneration()
	token, err := s.api.Login(ctx, ports.LoginInput{Email: email, Password: password})
	if err != nil {
		return domainauth.User{}, err
	}
	return s.establish(ctx, gen, token)
}

// Signup registers a new account and signs in with the issued credential.
func (s *SessionController) Signup(ctx context.Context, in ports.SignupInput) (domainauth.User, error) {
	if in.Email == "" || in.Password == "" || in.Username == "" {
		return domainauth.User{}, apperrors.Validation("username, email and password are required")
	}
	gen := s.logoutGeneration()
	token, err := s.api.Signup(ctx, in)
	if err != nil {
		return domainauth.User{}, err
	}
	return s.establish(ctx, gen, token)
}

// Logout clears the session in memory and in the credential store. It issues
// no network call and is safe to call repeatedly.
func (s *SessionController) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.epoch++
	s.logouts++
	changed := s.session != (domainauth.Session{})
	err := s.store.Clear(ctx)
	s.api.ClearToken()
	s.session = domainauth.Session{}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if changed {
		s.obs.notify(snap)
	}
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "clear stored credential")
	}
	return nil
}

// Snapshot returns a copy of the current session.
func (s *SessionController) Snapshot() domainauth.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// State returns the current lifecycle state.
func (s *SessionController) State() domainauth.State {
	return s.Snapshot().State()
}

// Identity returns the resolved user, if any.
func (s *SessionController) Identity() (domainauth.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.Identity == nil || s.session.Resolving {
		return domainauth.User{}, false
	}
	return *s.session.Identity, true
}

// Credential returns the current bearer credential ("" when signed out).
func (s *SessionController) Credential() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Credential
}

// Subscribe registers fn to receive the session after every transition.
func (s *SessionController) Subscribe(fn func(domainauth.Session)) (unsubscribe func()) {
	return s.obs.add(fn)
}

func (s *SessionController) logoutGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logouts
}

// establish installs a freshly issued credential and resolves its identity.
func (s *SessionController) establish(ctx context.Context, gen uint64, token string) (domainauth.User, error) {
	if token == "" {
		return domainauth.User{}, apperrors.Internal("server issued an empty credential")
	}
	expiresAt := tokenExpiry(token)

	s.mu.Lock()
	if s.logouts != gen {
		s.mu.Unlock()
		return domainauth.User{}, ErrSuperseded
	}
	if err := s.store.Save(ctx, token); err != nil {
		s.mu.Unlock()
		return domainauth.User{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "persist credential")
	}
	s.epoch++
	epoch := s.epoch
	s.api.SetToken(token, expiresAt)
	s.session = domainauth.Session{Credential: token, Resolving: true, ExpiresAt: expiresAt}
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.obs.notify(snap)

	user, err := s.api.Me(ctx)
	if err != nil {
		if !s.invalidate(ctx, epoch, false, err) {
			return domainauth.User{}, ErrSuperseded
		}
		return domainauth.User{}, err
	}
	if !s.commit(epoch, user) {
		return domainauth.User{}, ErrSuperseded
	}
	return user, nil
}

// commit records a resolved identity if epoch is still current.
func (s *SessionController) commit(epoch uint64, user domainauth.User) bool {
	s.mu.Lock()
	if s.epoch != epoch {
		s.mu.Unlock()
		s.logger.Debug("discarding stale identity resolution", "user_id", user.ID)
		return false
	}
	u := user
	s.session.Identity = &u
	s.session.Resolving = false
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Info("session authenticated", "user_id", user.ID, "role", string(user.Role))
	s.obs.notify(snap)
	return true
}

// invalidate drops the credential resolved under epoch. rejected marks the
// snapshot as Invalidated (a stored credential the server refused).
func (s *SessionController) invalidate(ctx context.Context, epoch uint64, rejected bool, cause error) bool {
	s.mu.Lock()
	if s.epoch != epoch {
		s.mu.Unlock()
		return false
	}
	s.epoch++
	clearErr := s.store.Clear(ctx)
	s.api.ClearToken()
	s.session = domainauth.Session{Invalidated: rejected}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.WarnContext(ctx, "credential rejected, session cleared", "error", cause)
	if clearErr != nil {
		s.logger.ErrorContext(ctx, "failed to clear stored credential", "error", clearErr)
	}
	s.obs.notify(snap)
	return true
}

func (s *SessionController) snapshotLocked() domainauth.Session {
	snap := s.session
	if snap.Identity != nil {
		u := *snap.Identity
		snap.Identity = &u
	}
	return snap
}

// tokenExpiry reads the exp claim of a JWT without verifying it. Opaque or
// malformed tokens, and tokens without exp, yield the zero time.
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// RequireIdentity returns the current identity or an unauthenticated error.
func RequireIdentity(src ports.IdentitySource) (domainauth.User, error) {
	if src == nil {
		return domainauth.User{}, apperrors.Unauthenticated("not signed in")
	}
	user, ok := src.Identity()
	if !ok {
		return domainauth.User{}, apperrors.Unauthenticated("not signed in")
	}
	return user, nil
}
