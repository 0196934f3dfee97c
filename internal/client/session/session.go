// Package session owns authentication state: the credential lifecycle, the
// derived user profile, and the cascade that tears everything down when the
// backend stops honoring the token.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"casefile/internal/client/api"
	"casefile/internal/client/creds"
	"casefile/internal/client/models"
	"casefile/internal/logging"
)

var (
	// ErrFlowInProgress rejects a login/register while another one is still
	// in flight. The REPL disables the affordance; this is the backstop.
	ErrFlowInProgress = errors.New("authentication flow already in progress")

	// ErrNotAuthenticated is returned by operations that need a session.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// State is the controller's position in the auth lifecycle.
type State int

const (
	StateUnauthenticated State = iota
	StateAuthenticating
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticating:
		return "Authenticating"
	case StateAuthenticated:
		return "Authenticated"
	default:
		return "Unauthenticated"
	}
}

// Snapshot is the immutable view handed to subscribers. Authenticated does
// not imply User is populated: there is a window while the profile fetch is
// still in flight.
type Snapshot struct {
	State         State
	Authenticated bool
	User          *models.UserProfile
}

// Controller is the single owner of session state. All mutations happen
// here; consumers observe via Subscribe or Snapshot.
type Controller struct {
	api   api.Client
	store creds.Store
	log   logging.Logger

	mu          sync.Mutex
	state       State
	user        *models.UserProfile
	cred        *creds.Credential
	epoch       uint64
	busy        bool
	subs        []func(Snapshot)
	logoutHooks []func()

	now func() time.Time
}

func New(client api.Client, store creds.Store, log logging.Logger) *Controller {
	return &Controller{
		api:   client,
		store: store,
		log:   log,
		now:   time.Now,
	}
}

// Token returns the current bearer token, or "" when unauthenticated.
// Satisfies api.TokenSource; the chat manager reads it the same way.
func (c *Controller) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cred == nil {
		return ""
	}
	return c.cred.Token
}

// Snapshot returns the current derived session state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		State:         c.state,
		Authenticated: c.state == StateAuthenticated,
		User:          c.user,
	}
}

// Subscribe registers fn to be called after every state transition.
func (c *Controller) Subscribe(fn func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}

// OnLogout registers a teardown hook invoked whenever the session ends,
// explicitly or via cascade. The chat manager hangs its Stop here.
func (c *Controller) OnLogout(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logoutHooks = append(c.logoutHooks, fn)
}

func (c *Controller) notify() {
	c.mu.Lock()
	snap := c.snapshotLocked()
	subs := make([]func(Snapshot), len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

func (c *Controller) beginFlow() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return ErrFlowInProgress
	}
	c.busy = true
	return nil
}

func (c *Controller) endFlow() {
	c.mu.Lock()
	c.busy = false
	c.mu.Unlock()
}

// Restore re-enters an authenticated session from a persisted credential on
// startup. Expired credentials are cleared; a live token is verified by
// refreshing the profile, which cascades into logout if the backend rejects
// it.
func (c *Controller) Restore(ctx context.Context) error {
	cred, err := c.store.Get(ctx)
	if err != nil {
		c.log.Warn(ctx, "credential store unavailable", "error", err)
		return nil
	}
	if cred == nil {
		return nil
	}
	if !cred.Valid(c.now()) {
		c.log.Info(ctx, "persisted credential expired, clearing")
		return c.store.Clear(ctx)
	}

	c.mu.Lock()
	c.cred = cred
	c.state = StateAuthenticated
	c.mu.Unlock()
	c.notify()

	return c.RefreshUser(ctx)
}

// Login authenticates with the backend. On success the credential is
// persisted and the profile fetched; on failure nothing is retained.
func (c *Controller) Login(ctx context.Context, usernameOrEmail, password string) error {
	if err := c.beginFlow(); err != nil {
		return err
	}
	defer c.endFlow()
	return c.login(ctx, usernameOrEmail, password)
}

func (c *Controller) login(ctx context.Context, usernameOrEmail, password string) error {
	resp, err := c.api.Login(ctx, models.LoginRequest{
		UsernameOrEmail: usernameOrEmail,
		Password:        password,
	})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	cred := creds.Credential{Token: resp.Token, ExpiresAt: resp.ExpiresAt}
	if err := c.store.Set(ctx, cred); err != nil {
		// Degraded persistence is not a login failure; the credential
		// lives in memory for this process.
		c.log.Warn(ctx, "failed to persist credential", "error", err)
	}

	c.mu.Lock()
	c.cred = &cred
	c.state = StateAuthenticating
	c.mu.Unlock()
	c.notify()

	return c.RefreshUser(ctx)
}

// Register creates the account and immediately logs in with the same
// credentials. Validation is the backend's job.
func (c *Controller) Register(ctx context.Context, username, email, password string) error {
	if err := c.beginFlow(); err != nil {
		return err
	}
	defer c.endFlow()

	if _, err := c.api.Register(ctx, models.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	}); err != nil {
		return fmt.Errorf("register: %w", err)
	}

	return c.login(ctx, username, password)
}

// Logout clears the credential and all derived state synchronously, then
// runs the teardown hooks. Idempotent; safe from any state.
func (c *Controller) Logout(ctx context.Context) error {
	c.mu.Lock()
	c.epoch++
	c.state = StateUnauthenticated
	c.user = nil
	c.cred = nil
	hooks := make([]func(), len(c.logoutHooks))
	copy(hooks, c.logoutHooks)
	c.mu.Unlock()

	if err := c.store.Clear(ctx); err != nil {
		c.log.Warn(ctx, "failed to clear persisted credential", "error", err)
	}

	for _, fn := range hooks {
		fn()
	}
	c.notify()
	return nil
}

// RefreshUser re-fetches the profile. An unauthorized response cascades into
// Logout; a result that resolves after a logout already happened is
// discarded (the epoch moved on).
func (c *Controller) RefreshUser(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StateUnauthenticated {
		c.mu.Unlock()
		return ErrNotAuthenticated
	}
	epoch := c.epoch
	c.mu.Unlock()

	profile, err := c.api.GetProfile(ctx)

	c.mu.Lock()
	if c.epoch != epoch {
		c.mu.Unlock()
		c.log.Debug(ctx, "discarding stale profile refresh")
		return nil
	}
	if err != nil {
		c.mu.Unlock()
		if errors.Is(err, api.ErrUnauthorized) {
			c.log.Warn(ctx, "token rejected by backend, logging out")
			_ = c.Logout(ctx)
			return fmt.Errorf("session expired: %w", err)
		}
		return fmt.Errorf("refresh profile: %w", err)
	}

	c.user = profile
	c.state = StateAuthenticated
	c.mu.Unlock()
	c.notify()
	return nil
}
