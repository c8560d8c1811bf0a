// Package session owns the client's authentication state: the current user
// record and bearer token. It is the single source of truth for "who is
// logged in"; all mutation goes through Login, Signup, Logout, Hydrate and
// Refresh. Whenever the token changes the store pushes it into the API
// client's default request configuration, so every backend call made
// anywhere in the process carries the credential.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vincenttwizere/Refuture-sub002/internal/client/api"
	"github.com/vincenttwizere/Refuture-sub002/internal/client/models"
	"github.com/vincenttwizere/Refuture-sub002/internal/logging"
)

// TokenStorage is the durable local store for the bearer token. The session
// store is its only writer.
type TokenStorage interface {
	Token() (string, error)
	SaveToken(token string) error
	DeleteToken() error
}

// Snapshot is a point-in-time copy of the session, safe to read without
// coordination. The route guard is a pure function of a Snapshot and a
// navigation target.
type Snapshot struct {
	// Loading is true only while startup hydration or a login/signup call
	// is in flight.
	Loading bool
	Token   string
	User    *models.User
}

// IsAuthenticated holds iff both token and user are present. The store
// never sets one without the other.
func (s Snapshot) IsAuthenticated() bool {
	return s.Token != "" && s.User != nil
}

// Result is the outcome of a login or signup. Operations never return
// errors across this boundary; failures carry a human-readable Message.
type Result struct {
	Success    bool
	RedirectTo string
	Message    string
}

// Store holds the session and serializes all mutation.
type Store struct {
	api     api.Client
	tokens  TokenStorage
	log     logging.Logger
	timeout time.Duration

	mu      sync.Mutex
	gen     uint64
	loading bool
	token   string
	user    *models.User
}

// NewStore builds an empty, unauthenticated session store.
func NewStore(client api.Client, tokens TokenStorage, log logging.Logger) *Store {
	return &Store{
		api:     client,
		tokens:  tokens,
		log:     log,
		timeout: 3 * time.Second,
	}
}

// Snapshot returns a copy of the current session state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{Loading: s.loading, Token: s.token, User: s.user}
}

// IsAuthenticated reports whether both token and user are present.
func (s *Store) IsAuthenticated() bool {
	return s.Snapshot().IsAuthenticated()
}

// beginOp marks the session as loading and returns the generation the
// operation belongs to. A result may only be applied while the generation
// is unchanged; Logout bumps it, which invalidates in-flight operations.
func (s *Store) beginOp() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	return s.gen
}

// apply installs token+user atomically if gen is still current. It returns
// false when the result arrived stale (e.g. after a logout) and was dropped.
func (s *Store) apply(ctx context.Context, gen uint64, token string, user *models.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	s.loading = false
	if err := s.tokens.SaveToken(token); err != nil {
		s.log.Warn(ctx, "persisting token failed", "err", err)
	}
	s.token = token
	s.user = user
	s.api.SetToken(token)
	return true
}

// reset clears the session to unauthenticated under the lock held by the
// caller's operation generation; stale resets are dropped like stale applies.
func (s *Store) reset(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return
	}
	s.loading = false
	s.token = ""
	s.user = nil
	_ = s.tokens.DeleteToken()
	s.api.ClearToken()
}

// endOp clears the loading flag without touching session state, for failed
// logins that must leave everything else as it was.
func (s *Store) endOp(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return
	}
	s.loading = false
}

// Hydrate restores the session from the persisted token at startup. It is a
// single best-effort attempt: a token the backend rejects is treated as an
// implicit logout and no error surfaces anywhere.
func (s *Store) Hydrate(ctx context.Context) {
	gen := s.beginOp()

	token, err := s.tokens.Token()
	if err != nil || token == "" {
		if err != nil {
			s.log.Warn(ctx, "reading persisted token failed", "err", err)
		}
		s.reset(gen)
		return
	}

	s.api.SetToken(token)
	user, err := s.api.Me(ctx)
	if err != nil {
		s.log.Info(ctx, "session hydration rejected, logging out", "err", err)
		s.reset(gen)
		return
	}

	s.apply(ctx, gen, token, user)
}

// Login authenticates with the backend. On success the token is persisted
// and token+user are installed atomically; on failure the previous state is
// left untouched and the backend message is surfaced.
func (s *Store) Login(ctx context.Context, email, password string) Result {
	gen := s.beginOp()

	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.endOp(gen)
		return Result{Success: false, Message: api.MessageFor(err)}
	}

	if !s.apply(ctx, gen, resp.Token, resp.User) {
		return Result{Success: false, Message: "session changed, please sign in again"}
	}
	return Result{Success: true, RedirectTo: resp.RedirectTo}
}

// Signup registers a new account. Same contract as Login.
func (s *Store) Signup(ctx context.Context, req api.SignupRequest) Result {
	gen := s.beginOp()

	resp, err := s.api.Signup(ctx, req)
	if err != nil {
		s.endOp(gen)
		return Result{Success: false, Message: api.MessageFor(err)}
	}

	if !s.apply(ctx, gen, resp.Token, resp.User) {
		return Result{Success: false, Message: "session changed, please sign in again"}
	}
	return Result{Success: true, RedirectTo: resp.RedirectTo}
}

// Logout clears the session synchronously and always succeeds locally.
// Server-side revocation is fire-and-forget; its outcome never surfaces.
func (s *Store) Logout() {
	s.mu.Lock()
	token := s.token
	s.gen++
	s.loading = false
	s.token = ""
	s.user = nil
	_ = s.tokens.DeleteToken()
	s.api.ClearToken()
	s.mu.Unlock()

	if token == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		if err := s.api.Logout(ctx, token); err != nil {
			s.log.Debug(ctx, "server-side logout failed", "err", err)
		}
	}()
}

// Refresh re-fetches the user record so derived flags like hasProfile are
// current, e.g. right after profile creation. An unauthorized response is
// an implicit logout; other errors leave the session as is.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	gen := s.gen
	token := s.token
	s.mu.Unlock()
	if token == "" {
		return nil
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			s.reset(gen)
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == s.gen {
		s.user = user
	}
	return nil
}
