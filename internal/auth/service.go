package auth

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/flyhigh-app/flyhigh/internal/models"
	"github.com/flyhigh-app/flyhigh/internal/store"
)

const (
	usersKey   = "flyhigh:users"
	sessionKey = "flyhigh:session"

	DefaultIdleTimeout       = 30 * time.Minute
	DefaultIdleCheckInterval = time.Minute
)

type Config struct {
	IdleTimeout       time.Duration
	IdleCheckInterval time.Duration

	// KeepRememberedOnLogout leaves the durable session slot in place on an
	// explicit logout, so the next start silently restores the remembered
	// user. Off, logout clears both tiers.
	KeepRememberedOnLogout bool

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Service is the session and credential store. It owns at most one current
// session at a time, persisted in two key-value tiers: durable ("remember
// me", survives restarts) and ephemeral (process lifetime).
type Service struct {
	durable   store.Store
	ephemeral store.Store
	cfg       Config

	mu      sync.Mutex
	current *models.SessionUser
	watcher *IdleWatcher
}

// NewService hydrates the session from the durable tier first, then the
// ephemeral tier. A hydrated session starts the idle watcher immediately.
func NewService(ctx context.Context, durable, ephemeral store.Store, cfg Config) (*Service, error) {
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.IdleCheckInterval <= 0 {
		cfg.IdleCheckInterval = DefaultIdleCheckInterval
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	s := &Service{
		durable:   durable,
		ephemeral: ephemeral,
		cfg:       cfg,
	}
	if err := s.hydrate(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) hydrate(ctx context.Context) error {
	for _, tier := range []store.Store{s.durable, s.ephemeral} {
		data, ok, err := tier.Get(ctx, sessionKey)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		var user models.SessionUser
		if err := json.Unmarshal(data, &user); err != nil {
			log.Printf("discarding unreadable session: %v", err)
			continue
		}
		s.mu.Lock()
		s.current = &user
		s.startWatcherLocked()
		s.mu.Unlock()
		return nil
	}
	return nil
}

// Signup registers a new account and opens a session for it in the
// ephemeral tier.
func (s *Service) Signup(ctx context.Context, email, password string) (*models.SessionUser, error) {
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if check := ValidatePassword(password); !check.Valid {
		return nil, &ValidationError{Field: "password", Message: check.Message}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if a.Email == email {
			return nil, &ConflictError{Email: email}
		}
	}

	account := models.Account{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  password,
		Name:      localPart(email),
		CreatedAt: s.cfg.Now(),
	}
	accounts = append(accounts, account)
	if err := s.saveAccounts(ctx, accounts); err != nil {
		return nil, err
	}

	user := account.SessionUser()
	if err := s.writeSession(ctx, s.ephemeral, user); err != nil {
		return nil, err
	}

	s.current = &user
	s.startWatcherLocked()
	return &user, nil
}

// Login opens a session for an existing account. With rememberMe the
// session lands in the durable tier and survives restarts.
func (s *Service) Login(ctx context.Context, email, password string, rememberMe bool) (*models.SessionUser, error) {
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, &ValidationError{Field: "password", Message: "Password is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return nil, err
	}

	var account *models.Account
	for i := range accounts {
		if accounts[i].Email == email {
			account = &accounts[i]
			break
		}
	}
	if account == nil {
		return nil, &NotFoundError{Email: email}
	}
	if account.Password != password {
		return nil, &AuthError{}
	}

	user := account.SessionUser()
	tier := s.ephemeral
	if rememberMe {
		tier = s.durable
	}
	if err := s.writeSession(ctx, tier, user); err != nil {
		return nil, err
	}

	s.current = &user
	s.startWatcherLocked()
	return &user, nil
}

// Logout clears the active session. Idempotent; calling it while anonymous
// is harmless.
func (s *Service) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	if !s.cfg.KeepRememberedOnLogout {
		if err := s.durable.Delete(ctx, sessionKey); err != nil {
			firstErr = err
		}
	}
	if err := s.ephemeral.Delete(ctx, sessionKey); err != nil && firstErr == nil {
		firstErr = err
	}

	s.current = nil
	s.stopWatcherLocked()
	return firstErr
}

// ProfileUpdate carries the fields a user may change. Nil fields are left
// untouched.
type ProfileUpdate struct {
	Name   *string `json:"name,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

// UpdateProfile merges the update into the current session user, into
// whichever tiers hold a session, and into the matching account record.
// A no-op while anonymous.
func (s *Service) UpdateProfile(ctx context.Context, update ProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}

	if update.Name != nil {
		s.current.Name = *update.Name
	}
	if update.Avatar != nil {
		s.current.Avatar = *update.Avatar
	}

	for _, tier := range []store.Store{s.durable, s.ephemeral} {
		_, ok, err := tier.Get(ctx, sessionKey)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := s.writeSession(ctx, tier, *s.current); err != nil {
			return err
		}
	}

	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return err
	}
	for i := range accounts {
		if accounts[i].Email != s.current.Email {
			continue
		}
		// The password never travels through a profile update.
		if update.Name != nil {
			accounts[i].Name = *update.Name
		}
		if update.Avatar != nil {
			accounts[i].Avatar = *update.Avatar
		}
		return s.saveAccounts(ctx, accounts)
	}
	return nil
}

// CurrentUser returns a copy of the active session user, or nil while
// anonymous.
func (s *Service) CurrentUser() *models.SessionUser {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	user := *s.current
	return &user
}

// Touch records user activity for the idle timeout. A no-op while
// anonymous.
func (s *Service) Touch() {
	s.mu.Lock()
	watcher := s.watcher
	s.mu.Unlock()

	if watcher != nil {
		watcher.Touch()
	}
}

// Close releases the idle watcher. The session itself is left as persisted.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopWatcherLocked()
}

func (s *Service) startWatcherLocked() {
	if s.watcher != nil {
		s.watcher.Stop()
	}
	s.watcher = NewIdleWatcher(s.cfg.IdleTimeout, s.cfg.IdleCheckInterval, s.cfg.Now, func() {
		log.Printf("session idle for more than %v, logging out", s.cfg.IdleTimeout)
		if err := s.Logout(context.Background()); err != nil {
			log.Printf("idle logout: %v", err)
		}
	})
	s.watcher.Start()
}

func (s *Service) stopWatcherLocked() {
	if s.watcher != nil {
		s.watcher.Stop()
		s.watcher = nil
	}
}

func (s *Service) loadAccounts(ctx context.Context) ([]models.Account, error) {
	data, ok, err := s.durable.Get(ctx, usersKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var accounts []models.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *Service) saveAccounts(ctx context.Context, accounts []models.Account) error {
	data, err := json.Marshal(accounts)
	if err != nil {
		return err
	}
	return s.durable.Set(ctx, usersKey, data)
}

func (s *Service) writeSession(ctx context.Context, tier store.Store, user models.SessionUser) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return tier.Set(ctx, sessionKey, data)
}

func localPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
