package accounts

import (
	"context"
	"encoding/json"
	"strings"

	"cvmatch-backend/internal/shared/kv"
	"cvmatch-backend/internal/shared/telemetry"
)

const (
	userKeyPrefix = "cv_analyzer_user_"
	activeUserKey = "cv_analyzer_active_user"
)

var (
	ErrNotFound      = errNotFound{}
	ErrAccountExists = errAccountExists{}
	ErrInvalidInput  = errInvalidInput{}
)

type errNotFound struct{}

func (errNotFound) Error() string { return "account not found" }

type errAccountExists struct{}

func (errAccountExists) Error() string { return "account already exists" }

type errInvalidInput struct{}

func (errInvalidInput) Error() string { return "email and name are required" }

// Store owns user records and the single active-session pointer.
type Store struct {
	KV kv.Store
}

// NewStore constructs a Store over the given key-value backend.
func NewStore(backend kv.Store) *Store {
	return &Store{KV: backend}
}

// Login looks up a previously signed-up user by exact email match and, on
// success, sets the persisted active-session pointer. It never creates a
// user; an unknown email returns ErrNotFound.
func (s *Store) Login(ctx context.Context, email string) (User, error) {
	if strings.TrimSpace(email) == "" {
		return User{}, ErrInvalidInput
	}
	raw, ok, err := s.KV.Get(ctx, userKeyPrefix+email)
	if err != nil {
		return User{}, err
	}
	if !ok {
		return User{}, ErrNotFound
	}
	user, ok := decodeUser(raw)
	if !ok {
		// Corrupt record reads as no account.
		return User{}, ErrNotFound
	}
	if err := s.setActive(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Signup creates a user record for email and sets it as the active session.
// Uniqueness is enforced here: an already-registered email returns
// ErrAccountExists rather than overwriting the record.
func (s *Store) Signup(ctx context.Context, email, name string) (User, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(name) == "" {
		return User{}, ErrInvalidInput
	}
	if _, ok, err := s.KV.Get(ctx, userKeyPrefix+email); err != nil {
		return User{}, err
	} else if ok {
		return User{}, ErrAccountExists
	}

	user := User{Email: email, Name: name}
	payload, err := json.Marshal(user)
	if err != nil {
		return User{}, err
	}
	if err := s.KV.Set(ctx, userKeyPrefix+email, string(payload)); err != nil {
		return User{}, err
	}
	if err := s.setActive(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Logout clears the active-session pointer only; user records remain.
func (s *Store) Logout(ctx context.Context) error {
	return s.KV.Delete(ctx, activeUserKey)
}

// CurrentUser reads the persisted active-session pointer without side
// effects. Missing or corrupt data reads as no user.
func (s *Store) CurrentUser(ctx context.Context) (User, bool) {
	raw, ok, err := s.KV.Get(ctx, activeUserKey)
	if err != nil || !ok {
		return User{}, false
	}
	return decodeUser(raw)
}

func (s *Store) setActive(ctx context.Context, user User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.KV.Set(ctx, activeUserKey, string(payload))
}

func decodeUser(raw string) (User, bool) {
	var user User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		telemetry.Warn("accounts.corrupt_record", map[string]any{"error": err.Error()})
		return User{}, false
	}
	if strings.TrimSpace(user.Email) == "" {
		return User{}, false
	}
	return user, true
}
