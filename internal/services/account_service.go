package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"arthsaathi/internal/core"
	"arthsaathi/internal/kvstore"
	"arthsaathi/internal/log"
)

var (
	ErrMissingCredentials  = errors.New("missing credentials")
	ErrPasswordMismatch    = errors.New("passwords do not match")
	ErrBadVerificationCode = errors.New("invalid verification code")
	ErrNotSignedIn         = errors.New("not signed in")
)

// SignUpRequest carries the sign-up form.
type SignUpRequest struct {
	Name     string
	Email    string
	Password string
	Confirm  string
	Code     string
}

// AccountService is a mocked local account backed by the key-value store.
// Passwords are checked for presence only and never persisted.
type AccountService struct {
	store  kvstore.Store
	code   string
	logger *log.Logger
	now    func() time.Time
}

func NewAccountService(store kvstore.Store, verificationCode string, logger *log.Logger) *AccountService {
	return &AccountService{
		store:  store,
		code:   verificationCode,
		logger: componentLogger(logger, log.ComponentAccount),
		now:    time.Now,
	}
}

func (s *AccountService) SignUp(ctx context.Context, req SignUpRequest) (core.User, error) {
	email := strings.TrimSpace(req.Email)
	if strings.TrimSpace(req.Name) == "" || email == "" || req.Password == "" || req.Confirm == "" {
		return core.User{}, ErrMissingCredentials
	}
	if req.Password != req.Confirm {
		return core.User{}, ErrPasswordMismatch
	}
	if strings.TrimSpace(req.Code) != s.code {
		return core.User{}, ErrBadVerificationCode
	}
	u := core.User{Name: strings.TrimSpace(req.Name), Email: email, CreatedAt: s.now().UnixMilli()}
	if err := s.save(ctx, u); err != nil {
		return core.User{}, err
	}
	s.logger.InfoContext(ctx, "User signed up", log.FieldOperation, log.OpSignUp, log.FieldUserEmail, email)
	return u, nil
}

// SignIn accepts any non-empty credentials. An existing stored profile for
// the same email keeps its name.
func (s *AccountService) SignIn(ctx context.Context, email, password string) (core.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return core.User{}, ErrMissingCredentials
	}
	u := core.User{Email: email, CreatedAt: s.now().UnixMilli()}
	if prev, err := s.Current(ctx); err == nil && prev.Email == email {
		u = prev
	}
	if err := s.save(ctx, u); err != nil {
		return core.User{}, err
	}
	s.logger.InfoContext(ctx, "User signed in", log.FieldOperation, log.OpSignIn, log.FieldUserEmail, email)
	return u, nil
}

func (s *AccountService) Current(ctx context.Context) (core.User, error) {
	raw, ok, err := s.store.Get(ctx, kvstore.KeyUser)
	if err != nil {
		return core.User{}, fmt.Errorf("load user: %w", err)
	}
	if !ok {
		return core.User{}, ErrNotSignedIn
	}
	var u core.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return core.User{}, fmt.Errorf("decode user: %w", err)
	}
	return u, nil
}

// CurrentEmail is the signed-in email, or "" when nobody is signed in.
func (s *AccountService) CurrentEmail(ctx context.Context) string {
	u, err := s.Current(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotSignedIn) {
			s.logger.WarnContext(ctx, "Failed to read current user", log.FieldError, err)
		}
		return ""
	}
	return u.Email
}

// SignOut clears the user and the timeline.
func (s *AccountService) SignOut(ctx context.Context) error {
	for _, key := range []string{kvstore.KeyUser, kvstore.KeyTimeline} {
		if err := s.store.Remove(ctx, key); err != nil {
			return fmt.Errorf("remove %s: %w", key, err)
		}
	}
	s.logger.InfoContext(ctx, "User signed out", log.FieldOperation, log.OpSignOut)
	return nil
}

func (s *AccountService) save(ctx context.Context, u core.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.store.Set(ctx, kvstore.KeyUser, string(b)); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

func componentLogger(logger *log.Logger, component string) *log.Logger {
	if logger == nil {
		logger = log.Default()
	}
	return logger.WithComponent(component)
}
