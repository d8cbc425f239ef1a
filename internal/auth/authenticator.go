package auth

import (
	"context"

	"github.com/goliatone/go-errors"

	"github.com/skarut/landing-api/internal/store"
)

// UserStore is the credential store the authenticator depends on
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*store.User, error)
	Register(ctx context.Context, user *store.User) (*store.User, error)
}

// Auther wires the credential store, password hasher, and token service into
// the registration and login flows
type Auther struct {
	users        UserStore
	tokenService *TokenService
	logger       Logger
}

// NewAuthenticator returns a new Auther
func NewAuthenticator(users UserStore, opts Config) *Auther {
	return &Auther{
		users: users,
		tokenService: NewTokenService(
			[]byte(opts.GetSigningKey()),
			opts.GetTokenExpiration(),
			opts.GetIssuer(),
			defLogger{},
		),
		logger: defLogger{},
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	s.logger = logger
	s.tokenService.logger = logger
	return s
}

// TokenService returns the TokenService instance used by this Auther
func (s *Auther) TokenService() *TokenService {
	return s.tokenService
}

// Register hashes the password, persists the credential record, and issues a
// token scoped to the new identity. Duplicate emails surface as a conflict
// from the store's unique constraint.
func (s *Auther) Register(ctx context.Context, email, password string) (*store.User, string, error) {
	hash, err := HashPassword(password)
	if err != nil {
		var richErr *errors.Error
		if errors.As(err, &richErr) {
			return nil, "", richErr
		}
		return nil, "", errors.Wrap(err, errors.CategoryInternal, "failed to hash password")
	}

	user, err := s.users.Register(ctx, &store.User{
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		s.logger.Error("Register create user error", "error", err)
		return nil, "", err
	}

	token, err := s.tokenService.Generate(identityFromUser(user))
	if err != nil {
		s.logger.Error("Register token generation error", "error", err)
		return nil, "", err
	}

	return user, token, nil
}

// Login verifies the credentials and issues a fresh token. An unknown email
// and a wrong password both come back as ErrMismatchedHashAndPassword so the
// response gives no account-existence oracle.
func (s *Auther) Login(ctx context.Context, email, password string) (*store.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, "", ErrMismatchedHashAndPassword
		}
		return nil, "", errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user during verification")
	}

	if err := ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		// a malformed stored digest is logged but reported as a plain
		// verification failure
		if !errors.Is(err, ErrMismatchedHashAndPassword) {
			s.logger.Error("Login digest verification error", "error", err)
		}
		return nil, "", ErrMismatchedHashAndPassword
	}

	token, err := s.tokenService.Generate(identityFromUser(user))
	if err != nil {
		s.logger.Error("Login token generation error", "error", err)
		return nil, "", err
	}

	return user, token, nil
}

type authIdentity struct {
	id    string
	email string
}

func (a authIdentity) ID() string    { return a.id }
func (a authIdentity) Email() string { return a.email }

var _ Identity = authIdentity{}

func identityFromUser(user *store.User) Identity {
	return authIdentity{
		id:    user.ID.String(),
		email: user.Email,
	}
}
