package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/domain"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/store"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/cryptox"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/jwtx"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/metrics"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrValidation         = errors.New("validation_failed")
)

// FallbackAdminID is the subject of tokens issued to the configured
// fallback administrator.
const FallbackAdminID = "env-admin"

// FallbackAdmin is an operator account configured outside the database so
// the panel is usable before any user records exist.
type FallbackAdmin struct {
	Email    string
	Password string
	Name     string
}

func (a FallbackAdmin) enabled() bool { return a.Email != "" && a.Password != "" }

type AuthService struct {
	// Users is the readiness-guarded users collection.
	Users    store.Collection
	Signer   jwtx.Signer
	Issuer   string
	TokenTTL time.Duration
	Admin    FallbackAdmin

	// AllowLegacyPlaintext accepts user records that carry a plaintext
	// "password" field instead of "passwordHash". Off by default.
	AllowLegacyPlaintext bool

	Metrics *metrics.Metrics
	Now     func() time.Time
}

type LoginResult struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// Login checks email/password against the users collection, then against
// the fallback administrator, and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	l := slogx.FromContext(ctx)

	if strings.TrimSpace(email) == "" || password == "" {
		return LoginResult{}, ErrValidation
	}
	email = strings.ToLower(strings.TrimSpace(email))

	id, ok := s.matchUser(ctx, email, password)
	if !ok {
		id, ok = s.matchFallback(email, password)
	}
	if !ok {
		s.Metrics.ObserveLogin("invalid")
		l.Info("login rejected", slog.String("email", email))
		return LoginResult{}, ErrInvalidCredentials
	}

	claims := jwtx.NewClaims(id.ID, id.Name, id.Email, id.Role, s.TokenTTL, s.Issuer, s.now())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		s.Metrics.ObserveLogin("error")
		return LoginResult{}, err
	}

	s.Metrics.ObserveLogin("success")
	l.Info("login succeeded", slog.String("user_id", id.ID))

	user := domain.User{Name: id.Name, Email: id.Email, Role: id.Role}
	if user.Email == "" {
		user.Email = email
	}
	if id.roleDefaulted {
		user.Role = "Super Admin"
	}
	return LoginResult{Token: token, User: user}, nil
}

type matched struct {
	domain.Identity

	// roleDefaulted marks a record without a role. Tokens then say
	// "Admin" while the login response says "Super Admin".
	roleDefaulted bool
}

func (s *AuthService) matchUser(ctx context.Context, email, password string) (matched, bool) {
	l := slogx.FromContext(ctx)
	if s.Users == nil {
		return matched{}, false
	}

	rec, err := s.Users.FindOne(ctx, "email", email)
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrUnavailable):
		return matched{}, false
	case err != nil:
		l.Error("login lookup failed", "err", err)
		return matched{}, false
	}

	if hash := rec.String("passwordHash"); hash != "" {
		return s.verifyHash(ctx, rec, password, hash)
	}

	plain := rec.String("password")
	// Hashes written to "password" by other tools are verified as hashes,
	// never compared as text.
	if cryptox.IsHash(plain) {
		return s.verifyHash(ctx, rec, password, plain)
	}
	if plain != "" {
		if !s.AllowLegacyPlaintext {
			l.Warn("user has only a plaintext password and legacy login is disabled", "user_id", rec.ID())
			return matched{}, false
		}
		if !cryptox.EqualPlaintext(plain, password) {
			return matched{}, false
		}
		l.Warn("legacy plaintext password accepted, rehash this user", "user_id", rec.ID())
		return identityFromRecord(rec), true
	}

	return matched{}, false
}

func (s *AuthService) verifyHash(ctx context.Context, rec domain.Record, password, hash string) (matched, bool) {
	if err := cryptox.VerifyPassword(password, hash); err != nil {
		if !errors.Is(err, cryptox.ErrMismatch) {
			slogx.FromContext(ctx).Warn("stored password hash unusable", "user_id", rec.ID(), "err", err)
		}
		return matched{}, false
	}
	return identityFromRecord(rec), true
}

func (s *AuthService) matchFallback(email, password string) (matched, bool) {
	if !s.Admin.enabled() {
		return matched{}, false
	}
	if email != strings.ToLower(s.Admin.Email) || !cryptox.EqualPlaintext(password, s.Admin.Password) {
		return matched{}, false
	}

	name := s.Admin.Name
	if name == "" {
		name = "Admin"
	}
	return matched{Identity: domain.Identity{
		ID:    FallbackAdminID,
		Name:  name,
		Email: s.Admin.Email,
		Role:  "Super Admin",
	}}, true
}

func identityFromRecord(rec domain.Record) matched {
	m := matched{Identity: domain.Identity{
		ID:    rec.ID(),
		Name:  firstNonEmpty(rec.String("name"), rec.String("fullName"), "Admin"),
		Email: firstNonEmpty(rec.String("email"), rec.String("username")),
		Role:  rec.String("role"),
	}}
	if m.Role == "" {
		m.Role = "Admin"
		m.roleDefaulted = true
	}
	return m
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}
