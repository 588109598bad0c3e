package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio-site/internal/domain"
	userrepo "portfolio-site/internal/repository/adminuser"
	sessionrepo "portfolio-site/internal/repository/session"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
	// ErrSignUpDisabled is returned by SignUp unless self sign-up is enabled.
	ErrSignUpDisabled = errors.New("sign-up disabled")
)

// Options configures a Service.
type Options struct {
	Secret      string
	SessionTTL  time.Duration
	AllowSignUp bool
	// Now overrides the clock in tests.
	Now func() time.Time
}

// Service signs admin operators in and out.
type Service struct {
	users       userrepo.Repository
	sessions    sessionrepo.Repository
	tokens      *tokenManager
	sessionTTL  time.Duration
	allowSignUp bool
	passwordMin int
	logger      *zap.Logger
}

// Session is what a successful sign-in hands back to the client.
type Session struct {
	User      *domain.AdminUser `json:"user"`
	Token     string            `json:"access_token"`
	ExpiresAt time.Time         `json:"expires_at"`
}

func New(users userrepo.Repository, sessions sessionrepo.Repository, opts Options, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{
		users:       users,
		sessions:    sessions,
		tokens:      newTokenManager(sessions, []byte(opts.Secret), now),
		sessionTTL:  ttl,
		allowSignUp: opts.AllowSignUp,
		passwordMin: 8,
		logger:      logger.Named("auth"),
	}
}

// SignUp registers a new operator when self sign-up is enabled.
func (s *Service) SignUp(ctx context.Context, email, password string) (*domain.AdminUser, error) {
	if !s.allowSignUp {
		return nil, ErrSignUpDisabled
	}
	return s.CreateUser(ctx, email, password)
}

// CreateUser registers an operator regardless of the sign-up setting.
func (s *Service) CreateUser(ctx context.Context, email, password string) (*domain.AdminUser, error) {
	email = normalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: valid email required", domain.ErrInvalidInput)
	}
	hashed, err := s.hash(password)
	if err != nil {
		return nil, err
	}
	u, err := s.users.Create(ctx, domain.AdminUser{Email: email, PasswordHash: hashed})
	if err != nil {
		return nil, err
	}
	s.logger.Info("admin user created", zap.String("user_id", u.ID))
	return u, nil
}

// EnsureUser creates the operator, or resets its password if it exists.
func (s *Service) EnsureUser(ctx context.Context, email, password string) (*domain.AdminUser, error) {
	u, err := s.CreateUser(ctx, email, password)
	if !errors.Is(err, domain.ErrAlreadyExists) {
		return u, err
	}
	existing, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	hashed, err := s.hash(password)
	if err != nil {
		return nil, err
	}
	if err := s.users.SetPassword(ctx, existing.ID, hashed); err != nil {
		return nil, err
	}
	existing.PasswordHash = hashed
	return existing, nil
}

// SignIn validates credentials and opens a session.
func (s *Service) SignIn(ctx context.Context, email, password string) (*Session, error) {
	password = strings.TrimSpace(password)
	u, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(ctx, u.ID, s.sessionTTL)
	if err != nil {
		return nil, err
	}
	return &Session{User: u, Token: token, ExpiresAt: expiresAt}, nil
}

// SignOut revokes the session behind token.
func (s *Service) SignOut(ctx context.Context, token string) error {
	return s.tokens.Revoke(ctx, token)
}

// CurrentUser returns the operator bound to a valid token.
func (s *Service) CurrentUser(ctx context.Context, token string) (*domain.AdminUser, error) {
	meta, ok := s.tokens.Validate(ctx, token)
	if !ok {
		return nil, ErrInvalidToken
	}
	u, err := s.users.GetByID(ctx, meta.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return u, nil
}

// PurgeExpired drops sessions past their expiry.
func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.sessions.DeleteExpired(ctx, s.tokens.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info("purged expired sessions", zap.Int64("count", n))
	}
	return n, nil
}

func (s *Service) hash(password string) (string, error) {
	password = strings.TrimSpace(password)
	if err := validatePassword(password, s.passwordMin); err != nil {
		return "", err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validatePassword(p string, min int) error {
	if len(p) < min {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, min)
	}
	hasUpper := false
	hasLower := false
	hasDigit := false
	for _, r := range p {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return fmt.Errorf("%w: password must contain at least 1 uppercase letter, 1 lowercase letter, and 1 number", domain.ErrInvalidInput)
	}
	return nil
}
