package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"portfolio-site/internal/domain"
	sessionrepo "portfolio-site/internal/repository/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "portfolio-site"

type tokenMeta struct {
	SessionID string
	UserID    string
	ExpiresAt time.Time
}

type tokenManager struct {
	repo   sessionrepo.Repository
	secret []byte
	now    func() time.Time
}

func newTokenManager(repo sessionrepo.Repository, secret []byte, now func() time.Time) *tokenManager {
	return &tokenManager{
		repo:   repo,
		secret: secret,
		now:    now,
	}
}

// Issue persists a session and returns a signed token naming it.
func (m *tokenManager) Issue(ctx context.Context, userID string, ttl time.Duration) (string, time.Time, error) {
	issuedAt := m.now()
	expiresAt := issuedAt.Add(ttl)
	for i := 0; i < 5; i++ {
		sessionID := uuid.NewString()
		err := m.repo.Create(ctx, sessionrepo.Session{
			ID:        sessionID,
			UserID:    userID,
			ExpiresAt: expiresAt,
		})
		if errors.Is(err, domain.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return "", time.Time{}, err
		}

		claims := jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   userID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
		if err != nil {
			return "", time.Time{}, fmt.Errorf("sign token: %w", err)
		}
		return signed, expiresAt, nil
	}
	return "", time.Time{}, errors.New("session id collision")
}

// Validate checks the signature, expiry and backing session of a token.
func (m *tokenManager) Validate(ctx context.Context, token string) (tokenMeta, bool) {
	claims, ok := m.parse(token)
	if !ok {
		return tokenMeta{}, false
	}
	sess, err := m.repo.Get(ctx, claims.ID)
	if err != nil {
		return tokenMeta{}, false
	}
	if sess.UserID != claims.Subject {
		return tokenMeta{}, false
	}
	if m.now().After(sess.ExpiresAt) {
		_ = m.repo.Delete(ctx, sess.ID)
		return tokenMeta{}, false
	}
	return tokenMeta{
		SessionID: sess.ID,
		UserID:    sess.UserID,
		ExpiresAt: sess.ExpiresAt,
	}, true
}

// Revoke deletes the session behind token. Unknown sessions are not an error.
func (m *tokenManager) Revoke(ctx context.Context, token string) error {
	claims, ok := m.parse(token)
	if !ok {
		return ErrInvalidToken
	}
	if err := m.repo.Delete(ctx, claims.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}

func (m *tokenManager) parse(token string) (*jwt.RegisteredClaims, bool) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid || claims.ID == "" {
		return nil, false
	}
	return claims, true
}
