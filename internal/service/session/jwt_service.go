package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sakhisuraksha/sakhi-api/internal/config"
	"github.com/sakhisuraksha/sakhi-api/internal/domain"
	"github.com/sakhisuraksha/sakhi-api/internal/platform/logger"
)

const minSecretLength = 32

// hmacJWTService is an implementation of TokenService using HMAC-SHA signing.
type hmacJWTService struct {
	signingKey []byte
	lifetime   time.Duration
	timeFunc   func() time.Time // Injectable for testing
	clockSkew  time.Duration
}

// profileClaims is the token payload. lpd is empty until a date is selected.
type profileClaims struct {
	SessionID       uuid.UUID `json:"sid"`
	LastPeriodStart string    `json:"lpd"`
	CycleLength     int       `json:"cl"`
	jwt.RegisteredClaims
}

// Ensure hmacJWTService implements TokenService interface
var _ TokenService = (*hmacJWTService)(nil)

// NewJWTService creates a session token service from configuration.
func NewJWTService(cfg config.SessionConfig) (TokenService, error) {
	return newHMACJWTService(cfg.Secret, cfg.Lifetime(), cfg.ClockSkew(), time.Now)
}

func newHMACJWTService(
	secret string,
	lifetime, clockSkew time.Duration,
	timeFunc func() time.Time,
) (*hmacJWTService, error) {
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("session secret must be at least %d characters", minSecretLength)
	}
	if lifetime <= 0 {
		return nil, fmt.Errorf("session lifetime must be positive, got %s", lifetime)
	}

	return &hmacJWTService{
		signingKey: []byte(secret),
		lifetime:   lifetime,
		timeFunc:   timeFunc,
		clockSkew:  clockSkew,
	}, nil
}

// Issue implements TokenService.
func (s *hmacJWTService) Issue(ctx context.Context, sess Session) (string, Session, error) {
	log := logger.FromContext(ctx)

	if sess.ID == uuid.Nil {
		return "", sess, fmt.Errorf("%w: session has no id", ErrInvalidToken)
	}
	if err := sess.Profile.Validate(); err != nil {
		return "", sess, err
	}

	now := s.timeFunc()
	sess.IssuedAt = now.Truncate(time.Second)
	sess.ExpiresAt = now.Add(s.lifetime).Truncate(time.Second)

	lpd := ""
	if sess.Profile.HasLastPeriod() {
		lpd = domain.FormatDate(sess.Profile.LastPeriodStart)
	}

	claims := profileClaims{
		SessionID:       sess.ID,
		LastPeriodStart: lpd,
		CycleLength:     sess.Profile.CycleLength,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sess.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		log.Error("failed to sign session token",
			"error", err,
			"session_id", sess.ID,
			"signing_method", jwt.SigningMethodHS256.Name)
		return "", sess, fmt.Errorf("failed to sign session token with HMAC-SHA256: %w", err)
	}

	return signed, sess, nil
}

// Parse implements TokenService.
func (s *hmacJWTService) Parse(ctx context.Context, tokenString string) (*Session, error) {
	log := logger.FromContext(ctx)

	if tokenString == "" {
		return nil, ErrMissingToken
	}

	now := s.timeFunc()
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(s.clockSkew),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&profileClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		parserOpts...)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			log.Debug("session token expired", "error", err)
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenMalformed):
			log.Debug("session token malformed", "error", err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			log.Debug("session token signature invalid", "error", err)
		default:
			log.Debug("session token rejected",
				"error", err,
				"error_type", fmt.Sprintf("%T", err))
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*profileClaims)
	if !ok || !token.Valid {
		log.Debug("session token has invalid claims")
		return nil, ErrInvalidToken
	}

	profile := domain.CycleProfile{CycleLength: claims.CycleLength}
	if claims.LastPeriodStart != "" {
		date, err := domain.ParseDate(claims.LastPeriodStart)
		if err != nil {
			log.Debug("session token carries a bad date", "error", err)
			return nil, ErrInvalidToken
		}
		profile.LastPeriodStart = date
	}
	if err := profile.Validate(); err != nil {
		log.Debug("session token carries an invalid profile", "error", err)
		return nil, ErrInvalidToken
	}
	if claims.SessionID == uuid.Nil {
		return nil, ErrInvalidToken
	}

	sess := &Session{
		ID:        claims.SessionID,
		Profile:   profile,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		sess.IssuedAt = claims.IssuedAt.Time
	}

	log.Debug("session token validated",
		"session_id", sess.ID,
		"token_id", claims.ID,
		"expiry", sess.ExpiresAt)

	return sess, nil
}
