package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"linkup/config"
	"linkup/internal/domain/service"
	"linkup/internal/errors"
)

// ErrTokenExpired reports a structurally valid token whose lifetime has
// elapsed. Callers that care about the distinction can unwrap it; the HTTP
// layer maps it to the same response as any other invalid token.
var ErrTokenExpired = errors.New("token expired")

// ErrTokenInvalid reports a token that failed signature or claim validation.
var ErrTokenInvalid = errors.New("token invalid")

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    []byte
	accessTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
// The signing secret is injected from configuration; an empty secret or a
// non-positive lifetime is a startup error, never a silent default.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.AccessTokenTTLOrDefault()
	if ttl <= 0 {
		return nil, errors.New("access token ttl must be positive")
	}

	return &jwtService{
		secret:    []byte(cfg.SecretKey.Access),
		accessTTL: ttl,
	}, nil
}

// Issue creates a signed access token for a verified user. Every token
// carries an expiry; no unbounded token is ever produced.
func (s *jwtService) Issue(userID uuid.UUID, username string) (string, error) {
	now := time.Now()
	claims := service.Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign access token")
	}

	return signed, nil
}

// Verify checks the signature and expiry of a token string and returns its
// claims. Expiry and tampering are distinguished in the returned error, but
// both mean the caller must refuse the request.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := new(service.Claims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Refuse any signing method other than the one tokens are issued with.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrap(ErrTokenExpired, err.Error())
		}

		return nil, errors.Wrap(ErrTokenInvalid, err.Error())
	}

	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// AccessTokenTTL returns the configured access token lifetime.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}
