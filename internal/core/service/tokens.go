package service

import (
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kitenge-atelier/storefront/internal/core/domain"
)

// StaticTokenAuthority hands out one fixed shared-secret token. It is not per
// session, does not expire and cannot be revoked.
type StaticTokenAuthority struct {
	username string
	token    string
}

func NewStaticTokenAuthority(username, token string) *StaticTokenAuthority {
	return &StaticTokenAuthority{username: username, token: token}
}

func (a *StaticTokenAuthority) Issue(string) (string, error) {
	return a.token, nil
}

func (a *StaticTokenAuthority) Verify(token string) (string, error) {
	if a.token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
		return "", domain.ErrUnauthorized
	}
	return a.username, nil
}

// JWTTokenAuthority issues HS256 tokens carrying the admin username as subject.
type JWTTokenAuthority struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTTokenAuthority(secret string, ttl time.Duration) *JWTTokenAuthority {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTTokenAuthority{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (a *JWTTokenAuthority) Issue(username string) (string, error) {
	now := a.now()
	claims := jwt.MapClaims{
		"sub":  username,
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(a.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

func (a *JWTTokenAuthority) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return a.secret, nil
	}, jwt.WithTimeFunc(a.now), jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return "", domain.ErrUnauthorized
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", domain.ErrUnauthorized
	}
	return sub, nil
}
