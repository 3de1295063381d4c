// Package auth issues and verifies tenant bearer tokens.
package auth

import (
	"cleanlyquote/internal/usecase/interfaces"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v4"
)

const (
	DefaultTokenTTL = 7 * 24 * time.Hour
	issuer          = "cleanlyquote"
)

var ErrMissingSecret = errors.New("jwt secret is empty")

type claims struct {
	TenantID string `json:"tenant_id"`
	jwt.RegisteredClaims
}

// JWTIssuer signs HS256 tokens carrying the tenant id.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ interfaces.ITokenIssuer = (*JWTIssuer)(nil)

func NewJWTIssuer(secret string, ttl time.Duration) (*JWTIssuer, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (j *JWTIssuer) Issue(tenantID string) (string, error) {
	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		TenantID: tenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   tenantID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	})
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return signed, nil
}

func (j *JWTIssuer) Verify(raw string) (string, error) {
	var c claims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(raw, &c, func(*jwt.Token) (interface{}, error) {
		return j.secret, nil
	})
	if err != nil {
		return "", errors.Wrap(err, "parse token")
	}
	if !token.Valid || c.TenantID == "" {
		return "", errors.New("token carries no tenant")
	}
	return c.TenantID, nil
}
