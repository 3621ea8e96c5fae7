package httpkit

import (
	"net/http"
	"strings"
	"time"

	perrs "seatime/internal/platform/errors"

	"github.com/golang-jwt/jwt/v5"
)

// TokenFunc verifies a bearer token and returns the owner id it was issued to
type TokenFunc func(token string) (ownerID string, err error)

// Port implements middleware.AuthPort by reading Authorization and delegating to a TokenFunc
type Port struct {
	parse TokenFunc
}

// NewPortFunc builds a Port from a parser function
func NewPortFunc(fn TokenFunc) *Port {
	return &Port{parse: fn}
}

// Parse extracts the owner id from an Authorization Bearer token
// returns unauthorized when the header is missing, malformed, or the parser rejects the token
func (p *Port) Parse(r *http.Request) (string, error) {
	raw, err := Bearer(r)
	if err != nil {
		return "", err
	}
	if p.parse == nil {
		return "", perrs.Unauthorizedf("invalid bearer token")
	}
	owner, err := p.parse(raw)
	if err != nil || owner == "" {
		return "", perrs.Unauthorizedf("invalid bearer token")
	}
	return owner, nil
}

// Bearer returns the raw token from the Authorization header
func Bearer(r *http.Request) (string, error) {
	s := strings.TrimSpace(r.Header.Get("Authorization"))
	const prefix = "bearer"
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	raw := strings.TrimSpace(s[len(prefix):])
	if raw == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return raw, nil
}

// HS256 verifies tokens signed with secret by the external auth system
// the sub claim is the owner id; issuer is checked when non empty
func HS256(secret []byte, issuer string, leeway time.Duration) TokenFunc {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(leeway),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	parser := jwt.NewParser(opts...)
	return func(token string) (string, error) {
		var claims jwt.RegisteredClaims
		_, err := parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
			return secret, nil
		})
		if err != nil {
			return "", err
		}
		return claims.Subject, nil
	}
}
