// Package identity resolves bearer tokens into acting parties.
// Tokens are HMAC-signed JWTs issued by the identity service; the claims
// carry the subject id, display name and lifecycle role.
package identity

import (
	"fmt"

	"orderflow/internal/core/domain/model/actor"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v4"
)

// actorClaims are the registered and private claims the identity service
// puts into every access token.
type actorClaims struct {
	jwt.RegisteredClaims
	Name string `json:"name"`
	Role string `json:"role"`
}

// JWTIdentityProvider validates access tokens and maps their claims onto a
// domain actor.
type JWTIdentityProvider struct {
	secret []byte
}

// NewJWTIdentityProvider creates a provider verifying tokens with the given
// shared secret.
func NewJWTIdentityProvider(secret []byte) (*JWTIdentityProvider, error) {
	if len(secret) == 0 {
		return nil, errs.NewValueIsRequiredError("jwt secret")
	}
	return &JWTIdentityProvider{secret: secret}, nil
}

// Resolve parses and verifies the token and returns the acting party.
func (p *JWTIdentityProvider) Resolve(token string) (actor.Actor, error) {
	if token == "" {
		return actor.Actor{}, errs.NewValueIsRequiredError("token")
	}

	claims := &actorClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return p.secret, nil
	})
	if err != nil {
		return actor.Actor{}, errs.NewValueIsInvalidErrorWithCause("token", err)
	}
	if !parsed.Valid {
		return actor.Actor{}, errs.NewValueIsInvalidError("token")
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return actor.Actor{}, errs.NewValueIsInvalidErrorWithCause("token subject", err)
	}

	role, err := actor.RoleFromString(claims.Role)
	if err != nil {
		return actor.Actor{}, err
	}

	return actor.NewActor(id, claims.Name, role)
}
