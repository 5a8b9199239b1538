package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by the auth service's JWTs.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for validating JWTs issued by the
// external auth service. Token issuance lives there, not here.
type TokenService interface {
	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// DecodeIdentity extracts the subject UUID from a token without
	// verifying the signature. Used for the service's own durable
	// credential, whose signing key belongs to the auth service.
	DecodeIdentity(tokenString string) (uuid.UUID, error)
}
