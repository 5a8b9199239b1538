// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"liveseries/config"
	"liveseries/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Tokens are minted by the external auth service; this side only reads them.
type jwtService struct {
	accessSecret string // Shared secret the auth service signs access tokens with.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}
	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
	}, nil
}

// ValidateToken checks the validity of a token string against the shared secret.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.accessSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	userID, err := identityClaim(claims)
	if err != nil {
		return nil, err
	}

	return &service.Claims{UserID: userID}, nil
}

// DecodeIdentity extracts the subject UUID without verifying the signature.
// The durable credential is signed by the auth service with a key this
// service never holds, so only the payload can be read.
func (s *jwtService) DecodeIdentity(tokenString string) (uuid.UUID, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return uuid.Nil, err
	}

	return identityClaim(claims)
}

// identityClaim reads the auth service's "uuid" claim.
func identityClaim(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["uuid"].(string)
	if !ok {
		return uuid.Nil, errors.New("token has no uuid claim")
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.New("token uuid claim is not a valid UUID")
	}

	return userID, nil
}
