package token

import (
	"errors"
	"fmt"
	"time"

	// The official Go JWT library for working with JSON Web Tokens.
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const minSecretKeySize = 32

// ErrInvalidToken is returned for tokens that parse but fail validation.
var ErrInvalidToken = errors.New("invalid token")

// JWTMaker is a struct that handles creation and verification of JWT tokens.
type JWTMaker struct {
	secretKey string // A secret key used to sign and verify JWTs.
}

// NewJWTMaker creates a new JWTMaker with the provided secret key.
// The key must be at least 32 characters long.
func NewJWTMaker(secretKey string) (*JWTMaker, error) {
	if len(secretKey) < minSecretKeySize {
		return nil, fmt.Errorf("invalid key size: must be at least %d characters", minSecretKeySize)
	}
	return &JWTMaker{secretKey}, nil
}

// CreateToken generates a JWT token for a specific user.
// Each token carries a random ID (jti) so two tokens issued in the same
// second are still distinct.
func (maker *JWTMaker) CreateToken(userID int64, duration time.Duration) (string, error) {
	tokenID, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate token id: %w", err)
	}

	now := time.Now()
	payload := jwt.MapClaims{
		"user_id": userID,
		"jti":     tokenID.String(),
		"exp":     now.Add(duration).Unix(),
		"iat":     now.Unix(),
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	return jwtToken.SignedString([]byte(maker.secretKey))
}

// VerifyToken checks if the given JWT token is valid and not expired.
// If valid, it returns the claims (the payload inside the token).
func (maker *JWTMaker) VerifyToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Only HMAC (HS256) tokens are ours.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(maker.secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// UserIDFromClaims extracts the user_id claim. JSON numbers decode as
// float64, so that is the only accepted form.
func UserIDFromClaims(claims jwt.MapClaims) (int64, error) {
	raw, ok := claims["user_id"].(float64)
	if !ok || raw <= 0 {
		return 0, fmt.Errorf("%w: missing user_id", ErrInvalidToken)
	}
	return int64(raw), nil
}
