package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-user-admin/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrUnexpectedSigningMethod is returned when a token is signed with anything
// other than an HMAC algorithm.
var ErrUnexpectedSigningMethod = errors.New("unexpected signing method")

// GenerateJWTToken creates an HS256 token for username with the claims
// {username, iat, exp}, where iat is now and exp is now + tokenDuration.
//
// username and signKey must be non-empty and tokenDuration positive.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("admin", 24*time.Hour, "secret", time.Now())
func GenerateJWTToken(username string, tokenDuration time.Duration, signKey string, now time.Time) (models.Token, error) {
	if username == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims := &models.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, Username: username}, nil
}

// ValidateAndParseJWTToken verifies tokenString with tokenSignKey and
// returns the username it was issued for.
//
// Validation fails when the token is malformed, the algorithm is not HMAC,
// the signature does not verify, exp is missing or not after now(), or the
// username claim is empty.
func ValidateAndParseJWTToken(tokenString, tokenSignKey string, now func() time.Time) (models.Token, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnexpectedSigningMethod, token.Header["alg"])
		}
		return []byte(tokenSignKey), nil
	}, jwt.WithTimeFunc(now), jwt.WithExpirationRequired())
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Username == "" {
		return models.Token{}, errors.New("empty username claim")
	}

	return models.Token{Token: token, SignedString: tokenString, Username: claims.Username}, nil
}

// ErrNoToken is returned by ParseBearerToken when the header carries no
// token part.
var ErrNoToken = errors.New("no token in authorization header")

// ParseBearerToken returns the second space-separated part of an
// Authorization header value ("<scheme> <token>"). The scheme is not
// checked and any further parts are ignored.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(authorizationHeader, " ")
	if len(parts) < 2 || parts[1] == "" {
		return "", ErrNoToken
	}
	return parts[1], nil
}
