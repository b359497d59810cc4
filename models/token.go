// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by a session token: the authenticated
// username plus the standard iat/exp claims. No other claims are issued.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Token wraps a JWT session token.
//
// It embeds [jwt.Token] for low-level inspection; SignedString holds the
// compact serialized form that travels in the Authorization header, and
// Username is the principal extracted from (or signed into) the claims.
type Token struct {
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Username is the authenticated principal.
	Username string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
