// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of user-admin.
//
// Server side: [TokenService] issues and verifies session tokens,
// [UserService] implements login and the record operations on top of a
// [store.UserStorage], [AppInfoService] reports the build version.
//
// Client side: [ClientAuthService] and [ClientUserService] drive the REST
// adapter and translate transport errors into the sentinels of this package.
package service

import (
	"context"

	"github.com/MKhiriev/go-user-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TokenService issues and verifies HS256 session tokens.
type TokenService interface {
	// Issue signs a token carrying {username, iat, exp}.
	Issue(ctx context.Context, username string) (models.Token, error)
	// Verify checks signature, algorithm and expiry of tokenString and
	// returns the token with the username it was issued for. Every failure
	// is reported as ErrInvalidOrExpiredToken.
	Verify(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService is the record API.
type UserService interface {
	Login(ctx context.Context, username, password string) (models.Token, error)
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user models.User) (models.User, error)
	Update(ctx context.Context, id string, user models.User) (models.User, error)
	Delete(ctx context.Context, id string) (models.User, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
