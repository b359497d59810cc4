// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-admin/internal/logger"
	"github.com/MKhiriev/go-user-admin/internal/store"
	"github.com/MKhiriev/go-user-admin/internal/validators"
	"github.com/MKhiriev/go-user-admin/models"
)

// userService implements UserService on top of a UserStorage.
type userService struct {
	userStorage  store.UserStorage
	tokenService TokenService
	validator    validators.Validator

	logger *logger.Logger
}

// NewUserService constructs a UserService. Records are checked with the
// presence-only user validator before create and update.
func NewUserService(userStorage store.UserStorage, tokenService TokenService, logger *logger.Logger) UserService {
	return &userService{
		userStorage:  userStorage,
		tokenService: tokenService,
		validator:    validators.NewUserValidator(),
		logger:       logger,
	}
}

// Login finds the first record with the given username and compares the
// stored password in plain text. An unknown username and a wrong password
// both yield ErrInvalidCredentials.
func (s *userService) Login(ctx context.Context, username, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	user, err := s.userStorage.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrRecordNotFound) {
		log.Info().Str("username", username).Msg("login for unknown username")
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if user.Password != password {
		log.Info().Str("id", user.ID).Str("username", username).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	return s.tokenService.Issue(ctx, user.Username)
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.userStorage.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}

// Create validates user, drops any client supplied id and appends the
// record with a freshly allocated id.
func (s *userService) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, user); err != nil {
		log.Debug().Err(err).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	created, err := s.userStorage.CreateUser(ctx, user.WithID(""))
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// Update validates user first and only then looks the record up, so an
// invalid body for an unknown id reports ErrValidation.
func (s *userService) Update(ctx context.Context, id string, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, user); err != nil {
		log.Debug().Err(err).Str("id", id).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	updated, err := s.userStorage.UpdateUser(ctx, id, user)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("id", id).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updated, nil
}

func (s *userService) Delete(ctx context.Context, id string) (models.User, error) {
	deleted, err := s.userStorage.DeleteUser(ctx, id)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", id).Msg("user deletion ended with error")
		return models.User{}, fmt.Errorf("user deletion ended with error: %w", err)
	}

	return deleted, nil
}
