package service

import (
	"context"

	"github.com/MKhiriev/go-user-admin/internal/adapter"
	"github.com/MKhiriev/go-user-admin/internal/logger"
	"github.com/MKhiriev/go-user-admin/models"
)

type clientUserService struct {
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientUserService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientUserService {
	return &clientUserService{adapter: serverAdapter, logger: logger}
}

func (s *clientUserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.adapter.ListUsers(ctx)
	if err != nil {
		s.logger.Err(err).Msg("list users failed")
		return nil, mapAdapterError(err, s.adapter)
	}
	return users, nil
}

func (s *clientUserService) Create(ctx context.Context, user models.User) (models.User, error) {
	created, err := s.adapter.CreateUser(ctx, user)
	if err != nil {
		s.logger.Err(err).Str("username", user.Username).Msg("create user failed")
		return models.User{}, mapAdapterError(err, s.adapter)
	}
	return created, nil
}

func (s *clientUserService) Update(ctx context.Context, id string, user models.User) (models.User, error) {
	updated, err := s.adapter.UpdateUser(ctx, id, user)
	if err != nil {
		s.logger.Err(err).Str("id", id).Msg("update user failed")
		return models.User{}, mapAdapterError(err, s.adapter)
	}
	return updated, nil
}

func (s *clientUserService) Delete(ctx context.Context, id string) (models.User, error) {
	deleted, err := s.adapter.DeleteUser(ctx, id)
	if err != nil {
		s.logger.Err(err).Str("id", id).Msg("delete user failed")
		return models.User{}, mapAdapterError(err, s.adapter)
	}
	return deleted, nil
}

type clientAppInfoService struct {
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientAppInfoService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAppInfoService {
	return &clientAppInfoService{adapter: serverAdapter, logger: logger}
}

func (s *clientAppInfoService) ServerVersion(ctx context.Context) (string, error) {
	v, err := s.adapter.GetVersion(ctx)
	if err != nil {
		s.logger.Err(err).Msg("server version request failed")
		return "", mapAdapterError(err, nil)
	}
	return v, nil
}
