package store

import (
	"context"

	"github.com/MKhiriev/go-user-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserStorage is the record set of administrated users. Implementations keep
// records in insertion order and allocate ids as max(numeric ids)+1.
type UserStorage interface {
	// ListUsers returns every record in insertion order. An empty set is a
	// non-nil empty slice.
	ListUsers(ctx context.Context) ([]models.User, error)
	// FindUserByUsername returns the first record whose username matches
	// exactly, or ErrRecordNotFound.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// CreateUser assigns the next id, appends the record and returns it.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// UpdateUser replaces every field of the record with the given id except
	// the id itself, or returns ErrRecordNotFound.
	UpdateUser(ctx context.Context, id string, user models.User) (models.User, error)
	// DeleteUser removes the record with the given id and returns it, or
	// returns ErrRecordNotFound.
	DeleteUser(ctx context.Context, id string) (models.User, error)
}
