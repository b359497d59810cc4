package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/go-user-admin/internal/logger"
	"github.com/MKhiriev/go-user-admin/models"
	"github.com/gofrs/flock"
)

const lockRetryDelay = 25 * time.Millisecond

// fileUserStorage keeps the record set in a single JSON array file that is
// read and rewritten wholesale on every operation.
//
// Every operation holds mu for its whole read-modify-write cycle, plus an
// advisory lock on "<path>.lock" so that processes sharing the file also
// serialise. Writes go to a temporary file in the same directory which then
// replaces the users file with a rename.
type fileUserStorage struct {
	mu     sync.Mutex
	path   string
	flock  *flock.Flock
	logger *logger.Logger
}

// NewFileUserStorage returns a [UserStorage] backed by the JSON file at path.
// The file does not have to exist: a missing file is an empty record set.
func NewFileUserStorage(path string, logger *logger.Logger) UserStorage {
	logger.Debug().Str("path", path).Msg("creating file user storage")
	return &fileUserStorage{
		path:   path,
		flock:  flock.New(path + ".lock"),
		logger: logger,
	}
}

func (s *fileUserStorage) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.withLock(ctx, false, func() error {
		var err error
		users, err = s.loadLocked()
		return err
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (s *fileUserStorage) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return models.User{}, err
	}

	for _, u := range users {
		if u.Username == username {
			return u, nil
		}
	}

	return models.User{}, ErrRecordNotFound
}

func (s *fileUserStorage) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := s.withLock(ctx, true, func() error {
		users, err := s.loadLocked()
		if err != nil {
			return err
		}

		created = user.WithID(nextID(users))
		return s.saveLocked(append(users, created))
	})
	if err != nil {
		log.Err(err).Str("func", "*fileUserStorage.CreateUser").Msg("error creating user")
		return models.User{}, err
	}

	return created, nil
}

func (s *fileUserStorage) UpdateUser(ctx context.Context, id string, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var updated models.User
	err := s.withLock(ctx, true, func() error {
		users, err := s.loadLocked()
		if err != nil {
			return err
		}

		i := indexByID(users, id)
		if i < 0 {
			return ErrRecordNotFound
		}

		updated = user.WithID(id)
		users[i] = updated
		return s.saveLocked(users)
	})
	if err != nil {
		log.Err(err).Str("func", "*fileUserStorage.UpdateUser").Str("id", id).Msg("error updating user")
		return models.User{}, err
	}

	return updated, nil
}

func (s *fileUserStorage) DeleteUser(ctx context.Context, id string) (models.User, error) {
	log := logger.FromContext(ctx)

	var deleted models.User
	err := s.withLock(ctx, true, func() error {
		users, err := s.loadLocked()
		if err != nil {
			return err
		}

		i := indexByID(users, id)
		if i < 0 {
			return ErrRecordNotFound
		}

		deleted = users[i]
		return s.saveLocked(append(users[:i], users[i+1:]...))
	})
	if err != nil {
		log.Err(err).Str("func", "*fileUserStorage.DeleteUser").Str("id", id).Msg("error deleting user")
		return models.User{}, err
	}

	return deleted, nil
}

// withLock runs fn while holding the in-process mutex and the file lock.
// Readers take a shared file lock, writers an exclusive one.
func (s *fileUserStorage) withLock(ctx context.Context, exclusive bool, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrLockingStore, err)
	}

	var (
		locked bool
		err    error
	)
	if exclusive {
		locked, err = s.flock.TryLockContext(ctx, lockRetryDelay)
	} else {
		locked, err = s.flock.TryRLockContext(ctx, lockRetryDelay)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLockingStore, err)
	}
	if !locked {
		return ErrLockingStore
	}
	defer func() {
		if unlockErr := s.flock.Unlock(); unlockErr != nil {
			s.logger.Err(unlockErr).Str("path", s.path).Msg("error releasing users file lock")
		}
	}()

	return fn()
}

// loadLocked reads the record set (caller must hold the locks). A missing or
// blank file is an empty set.
func (s *fileUserStorage) loadLocked() ([]models.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []models.User{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrReadingStore, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []models.User{}, nil
	}

	users := make([]models.User, 0)
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptedStore, err)
	}
	if users == nil {
		users = []models.User{}
	}

	return users, nil
}

// saveLocked replaces the users file with users (caller must hold the locks).
func (s *fileUserStorage) saveLocked(users []models.User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingStore, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingStore, err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmpName, s.path)
	}
	if err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrWritingStore, err)
	}

	return nil
}
