package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-user-admin/internal/logger"
	"github.com/MKhiriev/go-user-admin/models"
)

const maxIDAllocationAttempts = 3

// userRepository is the SQL-backed implementation of [UserStorage]. Records
// live in the "users" table; ascending id is insertion order.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserStorage] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserStorage {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(r.db.builder())
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error scanning row")
			return nil, err
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	query, args, err := buildFindUserByUsernameQuery(r.db.builder(), username)
	if err != nil {
		return models.User{}, err
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error finding user")
		return models.User{}, err
	}

	return user, nil
}

// CreateUser allocates MAX(id)+1 and inserts inside one transaction. When a
// concurrent writer wins the same id the insert fails with a key violation,
// which the dialect classifies as retryable.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	for attempt := 1; attempt <= maxIDAllocationAttempts; attempt++ {
		created, err := r.createUserTx(ctx, user)
		if err == nil {
			return created, nil
		}
		if r.db.errorClassificator.Classify(err) != Retryable {
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
			return models.User{}, err
		}
		log.Warn().Err(err).Int("attempt", attempt).Msg("retrying user creation")
	}

	return models.User{}, ErrIDAllocationFailed
}

func (r *userRepository) createUserTx(ctx context.Context, user models.User) (created models.User, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query, args, err := buildNextIDQuery(r.db.builder())
	if err != nil {
		return models.User{}, err
	}

	var id int64
	if err = tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err = buildInsertUserQuery(r.db.builder(), id, user)
	if err != nil {
		return models.User{}, err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return user.WithID(strconv.FormatInt(id, 10)), nil
}

func (r *userRepository) UpdateUser(ctx context.Context, id string, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	numericID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return models.User{}, ErrRecordNotFound
	}

	query, args, err := buildUpdateUserQuery(r.db.builder(), numericID, user)
	if err != nil {
		return models.User{}, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Str("id", id).Msg("error updating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return models.User{}, ErrRecordNotFound
	}

	return user.WithID(id), nil
}

func (r *userRepository) DeleteUser(ctx context.Context, id string) (deleted models.User, err error) {
	numericID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return models.User{}, ErrRecordNotFound
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
			if !errors.Is(err, ErrRecordNotFound) {
				logger.FromContext(ctx).Err(err).Str("func", "*userRepository.DeleteUser").Str("id", id).Msg("error deleting user")
			}
		}
	}()

	query, args, err := buildFindUserByIDQuery(r.db.builder(), numericID)
	if err != nil {
		return models.User{}, err
	}
	if deleted, err = scanUser(tx.QueryRowContext(ctx, query, args...)); err != nil {
		return models.User{}, err
	}

	query, args, err = buildDeleteUserQuery(r.db.builder(), numericID)
	if err != nil {
		return models.User{}, err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return deleted, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser reads one row in userColumns order. sql.ErrNoRows becomes
// ErrRecordNotFound.
func scanUser(row rowScanner) (models.User, error) {
	var (
		user models.User
		id   int64
	)
	err := row.Scan(&id, &user.FirstName, &user.MiddleName, &user.LastName, &user.Username, &user.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrRecordNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	user.ID = strconv.FormatInt(id, 10)
	return user, nil
}
