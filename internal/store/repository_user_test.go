package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-user-admin/internal/logger"
	"github.com/MKhiriev/go-user-admin/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	repo := &userRepository{
		db: &DB{
			DB:                 db,
			dialect:            "pgx",
			placeholder:        sq.Dollar,
			errorClassificator: NewPostgresErrorClassifier(),
			logger:             l,
		},
		logger: l,
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows(userColumns)
}

// ── ListUsers ──

func TestUserRepository_ListUsers(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`SELECT id, first_name, middle_name, last_name, username, password FROM users ORDER BY id`).
		WillReturnRows(userRows().
			AddRow(1, "A", "", "B", "ab", "secret12").
			AddRow(2, "C", "M", "D", "cd", "secret34"))

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.User{
		{ID: "1", FirstName: "A", LastName: "B", Username: "ab", Password: "secret12"},
		{ID: "2", FirstName: "C", MiddleName: "M", LastName: "D", Username: "cd", Password: "secret34"},
	}, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ListUsers_Empty(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectQuery(`SELECT (.+) FROM users`).WillReturnRows(userRows())

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserRepository_ListUsers_QueryError(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectQuery(`SELECT (.+) FROM users`).WillReturnError(sql.ErrConnDone)

	_, err := repo.ListUsers(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

// ── FindUserByUsername ──

func TestUserRepository_FindUserByUsername(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery(`SELECT (.+) FROM users WHERE username = \$1 ORDER BY id LIMIT 1`).
			WithArgs("admin").
			WillReturnRows(userRows().AddRow(3, "A", "", "B", "admin", "secret12"))

		user, err := repo.FindUserByUsername(context.Background(), "admin")
		require.NoError(t, err)
		assert.Equal(t, "3", user.ID)
		assert.Equal(t, "secret12", user.Password)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery(`SELECT (.+) FROM users WHERE username`).
			WithArgs("ghost").
			WillReturnRows(userRows())

		_, err := repo.FindUserByUsername(context.Background(), "ghost")
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})
}

// ── CreateUser ──

func TestUserRepository_CreateUser(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	user := sampleUser("ab")

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COALESCE\(MAX\(id\), 0\) \+ 1 FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(6))
	mock.ExpectExec(`INSERT INTO users \(id,first_name,middle_name,last_name,username,password\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6\)`).
		WithArgs(int64(6), user.FirstName, user.MiddleName, user.LastName, user.Username, user.Password).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, user.WithID("6"), created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUser_RetriesOnUniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COALESCE`).WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(2))
	mock.ExpectExec(`INSERT INTO users`).WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COALESCE`).WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(3))
	mock.ExpectExec(`INSERT INTO users`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	created, err := repo.CreateUser(context.Background(), sampleUser("ab"))
	require.NoError(t, err)
	assert.Equal(t, "3", created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUser_GivesUp(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	for i := 0; i < maxIDAllocationAttempts; i++ {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT COALESCE`).WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(2))
		mock.ExpectExec(`INSERT INTO users`).WillReturnError(pgError(pgerrcode.UniqueViolation))
		mock.ExpectRollback()
	}

	_, err := repo.CreateUser(context.Background(), sampleUser("ab"))
	assert.ErrorIs(t, err, ErrIDAllocationFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUser_NonRetryable(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COALESCE`).WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(1))
	mock.ExpectExec(`INSERT INTO users`).WillReturnError(pgError(pgerrcode.NotNullViolation))
	mock.ExpectRollback()

	_, err := repo.CreateUser(context.Background(), sampleUser("ab"))
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUser_BeginError(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

	_, err := repo.CreateUser(context.Background(), sampleUser("ab"))
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

// ── UpdateUser ──

func TestUserRepository_UpdateUser(t *testing.T) {
	patch := models.User{FirstName: "X", MiddleName: "Y", LastName: "Z", Username: "xyz", Password: "newpass1"}

	t.Run("updated", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec(`UPDATE users SET first_name = \$1, middle_name = \$2, last_name = \$3, username = \$4, password = \$5 WHERE id = \$6`).
			WithArgs("X", "Y", "Z", "xyz", "newpass1", int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		updated, err := repo.UpdateUser(context.Background(), "2", patch)
		require.NoError(t, err)
		assert.Equal(t, patch.WithID("2"), updated)
	})

	t.Run("no such row", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec(`UPDATE users`).WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.UpdateUser(context.Background(), "42", patch)
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("non numeric id never reaches the database", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)

		_, err := repo.UpdateUser(context.Background(), "abc", patch)
		assert.ErrorIs(t, err, ErrRecordNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

// ── DeleteUser ──

func TestUserRepository_DeleteUser(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
			WithArgs(int64(1)).
			WillReturnRows(userRows().AddRow(1, "A", "", "B", "ab", "secret12"))
		mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		deleted, err := repo.DeleteUser(context.Background(), "1")
		require.NoError(t, err)
		assert.Equal(t, sampleUser("ab").WithID("1"), deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found rolls back", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT (.+) FROM users WHERE id`).WillReturnRows(userRows())
		mock.ExpectRollback()

		_, err := repo.DeleteUser(context.Background(), "9")
		assert.ErrorIs(t, err, ErrRecordNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
