package store

import (
	"fmt"

	"github.com/MKhiriev/go-user-admin/models"
	sq "github.com/Masterminds/squirrel"
)

var userColumns = []string{"id", "first_name", "middle_name", "last_name", "username", "password"}

var usersTable = models.User{}.TableName()

func buildListUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From(usersTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		OrderBy("id").
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindUserByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildNextIDQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Select("COALESCE(MAX(id), 0) + 1").
		From(usersTable).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertUserQuery(b sq.StatementBuilderType, id int64, user models.User) (string, []any, error) {
	query, args, err := b.Insert(usersTable).
		Columns(userColumns...).
		Values(id, user.FirstName, user.MiddleName, user.LastName, user.Username, user.Password).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateUserQuery(b sq.StatementBuilderType, id int64, user models.User) (string, []any, error) {
	query, args, err := b.Update(usersTable).
		Set("first_name", user.FirstName).
		Set("middle_name", user.MiddleName).
		Set("last_name", user.LastName).
		Set("username", user.Username).
		Set("password", user.Password).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteUserQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.Delete(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
