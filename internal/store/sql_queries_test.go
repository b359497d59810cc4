// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQueries_Placeholders(t *testing.T) {
	user := sampleUser("ab")

	tests := []struct {
		name        string
		build       func(b sq.StatementBuilderType) (string, []any, error)
		wantDollar  string
		wantArgsLen int
	}{
		{
			name:        "find by username",
			build:       func(b sq.StatementBuilderType) (string, []any, error) { return buildFindUserByUsernameQuery(b, "ab") },
			wantDollar:  "SELECT id, first_name, middle_name, last_name, username, password FROM users WHERE username = $1 ORDER BY id LIMIT 1",
			wantArgsLen: 1,
		},
		{
			name:        "insert",
			build:       func(b sq.StatementBuilderType) (string, []any, error) { return buildInsertUserQuery(b, 1, user) },
			wantDollar:  "INSERT INTO users (id,first_name,middle_name,last_name,username,password) VALUES ($1,$2,$3,$4,$5,$6)",
			wantArgsLen: 6,
		},
		{
			name:        "delete",
			build:       func(b sq.StatementBuilderType) (string, []any, error) { return buildDeleteUserQuery(b, 1) },
			wantDollar:  "DELETE FROM users WHERE id = $1",
			wantArgsLen: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.build(sq.StatementBuilder.PlaceholderFormat(sq.Dollar))
			require.NoError(t, err)
			assert.Equal(t, tt.wantDollar, query)
			assert.Len(t, args, tt.wantArgsLen)

			query, _, err = tt.build(sq.StatementBuilder.PlaceholderFormat(sq.Question))
			require.NoError(t, err)
			assert.NotContains(t, query, "$")
			assert.Contains(t, query, "?")
		})
	}
}

func TestBuildListUsersQuery(t *testing.T) {
	query, args, err := buildListUsersQuery(sq.StatementBuilder)
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, first_name, middle_name, last_name, username, password FROM users ORDER BY id", query)
	assert.Empty(t, args)
}
