// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_JSONFieldNames(t *testing.T) {
	u := User{ID: "1", FirstName: "A", MiddleName: "M", LastName: "B", Username: "ab", Password: "secret12"}

	data, err := json.Marshal(u)
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":"1","firstName":"A","middleName":"M","lastName":"B","username":"ab","password":"secret12"}`, string(data))
}

func TestNewUserForm_PrefillsConfirmation(t *testing.T) {
	f := NewUserForm(User{ID: "7", FirstName: "A", LastName: "B", Username: "ab", Password: "secret12"})

	assert.Equal(t, "secret12", f.ConfirmPassword)
	assert.Equal(t, User{FirstName: "A", LastName: "B", Username: "ab", Password: "secret12"}, f.ToUser())
}

func TestUser_WithIDDoesNotMutate(t *testing.T) {
	u := User{FirstName: "A"}
	withID := u.WithID("3")

	assert.Empty(t, u.ID)
	assert.Equal(t, "3", withID.ID)
}

func TestErrorCode_IsKnown(t *testing.T) {
	for _, c := range []ErrorCode{CodeBadRequest, CodeValidation, CodeNotFound, CodeUnauthorized, CodeInvalidCredentials, CodeInternal} {
		assert.True(t, c.IsKnown(), c)
	}
	assert.False(t, ErrorCode("SOMETHING_ELSE").IsKnown())
}

func TestNewAppBuildInfo_DefaultsToNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Equal(t, "Build version: N/A\nBuild date: 2026-01-01\nBuild commit: N/A\n", info.String())
}
