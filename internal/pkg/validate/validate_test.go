package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-api-selfservice/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, Struct(&domain.ChangePasswordRequest{Password: "abc123", NewPassword: "newpass1"}))
}

func TestStruct_NewPasswordTooShort(t *testing.T) {
	err := Struct(&domain.ChangePasswordRequest{Password: "abc123", NewPassword: "short"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Contains(t, err.Error(), "field 'NewPassword' failed 'min=6'")
}

func TestStruct_MissingNewPassword(t *testing.T) {
	err := Struct(&domain.ChangePasswordRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field 'NewPassword' failed 'required'")
	assert.NotContains(t, err.Error(), "field 'Password'")
}

func TestStruct_EmptyCurrentPasswordAllowed(t *testing.T) {
	assert.NoError(t, Struct(&domain.ChangePasswordRequest{NewPassword: "newpass1"}))
}

func TestStruct_NewPasswordTooLong(t *testing.T) {
	err := Struct(&domain.ChangePasswordRequest{Password: "abc123", NewPassword: strings.Repeat("a", 73)})
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Contains(t, err.Error(), "field 'NewPassword' failed 'max=72'")
}

func TestStruct_MinimumCountsCharacters(t *testing.T) {
	assert.Error(t, Struct(&domain.ChangePasswordRequest{NewPassword: "ééé"}))
	assert.NoError(t, Struct(&domain.ChangePasswordRequest{NewPassword: "éééééé"}))
}

func TestStruct_ExactlyMinimumLength(t *testing.T) {
	assert.NoError(t, Struct(&domain.ChangePasswordRequest{Password: "x", NewPassword: "123456"}))
}
