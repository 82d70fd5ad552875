package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_SetPassword(t *testing.T) {
	var u User
	require.NoError(t, u.SetPassword("secret123"))
	assert.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, []byte("secret123"), u.PasswordHash)

	first := u.PasswordHash
	require.NoError(t, u.SetPassword("secret123"))
	assert.NotEqual(t, first, u.PasswordHash, "fresh salt expected")
}

func TestUser_SetPassword_Empty(t *testing.T) {
	var u User
	require.Error(t, u.SetPassword(""))
	assert.Empty(t, u.PasswordHash)
}

func TestUser_CheckPassword(t *testing.T) {
	var u User
	require.NoError(t, u.SetPassword("secret123"))

	assert.True(t, u.CheckPassword("secret123"))
	assert.False(t, u.CheckPassword("secret124"))
	assert.False(t, u.CheckPassword(""))
	assert.False(t, User{}.CheckPassword("secret123"))
}

func TestUser_Sanitized(t *testing.T) {
	u := User{Email: "a@x.com", PasswordHash: []byte("hash")}
	s := u.Sanitized()
	assert.Nil(t, s.PasswordHash)
	assert.Equal(t, "a@x.com", s.Email)
	assert.NotNil(t, u.PasswordHash)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", NormalizeEmail("  A@X.com "))
}

func TestOwnerType_Valid(t *testing.T) {
	assert.True(t, OwnerCompany.Valid())
	assert.True(t, OwnerProduct.Valid())
	assert.True(t, OwnerUser.Valid())
	assert.False(t, OwnerType("company").Valid())
}
