package service

import (
	"testing"

	"spinnergy/internal/core/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	repo := repository.NewInMemoryAccountRepository()
	accounts := NewAccountService(repo, 5)

	account, err := accounts.Register("Ann", "Ann@X.com", "p1")
	require.NoError(t, err)

	assert.NotEmpty(t, account.ID)
	assert.Equal(t, "Ann", account.Name)
	assert.Equal(t, "ann@x.com", account.Email)
	assert.Equal(t, 0, account.Score)
	assert.Equal(t, 5, account.SpinsLeft)
	assert.Empty(t, account.History)
	assert.False(t, account.IsAdmin)

	// Credential is hashed, never stored as entered.
	assert.NotEqual(t, "p1", account.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("p1")))
}

func TestRegisterMissingFields(t *testing.T) {
	accounts := NewAccountService(repository.NewInMemoryAccountRepository(), 5)

	for _, tc := range []struct {
		name, email, password string
	}{
		{"", "a@x.com", "p1"},
		{"Ann", "", "p1"},
		{"Ann", "a@x.com", ""},
	} {
		_, err := accounts.Register(tc.name, tc.email, tc.password)
		assert.ErrorIs(t, err, ErrInvalidAccountData)
	}
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	accounts := NewAccountService(repository.NewInMemoryAccountRepository(), 5)

	_, err := accounts.Register("Ann", "a@x.com", "p1")
	require.NoError(t, err)

	_, err = accounts.Register("Another Ann", "A@X.COM", "p2")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestGetAccount(t *testing.T) {
	repo := repository.NewInMemoryAccountRepository()
	accounts := NewAccountService(repo, 5)

	created, err := accounts.Register("Ann", "a@x.com", "p1")
	require.NoError(t, err)

	got, err := accounts.GetAccount(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = accounts.GetAccount("missing")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}
