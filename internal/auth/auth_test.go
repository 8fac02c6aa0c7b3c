package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptVerifier(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)

	verifier := NewBcryptVerifier(hash)

	assert.NoError(t, verifier.Verify("correct-horse"))
	assert.ErrorIs(t, verifier.Verify("wrong"), ErrInvalidPassword)
	assert.ErrorIs(t, verifier.Verify(""), ErrInvalidPassword)
}

func TestTokenManager_IssueAndParse(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	token, err := manager.Issue(SubjectDoctor)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := manager.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, SubjectDoctor, subject)
}

func TestTokenManager_Expired(t *testing.T) {
	manager := NewTokenManager("test-secret", -time.Minute)

	token, err := manager.Issue(SubjectDoctor)
	require.NoError(t, err)

	_, err = manager.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a", time.Hour).Issue(SubjectDoctor)
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_Garbage(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	_, err := manager.Parse("not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
