package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminalib/luminalib/pkg/auth"
)

func TestSignAndVerify(t *testing.T) {
	a, err := auth.New("test-secret")
	require.NoError(t, err)

	token, err := a.Sign("42")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := a.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "42", subject)
}

func TestVerify_WrongSecret(t *testing.T) {
	signer, err := auth.New("secret-a")
	require.NoError(t, err)
	verifier, err := auth.New("secret-b")
	require.NoError(t, err)

	token, err := signer.Sign("42")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestVerify_Expired(t *testing.T) {
	issued := time.Now().Add(-2 * time.Hour)
	signer, err := auth.New("test-secret",
		auth.WithLifetime(time.Hour),
		auth.WithClock(func() time.Time { return issued }))
	require.NoError(t, err)

	token, err := signer.Sign("42")
	require.NoError(t, err)

	verifier, err := auth.New("test-secret")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestVerify_Garbage(t *testing.T) {
	a, err := auth.New("test-secret")
	require.NoError(t, err)

	_, err = a.Verify("not-a-token")
	assert.Error(t, err)
}

func TestNew_EmptySecret(t *testing.T) {
	_, err := auth.New("")
	assert.Error(t, err)
}
