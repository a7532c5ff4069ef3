package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/straydog-api/pkg/jwt"
)

const (
	secret = "jwt-test-secret"
	userID = "65e1c0ffee00000000000001"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, userID, "VOLUNTEER", "straydog-test", 60)
	require.NoError(t, err)

	gotID, role, err := pkgjwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, "VOLUNTEER", role)
}

func TestParse_Expired(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, userID, "USER", "straydog-test", -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(secret, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrTokenExpired)
}

func TestParse_WrongSecret(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, userID, "USER", "straydog-test", 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("another-secret", tok)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, pkgjwt.ErrTokenExpired)
}

func TestEmptySecret(t *testing.T) {
	_, err := pkgjwt.Generate("", userID, "USER", "x", 1)
	assert.ErrorIs(t, err, pkgjwt.ErrEmptySecret)

	_, _, err = pkgjwt.Parse("", "whatever")
	assert.ErrorIs(t, err, pkgjwt.ErrEmptySecret)
}
