package utils

import (
	"testing"
	"time"

	"github.com/denimfab/denim_factory_app/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseJWT(t *testing.T) {
	user := &domain.User{UserID: 42, Username: "operator1", Role: domain.RoleDataEntry}
	secret := "test-secret-key-that-is-long-enough"

	token, err := GenerateJWT(user, secret, time.Hour, "dfa-test")
	assert.NoError(t, err, "Signing should not return an error")
	assert.NotEmpty(t, token, "Token should not be empty")

	claims, err := ParseAndValidateJWT(token, secret)
	assert.NoError(t, err, "Parsing should not return an error")
	assert.Equal(t, "operator1", claims.Username)
	assert.Equal(t, domain.RoleDataEntry, claims.Role)
	assert.Equal(t, "dfa-test", claims.Issuer)

	userID, err := claims.UserID()
	assert.NoError(t, err, "Subject should parse back into the user id")
	assert.Equal(t, int64(42), userID)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	user := &domain.User{UserID: 42, Username: "operator1", Role: domain.RoleAdmin}

	token, err := GenerateJWT(user, "secret-one", time.Hour, "dfa-test")
	assert.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "secret-two")
	assert.Error(t, err, "A token signed with a different secret must be rejected")
}

func TestParseJWT_Expired(t *testing.T) {
	user := &domain.User{UserID: 42, Username: "operator1", Role: domain.RoleAdmin}
	secret := "test-secret-key-that-is-long-enough"

	token, err := GenerateJWT(user, secret, -time.Minute, "dfa-test")
	assert.NoError(t, err)

	_, err = ParseAndValidateJWT(token, secret)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseJWT_Garbage(t *testing.T) {
	_, err := ParseAndValidateJWT("not.a.token", "whatever")
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash, "Hash must not equal the plaintext")

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
}
