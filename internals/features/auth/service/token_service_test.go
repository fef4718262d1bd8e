package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	authModel "gympro_backend/internals/features/auth/model"
)

const testSecret = "test-secret-for-unit-tests"

func testAdmin() *authModel.GymAdminModel {
	return &authModel.GymAdminModel{
		GymAdminID:    uuid.New(),
		GymAdminGymID: uuid.New(),
		GymAdminName:  "Jordan Silva",
		GymAdminRole:  "owner",
	}
}

func parseClaims(secret, tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	return claims, err
}

func TestSignAccessTokenClaims(t *testing.T) {
	admin := testAdmin()

	tokenString, err := SignAccessToken(testSecret, admin, "Iron Temple", AccessTokenTTL)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := parseClaims(testSecret, tokenString)
	assert.NoError(t, err)
	assert.Equal(t, admin.GymAdminID.String(), claims["admin_id"])
	assert.Equal(t, admin.GymAdminGymID.String(), claims["gym_id"])
	assert.Equal(t, "owner", claims["role"])
	assert.Equal(t, "Jordan Silva", claims["name"])
	assert.Equal(t, "Iron Temple", claims["gym_name"])

	exp, ok := claims["exp"].(float64)
	assert.True(t, ok)
	assert.InDelta(t, time.Now().Add(AccessTokenTTL).Unix(), int64(exp), 10)
}

func TestSignAccessTokenRejectsWrongSecret(t *testing.T) {
	tokenString, err := SignAccessToken(testSecret, testAdmin(), "Iron Temple", AccessTokenTTL)
	assert.NoError(t, err)

	_, err = parseClaims("a-different-secret", tokenString)
	assert.Error(t, err)
}

func TestSignAccessTokenExpiredRejected(t *testing.T) {
	tokenString, err := SignAccessToken(testSecret, testAdmin(), "Iron Temple", -time.Hour)
	assert.NoError(t, err)

	_, err = parseClaims(testSecret, tokenString)
	assert.Error(t, err)
}

func TestSignAccessTokenRequiresSecret(t *testing.T) {
	_, err := SignAccessToken("  ", testAdmin(), "Iron Temple", AccessTokenTTL)
	assert.Error(t, err)
}
