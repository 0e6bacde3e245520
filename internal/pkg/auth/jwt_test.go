package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dapi/studenttrack/internal/app/models"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "studenttrack.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(time.Hour)
	user := &models.User{ID: 7, Email: "a.student@gmail.com", Role: models.RoleStudent}

	token, expiresIn, err := svc.GenerateToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "a.student@gmail.com", claims.Email)
	assert.Equal(t, "student", claims.Role)
	assert.Equal(t, "studenttrack.test", claims.Issuer)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := newTestService(time.Hour).GenerateToken(
		&models.User{ID: 1, Email: "b.staff@gmail.com", Role: models.RoleStaff})
	assert.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "different", AccessTokenExp: time.Hour})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestService(-time.Minute)
	token, _, err := svc.GenerateToken(&models.User{ID: 1, Email: "a.student@gmail.com", Role: models.RoleStudent})
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_Empty(t *testing.T) {
	_, err := newTestService(time.Hour).ValidateToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	// A bare token without the prefix is passed through unchanged.
	token, err = ExtractBearerToken("abc.def.ghi")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)
}
