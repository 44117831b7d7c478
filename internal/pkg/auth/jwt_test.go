package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandesh/institutecrm/internal/app/models"
)

func testJWTService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "institutecrm.test",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:          42,
		Username:    "trainer1",
		Role:        models.RoleTrainer,
		IsSuperuser: false,
	}
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := testJWTService(time.Hour)

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(testUser())
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.Equal(t, 3600, expiresIn)
	assert.Equal(t, 86400, refreshExpiresIn)

	claims, err := svc.ValidateAndExtractClaims(accessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "trainer1", claims.Username)
	assert.Equal(t, "TRAINER", claims.Role)
	assert.False(t, claims.IsSuperuser)
	assert.Equal(t, "institutecrm.test", claims.Issuer)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := testJWTService(time.Hour)
	accessToken, _, _, _, err := issuer.GenerateTokenPair(testUser())
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:       "different-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "institutecrm.test",
	})
	_, err = other.ValidateToken(accessToken)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := testJWTService(-time.Minute)
	accessToken, _, _, _, err := svc.GenerateTokenPair(testUser())
	require.NoError(t, err)

	_, err = svc.ValidateToken(accessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateAndExtractClaimsEmpty(t *testing.T) {
	svc := testJWTService(time.Hour)

	_, err := svc.ValidateAndExtractClaims("")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateAndExtractClaims("not-a-jwt")
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	// A bare token without the prefix is accepted as-is.
	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestRefreshTokensAreUnique(t *testing.T) {
	svc := testJWTService(time.Hour)

	_, first, _, _, err := svc.GenerateTokenPair(testUser())
	require.NoError(t, err)
	_, second, _, _, err := svc.GenerateTokenPair(testUser())
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
