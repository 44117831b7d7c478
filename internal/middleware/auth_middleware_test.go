package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandesh/institutecrm/internal/app/models"
	"github.com/sandesh/institutecrm/internal/app/models/dto"
	"github.com/sandesh/institutecrm/internal/app/policy"
	"github.com/sandesh/institutecrm/internal/pkg/auth"
)

func newAuthTestRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	m := NewAuthMiddleware(jwtService)
	router.GET("/protected", m.JWTAuth(), func(c *gin.Context) {
		sub, _ := CurrentSubject(c)
		c.JSON(http.StatusOK, gin.H{"id": sub.ID, "role": string(sub.Role), "superuser": sub.IsSuperuser})
	})
	return router
}

func testJWTService(accessExp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "institutecrm.test",
	})
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	jwtService := testJWTService(time.Hour)
	router := newAuthTestRouter(jwtService)

	token, _, _, _, err := jwtService.GenerateTokenPair(&models.User{
		ID:       42,
		Username: "trainer1",
		Role:     models.RoleTrainer,
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.EqualValues(t, 42, body["id"])
	assert.Equal(t, "TRAINER", body["role"])
	assert.Equal(t, false, body["superuser"])
}

func TestJWTAuthMissingHeader(t *testing.T) {
	router := newAuthTestRouter(testJWTService(time.Hour))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	require.Equal(t, http.StatusUnauthorized, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeUnauthorized, resp.Error.Code)
}

func TestJWTAuthGarbageToken(t *testing.T) {
	router := newAuthTestRouter(testJWTService(time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeInvalidToken, resp.Error.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	jwtService := testJWTService(-time.Minute)
	router := newAuthTestRouter(jwtService)

	token, _, _, _, err := jwtService.GenerateTokenPair(&models.User{
		ID:       42,
		Username: "trainer1",
		Role:     models.RoleTrainer,
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeExpiredToken, resp.Error.Code)
}

func TestCurrentSubjectAbsent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := CurrentSubject(c)
	assert.False(t, ok)
}

func TestCurrentSubjectRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	want := policy.Subject{ID: 7, Role: models.RoleCounselor, IsSuperuser: true}
	c.Set(subjectContextKey, want)

	got, ok := CurrentSubject(c)
	require.True(t, ok)
	assert.Equal(t, want, got)
}
