package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/vivacar/internal/config"
	"github.com/BruksfildServices01/vivacar/internal/domain/access"
)

const secret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func newRouter() *gin.Engine {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://app.vivacar.com.br/"}))

	secured := r.Group("/")
	secured.Use(AuthMiddleware(&config.Config{JWTSecret: secret}))
	secured.GET("/whoami", func(c *gin.Context) {
		a := ActorFrom(c)
		c.JSON(http.StatusOK, gin.H{"id": a.ID, "role": a.Role})
	})
	secured.GET("/staff", RequireRole(access.RoleStaff), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func do(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	r := newRouter()
	token := signed(t, jwt.MapClaims{
		"sub":  7,
		"role": "cliente",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	w := do(r, http.MethodGet, "/whoami", token)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		ID   uint   `json:"id"`
		Role string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, uint(7), body.ID)
	assert.Equal(t, "cliente", body.Role)
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name  string
		token string
		code  string
	}{
		{"missing", "", "missing_authorization_header"},
		{"garbage", "abc.def.ghi", "invalid_token"},
		{"expired", signed(t, jwt.MapClaims{"sub": 7, "role": "cliente", "exp": time.Now().Add(-time.Hour).Unix()}), "invalid_token"},
		{"unknown role", signed(t, jwt.MapClaims{"sub": 7, "role": "admin"}), "invalid_token_payload"},
		{"no subject", signed(t, jwt.MapClaims{"role": "cliente"}), "invalid_token_payload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodGet, "/whoami", tt.token)
			assert.Equal(t, http.StatusUnauthorized, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body["error_code"])
		})
	}
}

func TestRequireRole(t *testing.T) {
	r := newRouter()

	customer := signed(t, jwt.MapClaims{"sub": 7, "role": "cliente"})
	w := do(r, http.MethodGet, "/staff", customer)
	assert.Equal(t, http.StatusForbidden, w.Code)

	staff := signed(t, jwt.MapClaims{"sub": 1, "role": "funcionario"})
	w = do(r, http.MethodGet, "/staff", staff)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodOptions, "/whoami", nil)
	req.Header.Set("Origin", "https://app.vivacar.com.br")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.vivacar.com.br", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSMiddleware_UnknownOrigin(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodOptions, "/whoami", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "Origin", w.Header().Get("Vary"))
}

func TestCORSMiddleware_Wildcard(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"*"}))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware_NoListBlocksCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware(nil))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://app.vivacar.com.br")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
