// auth_controller_test.go
package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"realty-office-api/internal/application/services"
	"realty-office-api/internal/interface/api/rest/dto/auth"
)

type fakeAuthService struct {
	GenerateTokenFunc func(email, password string) (string, error)
}

func (f *fakeAuthService) GenerateToken(email, password string) (string, error) {
	return f.GenerateTokenFunc(email, password)
}

func newAuthRouter(t *testing.T, as *fakeAuthService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	ac := &AuthController{
		logger:      zap.NewNop(),
		authService: as,
	}
	r.POST("/login", ac.LoginHandler)
	return r
}

func doPOST(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var b []byte
	switch v := body.(type) {
	case string:
		b = []byte(v)
	default:
		var err error
		b, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func validLogin() auth.LoginRequest {
	return auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "VeryStrongPassw0rd!",
	}
}

func TestAuthController_LoginHandler(t *testing.T) {
	type want struct {
		code        int
		jsonEq      map[string]any
		jsonHasKeys []string
	}

	tests := []struct {
		name     string
		body     any
		generate func(email, password string) (string, error)
		want     want
	}{
		{
			name:     "invalid JSON",
			body:     "{bad json",
			generate: func(email, password string) (string, error) { return "", nil },
			want: want{
				code:        http.StatusBadRequest,
				jsonEq:      map[string]any{"error": "invalid json"},
				jsonHasKeys: []string{"error"},
			},
		},
		{
			name:     "validation error",
			body:     auth.LoginRequest{Email: "not-an-email", Password: ""},
			generate: func(email, password string) (string, error) { return "", nil },
			want: want{
				code:        http.StatusBadRequest,
				jsonHasKeys: []string{"error", "details"},
			},
		},
		{
			name: "invalid credentials -> 401",
			body: validLogin(),
			generate: func(email, password string) (string, error) {
				return "", services.ErrInvalidCredentials
			},
			want: want{
				code:        http.StatusUnauthorized,
				jsonEq:      map[string]any{"error": "invalid credentials"},
				jsonHasKeys: []string{"error"},
			},
		},
		{
			name: "token generation error -> 500",
			body: validLogin(),
			generate: func(email, password string) (string, error) {
				return "", services.ErrFailedToGenerateToken
			},
			want: want{
				code:        http.StatusInternalServerError,
				jsonHasKeys: []string{"error"},
			},
		},
		{
			name: "success",
			body: validLogin(),
			generate: func(email, password string) (string, error) {
				return "tok_123", nil
			},
			want: want{
				code:        http.StatusOK,
				jsonEq:      map[string]any{"access_token": "tok_123", "token_type": "Bearer"},
				jsonHasKeys: []string{"access_token", "token_type"},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := newAuthRouter(t, &fakeAuthService{GenerateTokenFunc: tt.generate})

			rr := doPOST(t, r, "/login", tt.body)
			assert.Equal(t, tt.want.code, rr.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			for k, v := range tt.want.jsonEq {
				assert.Equal(t, v, resp[k])
			}
			for _, k := range tt.want.jsonHasKeys {
				assert.Contains(t, resp, k)
			}
		})
	}
}
