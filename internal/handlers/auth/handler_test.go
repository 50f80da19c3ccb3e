package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "hotel/infras/otel/mocks"
	authMocks "hotel/internal/domains/auth/mocks"
	"hotel/internal/domains/auth/model/dto"
	"hotel/internal/handlers/auth"
	"hotel/shared/failure"
)

func newRouter(t *testing.T) (*authMocks.MockAuthService, http.Handler) {
	svc := authMocks.NewMockAuthService(gomock.NewController(t))
	handler := auth.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, path, strings.NewReader(body)))

	return recorder
}

func TestHandler_Register(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *authMocks.MockAuthService)
		wantCode  int
		wantBody  string
	}{
		{
			name: "created",
			body: `{"email":"guest@hotel.test","password":"password123"}`,
			setupMock: func(svc *authMocks.MockAuthService) {
				svc.EXPECT().
					Register(gomock.Any(), dto.RegisterRequest{Email: "guest@hotel.test", Password: "password123"}).
					Return(nil)
			},
			wantCode: http.StatusCreated,
			wantBody: `{"message":"User registered successfully"}`,
		},
		{
			name:     "short password never reaches the service",
			body:     `{"email":"guest@hotel.test","password":"short"}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"password must be at least 8 characters"}`,
		},
		{
			name: "email taken",
			body: `{"email":"guest@hotel.test","password":"password123"}`,
			setupMock: func(svc *authMocks.MockAuthService) {
				svc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(failure.Conflict("email already registered"))
			},
			wantCode: http.StatusConflict,
			wantBody: `{"error":"email already registered"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)

			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			rec := serve(router, http.MethodPost, "/auth/register", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHandler_Login(t *testing.T) {
	t.Run("returns token pair in data envelope", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().
			Login(gomock.Any(), dto.LoginRequest{Email: "guest@hotel.test", Password: "password123"}).
			Return(dto.LoginResponse{AccessToken: "a", RefreshToken: "r", ExpiresIn: 900, Role: "user"}, nil)

		rec := serve(router, http.MethodPost, "/auth/login", `{"email":"guest@hotel.test","password":"password123"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"access_token":"a","refresh_token":"r","expires_in":900,"role":"user"}}`, rec.Body.String())
	})

	t.Run("bad credentials", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(dto.LoginResponse{}, failure.Unauthorized("invalid email or password"))

		rec := serve(router, http.MethodPost, "/auth/login", `{"email":"guest@hotel.test","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		_, router := newRouter(t)

		rec := serve(router, http.MethodPost, "/auth/login", `{"email":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_ChangePassword(t *testing.T) {
	svc, router := newRouter(t)

	rec := serve(router, http.MethodPut, "/auth/password", `{"current_password":"password123","new_password":"password123"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	svc.EXPECT().
		ChangePassword(gomock.Any(), dto.ChangePasswordRequest{CurrentPassword: "password123", NewPassword: "newpassword123"}).
		Return(nil)

	rec = serve(router, http.MethodPut, "/auth/password", `{"current_password":"password123","new_password":"newpassword123"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}
