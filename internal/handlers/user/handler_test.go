package user_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "hotel/infras/otel/mocks"
	userMocks "hotel/internal/domains/user/mocks"
	"hotel/internal/domains/user/model/dto"
	"hotel/internal/handlers/user"
	"hotel/shared/failure"
)

const userID = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"

func newRouter(t *testing.T) (*userMocks.MockUserService, http.Handler) {
	svc := userMocks.NewMockUserService(gomock.NewController(t))
	handler := user.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, path, strings.NewReader(body)))

	return recorder
}

func TestHandler_GetUserByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().Get(gomock.Any(), userID).Return(dto.UserResponse{ID: userID, Email: "guest@example.com"}, nil)

		rec := serve(router, http.MethodGet, "/users/"+userID, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"email":"guest@example.com"`)
	})

	t.Run("missing", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().Get(gomock.Any(), userID).Return(dto.UserResponse{}, failure.NotFound("user not found"))

		rec := serve(router, http.MethodGet, "/users/"+userID, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id never reaches the store", func(t *testing.T) {
		_, router := newRouter(t)

		rec := serve(router, http.MethodGet, "/users/abc", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"user not found"}`, rec.Body.String())
	})
}

func TestHandler_UpdateUser(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		svc, router := newRouter(t)

		level := "admin"
		svc.EXPECT().Update(gomock.Any(), dto.UpdateUserRequest{Level: &level}, userID).Return(nil)

		rec := serve(router, http.MethodPatch, "/users/"+userID, `{"level":"admin"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown level", func(t *testing.T) {
		_, router := newRouter(t)

		rec := serve(router, http.MethodPatch, "/users/"+userID, `{"level":"owner"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, router := newRouter(t)

		rec := serve(router, http.MethodPatch, "/users/abc", `{"level":"admin"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
