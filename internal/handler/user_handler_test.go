package handler_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskflow/internal/apperrors"
	"taskflow/internal/dto"
	"taskflow/internal/handler"
	"taskflow/internal/middleware"
	"taskflow/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserService struct {
	mock.Mock
}

var _ service.UserServiceInterface = (*MockUserService)(nil)

func (m *MockUserService) List(ctx context.Context) ([]dto.UserResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.UserResponse), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id uint) (dto.UserResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dto.UserResponse), args.Error(1)
}

func (m *MockUserService) Create(ctx context.Context, req dto.UserCreateRequest) (dto.UserResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.UserResponse), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, id uint, upd dto.UserUpdateRequest, principalEmail string) (dto.UserResponse, error) {
	args := m.Called(ctx, id, upd, principalEmail)
	return args.Get(0).(dto.UserResponse), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, id uint, principalEmail string) error {
	args := m.Called(ctx, id, principalEmail)
	return args.Error(0)
}

// setupUserRouter wires the handler the way the server does, with an
// optional principal injected instead of the JWT middleware.
func setupUserRouter(svc service.UserServiceInterface, principal string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()

	if principal != "" {
		r.Use(func(c *gin.Context) {
			c.Set(middleware.UserEmailKey, principal)
			c.Next()
		})
	}

	h := handler.NewUserHandler(svc)

	r.POST("/api/users", h.Create)
	r.GET("/api/users", h.List)
	r.PUT("/api/users/:id", h.Update)
	r.DELETE("/api/users/:id", h.Delete)

	return r
}

func TestUserHandler_Create(t *testing.T) {
	// Arrange
	mockSvc := new(MockUserService)
	router := setupUserRouter(mockSvc, "")

	created := dto.UserResponse{ID: 1, Email: "carol@example.com"}
	mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(r dto.UserCreateRequest) bool {
		return r.Email == "carol@example.com" && r.Password == "s3cret"
	})).Return(created, nil)

	body := bytes.NewBufferString(`{"email":"carol@example.com","password":"s3cret"}`)
	req, _ := http.NewRequest("POST", "/api/users", body)
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.Contains(t, resp.Body.String(), "carol@example.com")
	assert.NotContains(t, resp.Body.String(), "s3cret")
	mockSvc.AssertExpectations(t)
}

func TestUserHandler_Create_InvalidEmail(t *testing.T) {
	// Arrange
	mockSvc := new(MockUserService)
	router := setupUserRouter(mockSvc, "")

	body := bytes.NewBufferString(`{"email":"not-an-email","password":"s3cret"}`)
	req, _ := http.NewRequest("POST", "/api/users", body)
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestUserHandler_Update_NoPrincipal(t *testing.T) {
	// Arrange
	mockSvc := new(MockUserService)
	router := setupUserRouter(mockSvc, "")

	body := bytes.NewBufferString(`{"firstName":"Alice"}`)
	req, _ := http.NewRequest("PUT", "/api/users/1", body)
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Not authenticated")
	mockSvc.AssertNotCalled(t, "Update")
}

func TestUserHandler_Update_ForbiddenForOtherUser(t *testing.T) {
	// Arrange
	mockSvc := new(MockUserService)
	router := setupUserRouter(mockSvc, "bob@example.com")

	mockSvc.On("Update", mock.Anything, uint(1), mock.Anything, "bob@example.com").
		Return(dto.UserResponse{}, apperrors.ErrForbidden)

	body := bytes.NewBufferString(`{"firstName":"Mallory"}`)
	req, _ := http.NewRequest("PUT", "/api/users/1", body)
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusForbidden, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestUserHandler_Update_Owner(t *testing.T) {
	// Arrange
	mockSvc := new(MockUserService)
	router := setupUserRouter(mockSvc, "alice@example.com")

	updated := dto.UserResponse{ID: 1, Email: "alice@example.com", FirstName: "Alice"}
	mockSvc.On("Update", mock.Anything, uint(1), mock.MatchedBy(func(u dto.UserUpdateRequest) bool {
		return u.FirstName.IsSet() && u.FirstName.Get() == "Alice" && !u.Email.Defined
	}), "alice@example.com").Return(updated, nil)

	body := bytes.NewBufferString(`{"firstName":"Alice"}`)
	req, _ := http.NewRequest("PUT", "/api/users/1", body)
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Alice")
	mockSvc.AssertExpectations(t)
}

func TestUserHandler_Delete_NoPrincipal(t *testing.T) {
	// Arrange
	mockSvc := new(MockUserService)
	router := setupUserRouter(mockSvc, "")

	req, _ := http.NewRequest("DELETE", "/api/users/1", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "Delete")
}

func TestUserHandler_Delete_Owner(t *testing.T) {
	// Arrange
	mockSvc := new(MockUserService)
	router := setupUserRouter(mockSvc, "alice@example.com")

	mockSvc.On("Delete", mock.Anything, uint(1), "alice@example.com").Return(nil)

	req, _ := http.NewRequest("DELETE", "/api/users/1", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockSvc.AssertExpectations(t)
}
