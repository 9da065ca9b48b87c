package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/workmapr/employer_directory_app/internal/apperrors"
	"github.com/workmapr/employer_directory_app/internal/core/domain"
	portssvc "github.com/workmapr/employer_directory_app/internal/core/ports/services"
	"github.com/workmapr/employer_directory_app/internal/dto"
	"github.com/workmapr/employer_directory_app/internal/handlers"
	"github.com/workmapr/employer_directory_app/internal/middleware"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	args := m.Called(ctx, userID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	args := m.Called(ctx, userID, requestingUserID)
	return args.Error(0)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Test Suite ---
type UserHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockUserService *MockUserService
	jwtSecret       string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *UserHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "wda-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signedString
}

func (suite *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	// Use the actual AuthMiddleware
	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockUserService = new(MockUserService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterUserRoutes(v1, suite.mockUserService)
}

// serveAuthed performs a bodyless request with a valid token for userID.
func (suite *UserHandlerTestSuite) serveAuthed(method, url, userID string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- GET /users ---

func (suite *UserHandlerTestSuite) TestListUsers_Success() {
	callerID := uuid.NewString()
	expected := []domain.User{
		{UserID: uuid.NewString(), Username: "alice", Name: "Alice"},
		{UserID: uuid.NewString(), Username: "bob", Name: "Bob"},
	}

	suite.mockUserService.On("ListUsers",
		mock.AnythingOfType("*context.valueCtx"), 10, 5,
	).Return(expected, nil).Once()

	w := suite.serveAuthed(http.MethodGet, "/api/v1/users?limit=10&offset=5", callerID)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListUsersResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Users, 2)
	suite.Equal(expected[0].Username, resp.Users[0].Username)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestListUsers_DefaultPagination() {
	callerID := uuid.NewString()

	suite.mockUserService.On("ListUsers",
		mock.AnythingOfType("*context.valueCtx"), 20, 0,
	).Return([]domain.User{}, nil).Once()

	w := suite.serveAuthed(http.MethodGet, "/api/v1/users", callerID)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestListUsers_MissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/users", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "ListUsers", mock.Anything, mock.Anything, mock.Anything)
}

// --- GET /users/me ---

func (suite *UserHandlerTestSuite) TestGetCurrentUser_Success() {
	callerID := uuid.NewString()
	position := "Barista"
	user := &domain.User{UserID: callerID, Username: "alice", Name: "Alice", Position: &position}

	suite.mockUserService.On("GetUserByID",
		mock.AnythingOfType("*context.valueCtx"), callerID,
	).Return(user, nil).Once()

	w := suite.serveAuthed(http.MethodGet, "/api/v1/users/me", callerID)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(callerID, resp.UserID)
	suite.Require().NotNil(resp.Position)
	suite.Equal(position, *resp.Position)
}

// --- DELETE /users/:userID ---

func (suite *UserHandlerTestSuite) TestDeleteUser_Success() {
	callerID := uuid.NewString()

	suite.mockUserService.On("DeleteUser",
		mock.AnythingOfType("*context.valueCtx"), callerID, callerID,
	).Return(nil).Once()

	w := suite.serveAuthed(http.MethodDelete, "/api/v1/users/"+callerID, callerID)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestDeleteUser_ForbiddenForOtherUser() {
	callerID := uuid.NewString()
	targetID := uuid.NewString()

	suite.mockUserService.On("DeleteUser",
		mock.AnythingOfType("*context.valueCtx"), targetID, callerID,
	).Return(apperrors.ErrForbidden).Once()

	w := suite.serveAuthed(http.MethodDelete, "/api/v1/users/"+targetID, callerID)

	suite.Equal(http.StatusForbidden, w.Code)
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Forbidden", resp["error"])
}

func (suite *UserHandlerTestSuite) TestDeleteUser_NotFound() {
	callerID := uuid.NewString()

	suite.mockUserService.On("DeleteUser",
		mock.AnythingOfType("*context.valueCtx"), callerID, callerID,
	).Return(apperrors.ErrNotFound).Once()

	w := suite.serveAuthed(http.MethodDelete, "/api/v1/users/"+callerID, callerID)

	suite.Equal(http.StatusNotFound, w.Code)
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("User not found", resp["error"])
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
