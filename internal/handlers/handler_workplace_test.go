package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
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
	portssvc "github.com/workmapr/employer_directory_app/internal/core/ports/services"
	"github.com/workmapr/employer_directory_app/internal/dto"
	"github.com/workmapr/employer_directory_app/internal/handlers"
	"github.com/workmapr/employer_directory_app/internal/middleware"
)

// --- Mock WorkplaceService ---
type MockWorkplaceService struct {
	mock.Mock
}

func (m *MockWorkplaceService) AssignWorkplace(ctx context.Context, requestorID, targetUserID, businessID, state, city string) error {
	args := m.Called(ctx, requestorID, targetUserID, businessID, state, city)
	return args.Error(0)
}

func (m *MockWorkplaceService) LeaveWorkplace(ctx context.Context, requestorID string) error {
	args := m.Called(ctx, requestorID)
	return args.Error(0)
}

func (m *MockWorkplaceService) UpdatePosition(ctx context.Context, requestorID, position string) error {
	args := m.Called(ctx, requestorID, position)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.WorkplaceSvcFacade = (*MockWorkplaceService)(nil)

// --- Test Suite ---
type WorkplaceHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockWorkplaceService *MockWorkplaceService
	jwtSecret            string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *WorkplaceHandlerTestSuite) generateTestToken(userID string) string {
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

func (suite *WorkplaceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	// Use the actual AuthMiddleware
	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockWorkplaceService = new(MockWorkplaceService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterWorkplaceRoutes(v1, suite.mockWorkplaceService)
}

// serveAuthedJSON performs a request with the given body and a valid token for userID.
func (suite *WorkplaceHandlerTestSuite) serveAuthedJSON(method, url, userID string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		err := json.NewEncoder(&buf).Encode(body)
		suite.Require().NoError(err)
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- POST /workplace ---

func (suite *WorkplaceHandlerTestSuite) TestAssignWorkplace_Success() {
	userID := uuid.NewString()
	businessID := uuid.NewString()
	reqBody := dto.AssignWorkplaceRequest{
		UserID:     userID,
		BusinessID: businessID,
		State:      "WA",
		City:       "Seattle",
	}

	suite.mockWorkplaceService.On("AssignWorkplace",
		mock.AnythingOfType("*context.valueCtx"),
		userID, userID, businessID, "WA", "Seattle",
	).Return(nil).Once()

	w := suite.serveAuthedJSON(http.MethodPost, "/api/v1/workplace", userID, reqBody)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SuccessResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.mockWorkplaceService.AssertExpectations(suite.T())
}

func (suite *WorkplaceHandlerTestSuite) TestAssignWorkplace_MissingToken() {
	reqBody := dto.AssignWorkplaceRequest{
		UserID:     uuid.NewString(),
		BusinessID: uuid.NewString(),
		State:      "WA",
		City:       "Seattle",
	}
	var buf bytes.Buffer
	suite.Require().NoError(json.NewEncoder(&buf).Encode(reqBody))
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/workplace", &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockWorkplaceService.AssertNotCalled(suite.T(), "AssignWorkplace",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WorkplaceHandlerTestSuite) TestAssignWorkplace_ForbiddenForOtherUser() {
	callerID := uuid.NewString()
	targetID := uuid.NewString()
	businessID := uuid.NewString()
	reqBody := dto.AssignWorkplaceRequest{
		UserID:     targetID,
		BusinessID: businessID,
		State:      "WA",
		City:       "Seattle",
	}

	suite.mockWorkplaceService.On("AssignWorkplace",
		mock.AnythingOfType("*context.valueCtx"),
		callerID, targetID, businessID, "WA", "Seattle",
	).Return(apperrors.ErrForbidden).Once()

	w := suite.serveAuthedJSON(http.MethodPost, "/api/v1/workplace", callerID, reqBody)

	suite.Equal(http.StatusForbidden, w.Code)
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Forbidden", resp["error"])
}

func (suite *WorkplaceHandlerTestSuite) TestAssignWorkplace_BusinessNotFound() {
	userID := uuid.NewString()
	businessID := uuid.NewString()
	reqBody := dto.AssignWorkplaceRequest{
		UserID:     userID,
		BusinessID: businessID,
		State:      "WA",
		City:       "Seattle",
	}

	suite.mockWorkplaceService.On("AssignWorkplace",
		mock.AnythingOfType("*context.valueCtx"),
		userID, userID, businessID, "WA", "Seattle",
	).Return(fmt.Errorf("%w: %s", apperrors.ErrBusinessNotFound, businessID)).Once()

	w := suite.serveAuthedJSON(http.MethodPost, "/api/v1/workplace", userID, reqBody)

	suite.Equal(http.StatusNotFound, w.Code)
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Business not found", resp["error"])
}

func (suite *WorkplaceHandlerTestSuite) TestAssignWorkplace_MissingUserRowIsServerError() {
	userID := uuid.NewString()
	businessID := uuid.NewString()
	reqBody := dto.AssignWorkplaceRequest{
		UserID:     userID,
		BusinessID: businessID,
		State:      "WA",
		City:       "Seattle",
	}

	// The user row went missing on the second write of the pair; the profile
	// store already holds the new affiliation.
	suite.mockWorkplaceService.On("AssignWorkplace",
		mock.AnythingOfType("*context.valueCtx"),
		userID, userID, businessID, "WA", "Seattle",
	).Return(apperrors.ErrNotFound).Once()

	w := suite.serveAuthedJSON(http.MethodPost, "/api/v1/workplace", userID, reqBody)

	// This is a partial failure, not a missing business: it must surface as a
	// 500 with the underlying message, never as "Business not found".
	suite.Equal(http.StatusInternalServerError, w.Code)
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(apperrors.ErrNotFound.Error(), resp["error"])
}

func (suite *WorkplaceHandlerTestSuite) TestAssignWorkplace_ServiceErrorPropagated() {
	userID := uuid.NewString()
	businessID := uuid.NewString()
	reqBody := dto.AssignWorkplaceRequest{
		UserID:     userID,
		BusinessID: businessID,
		State:      "WA",
		City:       "Seattle",
	}
	storeErr := fmt.Errorf("profile store write timed out")

	suite.mockWorkplaceService.On("AssignWorkplace",
		mock.AnythingOfType("*context.valueCtx"),
		userID, userID, businessID, "WA", "Seattle",
	).Return(storeErr).Once()

	w := suite.serveAuthedJSON(http.MethodPost, "/api/v1/workplace", userID, reqBody)

	// Store failures surface verbatim so partial failures are not hidden.
	suite.Equal(http.StatusInternalServerError, w.Code)
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(storeErr.Error(), resp["error"])
}

func (suite *WorkplaceHandlerTestSuite) TestAssignWorkplace_MissingFields() {
	userID := uuid.NewString()
	// BusinessID, State and City omitted
	reqBody := map[string]string{"userID": userID}

	w := suite.serveAuthedJSON(http.MethodPost, "/api/v1/workplace", userID, reqBody)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockWorkplaceService.AssertNotCalled(suite.T(), "AssignWorkplace",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- DELETE /workplace ---

func (suite *WorkplaceHandlerTestSuite) TestLeaveWorkplace_Success() {
	userID := uuid.NewString()

	suite.mockWorkplaceService.On("LeaveWorkplace",
		mock.AnythingOfType("*context.valueCtx"), userID,
	).Return(nil).Once()

	w := suite.serveAuthedJSON(http.MethodDelete, "/api/v1/workplace", userID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SuccessResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.mockWorkplaceService.AssertExpectations(suite.T())
}

func (suite *WorkplaceHandlerTestSuite) TestLeaveWorkplace_MissingToken() {
	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/workplace", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockWorkplaceService.AssertNotCalled(suite.T(), "LeaveWorkplace", mock.Anything, mock.Anything)
}

func (suite *WorkplaceHandlerTestSuite) TestLeaveWorkplace_ServiceErrorPropagated() {
	userID := uuid.NewString()
	storeErr := fmt.Errorf("user row update failed")

	suite.mockWorkplaceService.On("LeaveWorkplace",
		mock.AnythingOfType("*context.valueCtx"), userID,
	).Return(storeErr).Once()

	w := suite.serveAuthedJSON(http.MethodDelete, "/api/v1/workplace", userID, nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(storeErr.Error(), resp["error"])
}

// --- PUT /workplace/position ---

func (suite *WorkplaceHandlerTestSuite) TestUpdatePosition_Success() {
	userID := uuid.NewString()
	reqBody := dto.UpdatePositionRequest{Position: "Shift Lead"}

	suite.mockWorkplaceService.On("UpdatePosition",
		mock.AnythingOfType("*context.valueCtx"), userID, "Shift Lead",
	).Return(nil).Once()

	w := suite.serveAuthedJSON(http.MethodPut, "/api/v1/workplace/position", userID, reqBody)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SuccessResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.mockWorkplaceService.AssertExpectations(suite.T())
}

func (suite *WorkplaceHandlerTestSuite) TestUpdatePosition_EmptyPositionAccepted() {
	userID := uuid.NewString()
	reqBody := dto.UpdatePositionRequest{Position: ""}

	suite.mockWorkplaceService.On("UpdatePosition",
		mock.AnythingOfType("*context.valueCtx"), userID, "",
	).Return(nil).Once()

	w := suite.serveAuthedJSON(http.MethodPut, "/api/v1/workplace/position", userID, reqBody)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockWorkplaceService.AssertExpectations(suite.T())
}

func (suite *WorkplaceHandlerTestSuite) TestUpdatePosition_MissingToken() {
	var buf bytes.Buffer
	suite.Require().NoError(json.NewEncoder(&buf).Encode(dto.UpdatePositionRequest{Position: "Cook"}))
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/workplace/position", &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockWorkplaceService.AssertNotCalled(suite.T(), "UpdatePosition", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkplaceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WorkplaceHandlerTestSuite))
}
