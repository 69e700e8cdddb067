package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fintrack-app/fintrack_backend/internal/apperrors"
	"github.com/fintrack-app/fintrack_backend/internal/core/domain"
	portssvc "github.com/fintrack-app/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack-app/fintrack_backend/internal/dto"
	"github.com/fintrack-app/fintrack_backend/internal/handlers"
	"github.com/fintrack-app/fintrack_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockUser *MockUserService
	mockTxn  *MockTransactionService
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockUser = new(MockUserService)
	suite.mockTxn = new(MockTransactionService)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, testConfig(), &portssvc.ServiceContainer{
		User:        suite.mockUser,
		Transaction: suite.mockTxn,
	})
}

func (suite *AuthHandlerTestSuite) postJSON(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) TestRegister_Success() {
	user := &domain.User{
		UserID:    uuid.NewString(),
		Email:     "new@example.com",
		CreatedAt: time.Now().UTC(),
	}
	suite.mockUser.On("RegisterUser", mock.Anything, dto.RegisterRequest{
		Email:    "new@example.com",
		Password: "s3cretpass",
	}).Return(user, nil).Once()

	w := suite.postJSON("/api/v1/auth/register", `{"email":"new@example.com","password":"s3cretpass"}`)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(user.UserID, resp.ID)
	suite.Equal(user.Email, resp.Email)
	suite.mockUser.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestRegister_DuplicateEmail() {
	suite.mockUser.On("RegisterUser", mock.Anything, mock.AnythingOfType("dto.RegisterRequest")).Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.postJSON("/api/v1/auth/register", `{"email":"taken@example.com","password":"s3cretpass"}`)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *AuthHandlerTestSuite) TestRegister_RejectsInvalidEmail() {
	w := suite.postJSON("/api/v1/auth/register", `{"email":"not-an-email","password":"s3cretpass"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUser.AssertNotCalled(suite.T(), "RegisterUser", mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	user := &domain.User{
		UserID: uuid.NewString(),
		Email:  "known@example.com",
	}
	suite.mockUser.On("AuthenticateUser", mock.Anything, "known@example.com", "s3cretpass").Return(user, nil).Once()

	w := suite.postJSON("/api/v1/auth/login", `{"email":"known@example.com","password":"s3cretpass"}`)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("bearer", resp.TokenType)

	// The issued token carries the user id as its subject.
	claims, err := utils.ParseAndValidateJWT(resp.AccessToken, testJWTSecret)
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.Subject)
}

func (suite *AuthHandlerTestSuite) TestLogin_BadCredentials() {
	suite.mockUser.On("AuthenticateUser", mock.Anything, "known@example.com", "wrongpass").Return(nil, apperrors.ErrForbidden).Once()

	w := suite.postJSON("/api/v1/auth/login", `{"email":"known@example.com","password":"wrongpass"}`)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestLogin_RateLimited() {
	user := &domain.User{UserID: uuid.NewString(), Email: "known@example.com"}
	suite.mockUser.On("AuthenticateUser", mock.Anything, "known@example.com", "s3cretpass").Return(user, nil)

	// Limit is 5 per minute per IP; the sixth attempt is rejected.
	for i := 0; i < 5; i++ {
		w := suite.postJSON("/api/v1/auth/login", `{"email":"known@example.com","password":"s3cretpass"}`)
		suite.Equal(http.StatusOK, w.Code)
	}
	w := suite.postJSON("/api/v1/auth/login", `{"email":"known@example.com","password":"s3cretpass"}`)
	suite.Equal(http.StatusTooManyRequests, w.Code)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
