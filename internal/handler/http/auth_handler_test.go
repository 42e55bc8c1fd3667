package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	handler "github.com/enviconnect/enviconnect/internal/handler/http"
	dto "github.com/enviconnect/enviconnect/internal/handler/http/dto"
	mocks "github.com/enviconnect/enviconnect/internal/handler/http/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupAuthRouter(h handler.AuthHandlerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	r.GET("/api/auth/check-username/:username", h.CheckUsername)
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/send-otp", h.SendOTP)
	r.POST("/api/auth/verify-otp", h.VerifyOTP)
	return r
}

func postJSON(r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCheckUsername_Available(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	r := setupAuthRouter(handler.NewAuthHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/auth/check-username/eco_warrior", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Username available")
}

func TestCheckUsername_Taken(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	mockUsecase.UsernameTaken = true
	r := setupAuthRouter(handler.NewAuthHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/auth/check-username/eco_warrior", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Username already taken")
}

func TestRegister(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	r := setupAuthRouter(handler.NewAuthHandler(mockUsecase))

	w := postJSON(r, "/api/auth/register", dto.RegisterRequest{
		Username: "eco_warrior",
		Email:    "eco@example.com",
		Password: "Password123!",
		Name:     "John Doe",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "User registered successfully")
	assert.Equal(t, "John Doe", mockUsecase.LastRegisterInput.Name)
}

func TestRegister_Conflict(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	mockUsecase.RegisterConflict = true
	r := setupAuthRouter(handler.NewAuthHandler(mockUsecase))

	w := postJSON(r, "/api/auth/register", dto.RegisterRequest{
		Username: "eco_warrior",
		Email:    "eco@example.com",
		Password: "Password123!",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestRegister_MissingFields(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	r := setupAuthRouter(handler.NewAuthHandler(mockUsecase))

	w := postJSON(r, "/api/auth/register", dto.RegisterRequest{
		Username: "eco_warrior",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	r := setupAuthRouter(handler.NewAuthHandler(mockUsecase))

	w := postJSON(r, "/api/auth/login", dto.LoginRequest{
		Login:    "eco_warrior",
		Password: "Password123!",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoginResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "home.html", resp.Redirect)
	assert.Equal(t, "mock-user-id", resp.User.ID)
	assert.Equal(t, "eco_warrior", resp.User.Username)
	assert.Equal(t, "mock_access_token", resp.AccessToken)
	assert.Equal(t, "mock_refresh_token", resp.RefreshToken)
}

func TestLogin_Fail(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	mockUsecase.ShouldFailLogin = true
	r := setupAuthRouter(handler.NewAuthHandler(mockUsecase))

	w := postJSON(r, "/api/auth/login", dto.LoginRequest{
		Login:    "eco_warrior",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestOTPStubs(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	r := setupAuthRouter(handler.NewAuthHandler(mockUsecase))

	w := postJSON(r, "/api/auth/send-otp", dto.SendOTPRequest{Email: "eco@example.com"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "coming soon")

	w = postJSON(r, "/api/auth/verify-otp", dto.VerifyOTPRequest{Email: "eco@example.com", OTP: "123456"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "coming soon")
}
