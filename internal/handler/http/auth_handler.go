package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enviconnect/enviconnect/internal/handler/http/dto"
	usecasecontract "github.com/enviconnect/enviconnect/internal/usecase/contract"
)

// AuthHandlerInterface defines the methods for the auth handler to
// allow interface-based dependency injection in tests.
type AuthHandlerInterface interface {
	CheckUsername(*gin.Context)
	Register(*gin.Context)
	Login(*gin.Context)
	SendOTP(*gin.Context)
	VerifyOTP(*gin.Context)
}

// Ensure AuthHandler implements AuthHandlerInterface
var _ AuthHandlerInterface = (*AuthHandler)(nil)

type AuthHandler struct {
	authUsecase usecasecontract.IAuthUseCase
}

func NewAuthHandler(authUsecase usecasecontract.IAuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// CheckUsername handles the username availability check.
func (h *AuthHandler) CheckUsername(c *gin.Context) {
	username := c.Param("username")
	available, err := h.authUsecase.CheckUsername(c.Request.Context(), username)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Server error")
		return
	}
	if !available {
		MessageHandler(c, http.StatusBadRequest, "Username already taken")
		return
	}
	MessageHandler(c, http.StatusOK, "Username available")
}

// Register handles account creation.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	_, err := h.authUsecase.Register(c.Request.Context(), usecasecontract.RegisterInput{
		Username:            req.Username,
		Email:               req.Email,
		Password:            req.Password,
		Name:                req.Name,
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		State:               req.State,
		City:                req.City,
		Age:                 req.Age,
		Designation:         req.Designation,
		SustainabilityFocus: req.SustainabilityFocus,
	})
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.RegisterResponse{
		Success: true,
		Message: "User registered successfully",
	})
}

// Login handles user authentication. Unknown identifiers and wrong
// passwords produce the same response.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, accessToken, refreshToken, err := h.authUsecase.Login(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid credentials")
		return
	}

	SuccessHandler(c, http.StatusOK, dto.LoginResponse{
		Success:      true,
		Redirect:     "home.html",
		User:         dto.ToUserIdentity(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// SendOTP is a deliberate placeholder. It performs no side effect.
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req dto.SendOTPRequest
	_ = c.ShouldBindJSON(&req)
	MessageHandler(c, http.StatusOK, "OTP feature coming soon")
}

// VerifyOTP is a deliberate placeholder. It performs no side effect.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	_ = c.ShouldBindJSON(&req)
	MessageHandler(c, http.StatusOK, "OTP feature coming soon")
}
