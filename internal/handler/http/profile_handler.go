package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enviconnect/enviconnect/internal/handler/http/dto"
	usecasecontract "github.com/enviconnect/enviconnect/internal/usecase/contract"
)

// ProfileHandlerInterface defines the methods for the profile handler.
type ProfileHandlerInterface interface {
	GetProfile(*gin.Context)
	UpdateProfile(*gin.Context)
}

// Ensure ProfileHandler implements ProfileHandlerInterface
var _ ProfileHandlerInterface = (*ProfileHandler)(nil)

type ProfileHandler struct {
	profileUsecase usecasecontract.IProfileUseCase
}

func NewProfileHandler(profileUsecase usecasecontract.IProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
	}
}

// GetProfile returns the aggregated dashboard view for a user.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileUsecase.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, profile)
}

// UpdateProfile applies a partial profile update. The usecase enforces
// the editable-field allow-list; password and email can never change
// through this endpoint.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := h.profileUsecase.UpdateProfile(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.UpdateProfileResponse{
		Message: "Profile updated successfully",
		User:    user,
	})
}
