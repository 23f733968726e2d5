package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vesteevolta/backend/internal/dto"
	"github.com/vesteevolta/backend/internal/http/handlers/common"
	"github.com/vesteevolta/backend/internal/service"
)

// AuthHandler exposes registration and login.
type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	user, err := h.auth.Register(c.Request.Context(), service.RegisterInput{
		Name:        req.Name,
		Telephone:   req.Telephone,
		Email:       req.Email,
		Password:    req.Password,
		ProfileType: req.ProfileType,
	})
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		User:        result.User,
		AccessToken: result.Token.Token,
		ExpiresAt:   result.Token.ExpiresAt,
	})
}
