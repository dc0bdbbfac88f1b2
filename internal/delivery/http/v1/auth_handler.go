package v1

import (
	"errors"
	"net/http"

	"candidate-management-api/internal/domain"
	"candidate-management-api/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

// NewAuthHandler registers the public auth routes
func NewAuthHandler(public *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	auth := public.Group("/auth")
	{
		auth.POST("/login", handler.Login)
	}
}

// LoginRequest is the form-encoded login payload. The email address is
// used as the username.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Login godoc
// @Summary      Log in for an access token
// @Description  Exchange username (email) and password for a bearer token
// @Tags         users
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Email address is used as username"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  domain.AccessToken
// @Failure      401  {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	token, err := h.authUC.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusUnauthorized {
			c.Header("WWW-Authenticate", "Bearer")
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, token)
}
