package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

// NewAuthHandler registers the login route. The extra middleware (a strict
// rate limiter) applies to login only.
func NewAuthHandler(rg *gin.RouterGroup, authUC domain.AuthUsecase, mw ...gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC}

	handlers := append(mw, handler.Login)
	rg.POST("/login", handlers...)
}

// Login accepts or rejects the admin credential pair. No session or token
// is issued.
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.authUC.Login(c, req.Username, req.Password); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Login successful", nil)
}
