package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(rg *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profile := rg.Group("/profile")
	{
		profile.GET("", handler.Get)
		profile.PUT("", handler.Update)
	}
}

// UpdateProfileRequest is the wire shape of a profile replacement.
// Languages and programming arrive as ordered arrays and are folded into
// keyed maps on persistence; order is lost and duplicate keys collapse,
// last one wins.
type UpdateProfileRequest struct {
	Name        string                    `json:"name" binding:"required"`
	BioShort    string                    `json:"bioshort" binding:"required"`
	Bio         *string                   `json:"bio"`
	Avatar      *string                   `json:"avatar"`
	Email       *string                   `json:"email"`
	Phone       *string                   `json:"phone"`
	Socials     []domain.SocialLink       `json:"socials"`
	Languages   []domain.LanguageEntry    `json:"languages"`
	Programming []domain.ProgrammingEntry `json:"programming"`
}

// Get always answers 200: an unreadable store degrades to the empty
// skeleton so the public page keeps rendering.
func (h *ProfileHandler) Get(c *gin.Context) {
	record := h.profileUC.GetProfile(c)
	response.Success(c, http.StatusOK, "Profile", record)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	upd := domain.ProfileUpdate{
		Name:        req.Name,
		BioShort:    req.BioShort,
		Bio:         req.Bio,
		Avatar:      req.Avatar,
		Email:       req.Email,
		Phone:       req.Phone,
		Socials:     req.Socials,
		Languages:   req.Languages,
		Programming: req.Programming,
	}

	if err := h.profileUC.UpdateProfile(c, upd); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", nil)
}
