package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	portfolioUC domain.PortfolioUsecase
}

func NewPortfolioHandler(rg *gin.RouterGroup, portfolioUC domain.PortfolioUsecase) {
	handler := &PortfolioHandler{portfolioUC: portfolioUC}

	portfolio := rg.Group("/portfolio")
	{
		portfolio.GET("", handler.List)
		portfolio.POST("", handler.Create)
		portfolio.PUT("", handler.Update)
		portfolio.DELETE("", handler.Delete)
	}
}

type ProjectRequest struct {
	Category    string `json:"category" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Year        string `json:"year" binding:"required"`
	Upfront     bool   `json:"upfront"`
	Queuenumber int    `json:"queuenumber"`
}

type GeneralInfoRequest struct {
	Category string `json:"category" binding:"required"`
	// Pointer so an explicit empty string stays distinguishable from a
	// missing field.
	GeneralInfo *string `json:"generalInfo"`
}

func (r ProjectRequest) toInput() domain.ProjectInput {
	return domain.ProjectInput{
		Category:    r.Category,
		Title:       r.Title,
		Description: r.Description,
		Year:        r.Year,
		Upfront:     r.Upfront,
		Queuenumber: r.Queuenumber,
	}
}

// mutationVariant names the semantically distinct operations multiplexed
// onto the /portfolio URL family through query parameters.
type mutationVariant int

const (
	variantUnknown mutationVariant = iota
	variantUpdateProject
	variantUpdateGeneralInfo
	variantDeleteProject
	variantDeleteCategory
)

// classifyPut resolves which of the two PUT operations the query
// parameters select: ?type=generalInfo wins over ?id=<id>.
func classifyPut(c *gin.Context) mutationVariant {
	if c.Query("type") == "generalInfo" {
		return variantUpdateGeneralInfo
	}
	if c.Query("id") != "" {
		return variantUpdateProject
	}
	return variantUnknown
}

// classifyDelete resolves the DELETE operation: with an id it removes one
// project, without it the whole category cascades.
func classifyDelete(c *gin.Context) mutationVariant {
	if c.Query("id") != "" {
		return variantDeleteProject
	}
	return variantDeleteCategory
}

// List returns every category with its projects in display order.
func (h *PortfolioHandler) List(c *gin.Context) {
	portfolio, err := h.portfolioUC.List(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Portfolio", portfolio)
}

// Create adds a project, creating its category on demand.
func (h *PortfolioHandler) Create(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	item, err := h.portfolioUC.Create(c, req.toInput())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Project created", item)
}

// Update dispatches the query-parameter-multiplexed PUT: a by-id full
// replace of one project, or a replace of a category's general info.
func (h *PortfolioHandler) Update(c *gin.Context) {
	switch classifyPut(c) {
	case variantUpdateGeneralInfo:
		h.updateGeneralInfo(c)
	case variantUpdateProject:
		h.updateProject(c)
	default:
		c.Error(apperror.BadRequest("id query parameter is required"))
	}
}

func (h *PortfolioHandler) updateProject(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	item, err := h.portfolioUC.Update(c, c.Query("id"), req.toInput())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project updated", item)
}

func (h *PortfolioHandler) updateGeneralInfo(c *gin.Context) {
	var req GeneralInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.portfolioUC.SetGeneralInfo(c, req.Category, req.GeneralInfo); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "General info updated", nil)
}

// Delete removes one project when an id is supplied, otherwise the whole
// category with everything in it.
func (h *PortfolioHandler) Delete(c *gin.Context) {
	category := c.Query("category")

	var err error
	switch classifyDelete(c) {
	case variantDeleteProject:
		err = h.portfolioUC.DeleteProject(c, category, c.Query("id"))
	case variantDeleteCategory:
		err = h.portfolioUC.DeleteCategory(c, category)
	}
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Deleted", nil)
}
