package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalogapp "github.com/hostbridge/backend/internal/application/catalog"
	"github.com/hostbridge/backend/internal/domain/shared"
	"github.com/hostbridge/backend/internal/interfaces/http/dto"
)

// CategoryHandler handles category requests
type CategoryHandler struct {
	BaseHandler
	categories *catalogapp.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categories *catalogapp.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// RegisterRoutes registers category routes
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/catalog/categories")
	{
		categories.POST("", h.Create)
		categories.GET("", h.List)
		categories.GET("/:id", h.GetByID)
		categories.PUT("/:id", h.Update)
		categories.DELETE("/:id", h.Delete)
	}
}

// Create creates a category
func (h *CategoryHandler) Create(c *gin.Context) {
	var req catalogapp.NamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	category, err := h.categories.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, category)
}

// List returns a page of categories
func (h *CategoryHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	filter := shared.Filter{Page: req.Page, Limit: req.Limit, OrderBy: req.OrderBy, OrderDir: req.OrderDir}
	filter.Normalize()

	categories, total, err := h.categories.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, categories, total, filter.Page, filter.Limit)
}

// GetByID returns a single category
func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, ok := h.bindCategoryID(c)
	if !ok {
		return
	}

	category, err := h.categories.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, category)
}

// Update renames a category
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := h.bindCategoryID(c)
	if !ok {
		return
	}

	var req catalogapp.NamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	category, err := h.categories.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, category)
}

// Delete removes a category
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := h.bindCategoryID(c)
	if !ok {
		return
	}

	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *CategoryHandler) bindCategoryID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid category id")
		return uuid.Nil, false
	}
	return id, true
}
