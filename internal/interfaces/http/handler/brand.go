package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalogapp "github.com/hostbridge/backend/internal/application/catalog"
	"github.com/hostbridge/backend/internal/domain/shared"
	"github.com/hostbridge/backend/internal/interfaces/http/dto"
)

// BrandHandler handles brand requests
type BrandHandler struct {
	BaseHandler
	brands *catalogapp.BrandService
}

// NewBrandHandler creates a new BrandHandler
func NewBrandHandler(brands *catalogapp.BrandService) *BrandHandler {
	return &BrandHandler{brands: brands}
}

// RegisterRoutes registers brand routes
func (h *BrandHandler) RegisterRoutes(rg *gin.RouterGroup) {
	brands := rg.Group("/catalog/brands")
	{
		brands.POST("", h.Create)
		brands.GET("", h.List)
		brands.GET("/:id", h.GetByID)
		brands.PUT("/:id", h.Update)
		brands.DELETE("/:id", h.Delete)
	}
}

// Create creates a brand
func (h *BrandHandler) Create(c *gin.Context) {
	var req catalogapp.NamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	brand, err := h.brands.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, brand)
}

// List returns a page of brands
func (h *BrandHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	filter := shared.Filter{Page: req.Page, Limit: req.Limit, OrderBy: req.OrderBy, OrderDir: req.OrderDir}
	filter.Normalize()

	brands, total, err := h.brands.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, brands, total, filter.Page, filter.Limit)
}

// GetByID returns a single brand
func (h *BrandHandler) GetByID(c *gin.Context) {
	id, ok := h.bindBrandID(c)
	if !ok {
		return
	}

	brand, err := h.brands.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, brand)
}

// Update renames a brand
func (h *BrandHandler) Update(c *gin.Context) {
	id, ok := h.bindBrandID(c)
	if !ok {
		return
	}

	var req catalogapp.NamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	brand, err := h.brands.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, brand)
}

// Delete removes a brand
func (h *BrandHandler) Delete(c *gin.Context) {
	id, ok := h.bindBrandID(c)
	if !ok {
		return
	}

	if err := h.brands.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *BrandHandler) bindBrandID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid brand id")
		return uuid.Nil, false
	}
	return id, true
}
