package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hostbridge/backend/internal/application/hostbridge"
	"github.com/hostbridge/backend/internal/infrastructure/hostapi"
)

// HostProductHandler bridges product operations to the external host.
// Single-item responses are the normalized bridge result serialized under
// the upstream status code; the list is relayed byte for byte.
type HostProductHandler struct {
	BaseHandler
	products *hostbridge.ProductService
}

// NewHostProductHandler creates a new HostProductHandler
func NewHostProductHandler(products *hostbridge.ProductService) *HostProductHandler {
	return &HostProductHandler{products: products}
}

// RegisterRoutes registers host product routes
func (h *HostProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	host := rg.Group("/host/products")
	{
		host.GET("/list", h.List)
		host.POST("", h.Create)
		host.PUT("/:id", h.Update)
		host.DELETE("/:id", h.Delete)
		host.GET("/:id", h.GetByID)
	}
}

// hostProductRequest is the inbound body for create and update calls
type hostProductRequest struct {
	SKU         string     `json:"sku" binding:"required"`
	Name        string     `json:"name" binding:"required"`
	Description *string    `json:"description"`
	BrandID     *uuid.UUID `json:"brand_id"`
	Brand       *string    `json:"brand"`
	CategoryID  *uuid.UUID `json:"category_id"`
	Category    *string    `json:"category"`
	Status      bool       `json:"status"`
	CreatedBy   *string    `json:"created_by"`
}

// Create sends a product creation to the host
func (h *HostProductHandler) Create(c *gin.Context) {
	var req hostProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.products.CreateProduct(c.Request.Context(), hostapi.CreateProductInput{
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		BrandID:     req.BrandID,
		Brand:       req.Brand,
		CategoryID:  req.CategoryID,
		Category:    req.Category,
		Status:      req.Status,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		h.handleBridgeError(c, err)
		return
	}
	c.JSON(result.Code, result)
}

// Update sends a product update to the host
func (h *HostProductHandler) Update(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req hostProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.products.UpdateProduct(c.Request.Context(), hostapi.UpdateProductInput{
		ID:          id,
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		BrandID:     req.BrandID,
		Brand:       req.Brand,
		CategoryID:  req.CategoryID,
		Category:    req.Category,
		Status:      req.Status,
	})
	if err != nil {
		h.handleBridgeError(c, err)
		return
	}
	c.JSON(result.Code, result)
}

// Delete asks the host to delete a product
func (h *HostProductHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	result, err := h.products.DeleteProduct(c.Request.Context(), id)
	if err != nil {
		h.handleBridgeError(c, err)
		return
	}
	c.JSON(result.Code, result)
}

// GetByID fetches a single product from the host
func (h *HostProductHandler) GetByID(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	result, err := h.products.GetProductByID(c.Request.Context(), id)
	if err != nil {
		h.handleBridgeError(c, err)
		return
	}
	c.JSON(result.Code, result)
}

// List relays the host's product list verbatim: upstream status code, body
// bytes, and content type, with no interpretation.
func (h *HostProductHandler) List(c *gin.Context) {
	raw, err := h.products.ListProducts(c.Request.Context())
	if err != nil {
		h.handleBridgeError(c, err)
		return
	}
	c.Data(raw.Code, raw.ContentType, []byte(raw.Body))
}

func (h *HostProductHandler) bindID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product id")
		return uuid.Nil, false
	}
	return id, true
}

// handleBridgeError maps transport faults to 502; everything else falls
// back to the standard error handling.
func (h *HostProductHandler) handleBridgeError(c *gin.Context, err error) {
	if errors.Is(err, hostapi.ErrHostUnreachable) {
		h.BadGateway(c, "External host is unreachable")
		return
	}
	h.HandleError(c, err)
}
