package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/promotion"
	"github.com/storefront/backend/internal/interfaces/http/dto"
)

// ProductPricer prices products against the currently active promotions
type ProductPricer interface {
	PriceProduct(ctx context.Context, productID uuid.UUID) (*promotion.DiscountedProduct, error)
	PriceProducts(ctx context.Context, ids []uuid.UUID) ([]promotion.DiscountedProduct, error)
}

// PromotionHandler handles promotion pricing endpoints
type PromotionHandler struct {
	BaseHandler
	pricer ProductPricer
}

// NewPromotionHandler creates a new PromotionHandler
func NewPromotionHandler(pricer ProductPricer) *PromotionHandler {
	return &PromotionHandler{pricer: pricer}
}

// RegisterRoutes mounts the pricing endpoints
func (h *PromotionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products/:id/price", h.GetProductPrice)
	rg.POST("/promotions/resolve", h.ResolvePromotions)
}

// GetProductPrice godoc
// @Summary      Get product price
// @Description  Get a product priced with its best active promotion
// @Tags         promotions
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} dto.Response{data=promotion.DiscountedProduct}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /products/{id}/price [get]
func (h *PromotionHandler) GetProductPrice(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	priced, err := h.pricer.PriceProduct(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if priced == nil {
		h.NotFound(c, "Product not found")
		return
	}

	h.Success(c, priced)
}

// ResolvePromotions godoc
// @Summary      Resolve promotions
// @Description  Price a batch of products with their best active promotions; unknown IDs are omitted
// @Tags         promotions
// @Accept       json
// @Produce      json
// @Param        request body dto.ResolvePromotionsRequest true "Product IDs"
// @Success      200 {object} dto.Response{data=[]promotion.DiscountedProduct}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /promotions/resolve [post]
func (h *PromotionHandler) ResolvePromotions(c *gin.Context) {
	var req dto.ResolvePromotionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	ids := make([]uuid.UUID, 0, len(req.ProductIDs))
	for _, raw := range req.ProductIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid product ID format")
			return
		}
		ids = append(ids, id)
	}

	priced, err := h.pricer.PriceProducts(c.Request.Context(), ids)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, priced)
}
