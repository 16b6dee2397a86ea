package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MarKarl30/UTS-BackEnd-Prog/models"
	"github.com/MarKarl30/UTS-BackEnd-Prog/services"
)

// PurchaseHandler serves the purchase endpoints, including the item
// add/remove operations that reference products by sku.
type PurchaseHandler struct {
	svc services.PurchaseService
}

// NewPurchaseHandler constructs the handler with its dependencies.
func NewPurchaseHandler(svc services.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{svc: svc}
}

// CreatePurchase handles POST /purchases.
func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	var req models.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.svc.CreatePurchase(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// ListPurchases handles GET /purchases with search/sort/pagination params.
func (h *PurchaseHandler) ListPurchases(c *gin.Context) {
	var q models.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.svc.ListPurchases(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetPurchase handles GET /purchases/:id with the product join resolved.
func (h *PurchaseHandler) GetPurchase(c *gin.Context) {
	p, err := h.svc.GetPurchase(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// AddProduct handles PUT /purchases/:id/items.
func (h *PurchaseHandler) AddProduct(c *gin.Context) {
	var req models.PurchaseItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.svc.AddProduct(c.Request.Context(), c.Param("id"), req.SKU)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// RemoveProduct handles DELETE /purchases/:id/items/:sku.
func (h *PurchaseHandler) RemoveProduct(c *gin.Context) {
	p, err := h.svc.RemoveProduct(c.Request.Context(), c.Param("id"), c.Param("sku"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeletePurchase handles DELETE /purchases/:id.
func (h *PurchaseHandler) DeletePurchase(c *gin.Context) {
	if err := h.svc.DeletePurchase(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
