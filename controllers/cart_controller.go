package controllers

import (
	"errors"
	"strconv"

	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/pkg/resp"
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/services"
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/utils"
	"github.com/gin-gonic/gin"
)

type CartController struct {
	Svc          *services.CartService
	MediaBaseURL string
}

func NewCartController(s *services.CartService, mediaBaseURL string) *CartController {
	return &CartController{Svc: s, MediaBaseURL: mediaBaseURL}
}

type AddToCartRequest struct {
	ProductID uint   `json:"producto_id" binding:"required"`
	Qty       int    `json:"cantidad"`
	Note      string `json:"nota"`
}

// GET /api/cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	cart, total, err := h.Svc.Get(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	items := make([]gin.H, 0, len(cart.Items))
	for i := range cart.Items {
		it := &cart.Items[i]
		items = append(items, gin.H{
			"id":         it.ID,
			"product_id": it.ProductID,
			"name":       it.Product.Name,
			"quantity":   it.Qty,
			"note":       it.Note,
			"unit_price": it.UnitPrice.InexactFloat64(),
			"subtotal":   it.Subtotal().InexactFloat64(),
			"image":      imageURL(h.MediaBaseURL, it.Product.Image),
		})
	}

	resp.OK(c, gin.H{
		"items": items,
		"total": total.InexactFloat64(),
	})
}

// POST /api/cart/items
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid json")
		return
	}

	if err := h.Svc.Add(uid, req.ProductID, req.Qty, req.Note); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "product not found")
		case errors.Is(err, services.ErrProductUnavailable):
			resp.BadRequest(c, "product not available")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Message(c, "product added to cart")
}

// POST|DELETE /api/cart/items/:id
func (h *CartController) Remove(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.NotFound(c, "item not found")
		return
	}

	if err := h.Svc.RemoveItem(uid, uint(itemID)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "item removed")
}
