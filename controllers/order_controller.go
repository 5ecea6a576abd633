package controllers

import (
	"errors"
	"strconv"

	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/entity"
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/pkg/resp"
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/services"
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/utils"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc          *services.OrderService
	MediaBaseURL string
}

func NewOrderController(s *services.OrderService, mediaBaseURL string) *OrderController {
	return &OrderController{Svc: s, MediaBaseURL: mediaBaseURL}
}

type CheckoutRequest struct {
	PaymentMethod string `json:"metodo_pago"`
	TableNumber   int    `json:"mesa"`
}

// POST /api/checkout
func (h *OrderController) Checkout(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid json")
		return
	}

	out, err := h.Svc.Checkout(uid, req.PaymentMethod, req.TableNumber)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			resp.BadRequest(c, "cart is empty")
		case errors.Is(err, services.ErrTableNotFound):
			resp.BadRequest(c, "invalid table")
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.OK(c, gin.H{
		"message":         "order created",
		"pedido_id":       out.OrderID,
		"total":           out.Total.InexactFloat64(),
		"tiempo_estimado": out.EstimatedWait,
	})
}

func orderItemJSON(it *entity.OrderItem, base string) gin.H {
	return gin.H{
		"product_id": it.ProductID,
		"name":       it.Product.Name,
		"quantity":   it.Qty,
		"unit_price": it.UnitPrice.InexactFloat64(),
		"subtotal":   it.Subtotal().InexactFloat64(),
		"note":       it.Note,
		"image":      imageURL(base, it.Product.Image),
	}
}

// GET /api/orders
func (h *OrderController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	orders, err := h.Svc.ListForUser(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	out := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		out = append(out, gin.H{
			"id":             o.ID,
			"date":           o.CreatedAt.Format("2006-01-02 15:04"),
			"total":          o.Total.InexactFloat64(),
			"status":         o.Status,
			"payment_method": o.PaymentMethod,
		})
	}
	resp.OK(c, out)
}

// GET /api/orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.NotFound(c, "order not found")
		return
	}

	o, err := h.Svc.DetailForUser(uid, uint(orderID))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	items := make([]gin.H, 0, len(o.Items))
	for i := range o.Items {
		items = append(items, orderItemJSON(&o.Items[i], h.MediaBaseURL))
	}

	resp.OK(c, gin.H{
		"id":             o.ID,
		"date":           o.CreatedAt.Format("2006-01-02 15:04"),
		"total":          o.Total.InexactFloat64(),
		"status":         o.Status,
		"payment_method": o.PaymentMethod,
		"table":          o.TableNumber,
		"items":          items,
	})
}
