package controllers

import (
	"errors"
	"strconv"

	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/entity"
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/pkg/resp"
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/repository"
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/services"
	"github.com/gin-gonic/gin"
)

type AdminController struct {
	ReportSvc *services.ReportService
	OrderSvc  *services.OrderService
	UserRepo  *repository.UserRepository
}

func NewAdminController(rs *services.ReportService, os *services.OrderService, ur *repository.UserRepository) *AdminController {
	return &AdminController{ReportSvc: rs, OrderSvc: os, UserRepo: ur}
}

// GET /admin/dashboard
func (ac *AdminController) Dashboard(c *gin.Context) {
	counts, err := ac.ReportSvc.Dashboard()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, counts)
}

// GET /admin/customers
func (ac *AdminController) Customers(c *gin.Context) {
	users, err := ac.UserRepo.ListCustomers()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	out := make([]gin.H, 0, len(users))
	for i := range users {
		out = append(out, gin.H{
			"id":         users[i].ID,
			"email":      users[i].Email,
			"first_name": users[i].FirstName,
			"last_name":  users[i].LastName,
		})
	}
	resp.OK(c, out)
}

// DELETE /admin/customers/:id
func (ac *AdminController) DeleteCustomer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.NotFound(c, "customer not found")
		return
	}

	user, err := ac.UserRepo.FindByID(uint(id))
	if err != nil {
		resp.NotFound(c, "customer not found")
		return
	}
	// Only customer accounts are deletable here.
	if user.Role == entity.RoleAdmin {
		resp.BadRequest(c, "cannot delete an admin account")
		return
	}

	if err := ac.UserRepo.Delete(user.ID); err != nil {
		resp.NotFound(c, "customer not found")
		return
	}
	resp.Message(c, "customer deleted")
}

// GET /admin/orders
func (ac *AdminController) Orders(c *gin.Context) {
	orders, err := ac.OrderSvc.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	out := make([]gin.H, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		out = append(out, gin.H{
			"id":             o.ID,
			"date":           o.CreatedAt.Format("2006-01-02 15:04"),
			"customer":       o.User.Email,
			"total":          o.Total.InexactFloat64(),
			"status":         o.Status,
			"payment_method": o.PaymentMethod,
			"table":          o.TableNumber,
		})
	}
	resp.OK(c, out)
}

// GET /admin/orders/:id
func (ac *AdminController) OrderDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.NotFound(c, "order not found")
		return
	}

	o, err := ac.OrderSvc.Detail(uint(id))
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
		it := &o.Items[i]
		items = append(items, gin.H{
			"product_id": it.ProductID,
			"name":       it.Product.Name,
			"quantity":   it.Qty,
			"unit_price": it.UnitPrice.InexactFloat64(),
			"subtotal":   it.Subtotal().InexactFloat64(),
			"note":       it.Note,
		})
	}

	resp.OK(c, gin.H{
		"id":             o.ID,
		"date":           o.CreatedAt.Format("2006-01-02 15:04"),
		"customer":       o.User.Email,
		"total":          o.Total.InexactFloat64(),
		"status":         o.Status,
		"payment_method": o.PaymentMethod,
		"table":          o.TableNumber,
		"items":          items,
	})
}

// PATCH /admin/orders/:id/status
func (ac *AdminController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.NotFound(c, "order not found")
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, "missing status")
		return
	}

	if err := ac.OrderSvc.UpdateStatus(uint(id), body.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			resp.BadRequest(c, "invalid order status")
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "order not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Message(c, "status updated")
}

// GET /admin/reports/sales
func (ac *AdminController) SalesReport(c *gin.Context) {
	sales, total, err := ac.ReportSvc.SalesReport()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	rows := make([]gin.H, 0, len(sales))
	for i := range sales {
		o := &sales[i]
		rows = append(rows, gin.H{
			"id":       o.ID,
			"date":     o.CreatedAt.Format("2006-01-02 15:04"),
			"customer": o.User.Email,
			"total":    o.Total.InexactFloat64(),
		})
	}
	resp.OK(c, gin.H{
		"sales":       rows,
		"grand_total": total.InexactFloat64(),
	})
}
