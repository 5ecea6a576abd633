package controllers

import (
	"errors"
	"strconv"

	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/pkg/resp"
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/services"
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AdminCatalogController struct {
	Svc       *services.CatalogService
	UploadDir string
}

func NewAdminCatalogController(s *services.CatalogService, uploadDir string) *AdminCatalogController {
	return &AdminCatalogController{Svc: s, UploadDir: uploadDir}
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type ProductRequest struct {
	CategoryID  uint    `json:"category_id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Status      string  `json:"status" binding:"omitempty,oneof=active out_of_stock"`
}

// ---------------- Categories ----------------

// GET /admin/categories
func (h *AdminCatalogController) Categories(c *gin.Context) {
	cats, err := h.Svc.ListCategories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	out := make([]gin.H, 0, len(cats))
	for i := range cats {
		out = append(out, gin.H{
			"id":          cats[i].ID,
			"name":        cats[i].Name,
			"description": cats[i].Description,
		})
	}
	resp.OK(c, out)
}

// POST /admin/categories
func (h *AdminCatalogController) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "missing name")
		return
	}

	cat, err := h.Svc.CreateCategory(req.Name, req.Description)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateName) {
			resp.BadRequest(c, "category name already in use")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": cat.ID, "name": cat.Name, "description": cat.Description})
}

// PATCH /admin/categories/:id
func (h *AdminCatalogController) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.NotFound(c, "category not found")
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "missing name")
		return
	}

	cat, err := h.Svc.UpdateCategory(uint(id), req.Name, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "category not found")
		case errors.Is(err, services.ErrDuplicateName):
			resp.BadRequest(c, "category name already in use")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"id": cat.ID, "name": cat.Name, "description": cat.Description})
}

// DELETE /admin/categories/:id
func (h *AdminCatalogController) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.NotFound(c, "category not found")
		return
	}
	if err := h.Svc.DeleteCategory(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "category deleted")
}

// ---------------- Products ----------------

// GET /admin/products lists every status for the admin view.
func (h *AdminCatalogController) Products(c *gin.Context) {
	products, err := h.Svc.Repo.ListAllProducts()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	out := make([]gin.H, 0, len(products))
	for i := range products {
		p := &products[i]
		out = append(out, gin.H{
			"id":          p.ID,
			"name":        p.Name,
			"description": p.Description,
			"price":       p.Price.InexactFloat64(),
			"status":      p.Status,
			"category_id": p.CategoryID,
			"image":       p.Image,
		})
	}
	resp.OK(c, out)
}

// POST /admin/products
func (h *AdminCatalogController) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "missing or invalid fields")
		return
	}

	p, err := h.Svc.CreateProduct(&services.ProductIn{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       decimal.NewFromFloat(req.Price),
		Status:      req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.BadRequest(c, "category not found")
		case errors.Is(err, services.ErrInvalidPrice):
			resp.BadRequest(c, "price must not be negative")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, gin.H{"id": p.ID, "name": p.Name})
}

// PATCH /admin/products/:id
func (h *AdminCatalogController) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.NotFound(c, "product not found")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "missing or invalid fields")
		return
	}

	p, err := h.Svc.UpdateProduct(uint(id), &services.ProductIn{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       decimal.NewFromFloat(req.Price),
		Status:      req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "product not found")
		case errors.Is(err, services.ErrInvalidPrice):
			resp.BadRequest(c, "price must not be negative")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"id": p.ID, "name": p.Name, "status": p.Status})
}

// DELETE /admin/products/:id
func (h *AdminCatalogController) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.NotFound(c, "product not found")
		return
	}
	if err := h.Svc.DeleteProduct(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "product deleted")
}

// POST /admin/products/:id/image accepts a multipart upload.
func (h *AdminCatalogController) UploadProductImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.NotFound(c, "product not found")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		resp.BadRequest(c, "missing image file")
		return
	}

	path, err := utils.SaveProductImage(c, file, h.UploadDir)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	p, err := h.Svc.AttachImage(uint(id), path)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": p.ID, "image": p.Image})
}
