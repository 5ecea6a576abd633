package controllers

import (
	"errors"
	"strconv"

	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/entity"
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/pkg/resp"
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/services"
	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Svc          *services.CatalogService
	MediaBaseURL string
}

func NewCatalogController(s *services.CatalogService, mediaBaseURL string) *CatalogController {
	return &CatalogController{Svc: s, MediaBaseURL: mediaBaseURL}
}

// imageURL builds the absolute URL the mobile client loads, or null.
func imageURL(base, path string) any {
	if path == "" {
		return nil
	}
	return base + "/uploads/" + path
}

func productJSON(p *entity.Product, base string) gin.H {
	return gin.H{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price.InexactFloat64(),
		"category_id": p.CategoryID,
		"image":       imageURL(base, p.Image),
	}
}

// GET /api/categories
func (h *CatalogController) Categories(c *gin.Context) {
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
			"image":       nil,
		})
	}
	resp.OK(c, out)
}

// GET /api/categories/:id
func (h *CatalogController) CategoryDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.NotFound(c, "category not found")
		return
	}

	cat, products, err := h.Svc.CategoryDetail(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	prodJSON := make([]gin.H, 0, len(products))
	for i := range products {
		prodJSON = append(prodJSON, gin.H{
			"id":          products[i].ID,
			"name":        products[i].Name,
			"description": products[i].Description,
			"price":       products[i].Price.InexactFloat64(),
		})
	}

	resp.OK(c, gin.H{
		"id":          cat.ID,
		"name":        cat.Name,
		"description": cat.Description,
		"products":    prodJSON,
	})
}

// GET /api/products?category=N
func (h *CatalogController) Products(c *gin.Context) {
	var categoryID uint
	if raw := c.Query("category"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			categoryID = uint(n)
		}
	}

	products, err := h.Svc.ListProducts(categoryID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	out := make([]gin.H, 0, len(products))
	for i := range products {
		out = append(out, productJSON(&products[i], h.MediaBaseURL))
	}
	resp.OK(c, out)
}

// GET /api/products/:id
func (h *CatalogController) ProductDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.NotFound(c, "product not found")
		return
	}

	p, err := h.Svc.ProductDetail(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, productJSON(p, h.MediaBaseURL))
}
