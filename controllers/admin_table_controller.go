package controllers

import (
	"errors"
	"strconv"

	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/pkg/resp"
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/services"
	"github.com/gin-gonic/gin"
)

type AdminTableController struct{ Svc *services.TableService }

func NewAdminTableController(s *services.TableService) *AdminTableController {
	return &AdminTableController{Svc: s}
}

// GET /admin/tables
func (h *AdminTableController) List(c *gin.Context) {
	tables, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	out := make([]gin.H, 0, len(tables))
	for i := range tables {
		out = append(out, gin.H{
			"id":       tables[i].ID,
			"number":   tables[i].Number,
			"occupied": tables[i].Occupied,
		})
	}
	resp.OK(c, out)
}

// POST /admin/tables
func (h *AdminTableController) Create(c *gin.Context) {
	var body struct {
		Number int `json:"number" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, "missing table number")
		return
	}

	t, err := h.Svc.Create(body.Number)
	if err != nil {
		// uniqueIndex on number rejects duplicates
		resp.BadRequest(c, "table number already in use")
		return
	}
	resp.Created(c, gin.H{"id": t.ID, "number": t.Number, "occupied": t.Occupied})
}

// DELETE /admin/tables/:id
func (h *AdminTableController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.NotFound(c, "table not found")
		return
	}
	if err := h.Svc.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "table not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "table deleted")
}

// POST /admin/tables/:id/toggle flips occupancy for the panel UI.
func (h *AdminTableController) Toggle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.NotFound(c, "table not found")
		return
	}

	occupied, err := h.Svc.Toggle(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "table not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"success": true, "occupied": occupied})
}
