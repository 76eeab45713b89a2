package controllers

import (
	"errors"
	"fmt"

	"babylone/pkg/resp"
	"babylone/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Svc: s}
}

// GET /menu — the grouped catalog the storefront renders. A fetch failure is
// terminal for the page: 503, no retry.
func (h *MenuController) Catalog(c *gin.Context) {
	cats, err := h.Svc.Catalog()
	if err != nil {
		resp.Unavailable(c, "le menu est indisponible pour le moment")
		return
	}
	resp.OK(c, cats)
}

// GET /menu/items/:id
func (h *MenuController) Item(c *gin.Context) {
	item, err := h.Svc.Item(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "article introuvable")
		return
	}
	resp.OK(c, item)
}

// GET /admin/ingredients
func (h *MenuController) Ingredients(c *gin.Context) {
	out, err := h.Svc.Ingredients()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /admin/addons
func (h *MenuController) Addons(c *gin.Context) {
	out, err := h.Svc.Addons()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /admin/menu/items
func (h *MenuController) Create(c *gin.Context) {
	var req services.AddItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.AddItem(&req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(201, gin.H{"ok": true, "data": item,
		"message": fmt.Sprintf("%s a été ajouté au menu", item.Name)})
}

// PATCH /admin/menu/items/:id
func (h *MenuController) Update(c *gin.Context) {
	var req services.UpdateItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateItem(c.Param("id"), &req); err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "article introuvable")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Message(c, "L'article a été mis à jour")
}

// DELETE /admin/menu/items/:id
func (h *MenuController) Delete(c *gin.Context) {
	if err := h.Svc.DeleteItem(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "article introuvable")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "L'article a été supprimé du menu")
}
