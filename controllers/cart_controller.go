package controllers

import (
	"errors"

	"babylone/pkg/resp"
	"babylone/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Svc: s}
}

func sessionID(c *gin.Context) string {
	return c.GetString("sessionId")
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	resp.OK(c, h.Svc.Get(sessionID(c)))
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	line, err := h.Svc.Add(sessionID(c), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "article introuvable")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{
		"line":    line,
		"cart":    h.Svc.Get(sessionID(c)),
		"message": line.Name + " a été ajouté à votre panier",
	})
}

// PATCH /cart/items/:lineId
func (h *CartController) UpdateQty(c *gin.Context) {
	var body struct {
		Qty int `json:"qty"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	// an unknown line is a no-op, not an error: UI double-clicks are expected
	h.Svc.UpdateQty(sessionID(c), c.Param("lineId"), body.Qty)
	resp.OK(c, h.Svc.Get(sessionID(c)))
}

// DELETE /cart/items/:lineId
func (h *CartController) Remove(c *gin.Context) {
	h.Svc.Remove(sessionID(c), c.Param("lineId"))
	resp.OK(c, h.Svc.Get(sessionID(c)))
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	h.Svc.Clear(sessionID(c))
	resp.OK(c, h.Svc.Get(sessionID(c)))
}
