package controllers

import (
	"errors"
	"fmt"

	"babylone/entity"
	"babylone/pkg/resp"
	"babylone/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// POST /orders — checkout the session cart.
func (h *OrderController) Create(c *gin.Context) {
	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.Checkout(c.GetString("sessionId"), &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders/:id — customer-facing tracking.
func (h *OrderController) Detail(c *gin.Context) {
	order, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "commande introuvable")
		return
	}
	resp.OK(c, order)
}

// GET /admin/orders
func (h *OrderController) List(c *gin.Context) {
	orders, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /admin/dashboard
func (h *OrderController) Dashboard(c *gin.Context) {
	stats, err := h.Svc.Stats()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stats)
}

// PATCH /admin/orders/:id/status
func (h *OrderController) SetStatus(c *gin.Context) {
	var body struct {
		Status entity.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.SetStatus(c.Param("id"), body.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrTransition):
			resp.Conflict(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "commande introuvable")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	c.JSON(200, gin.H{"ok": true, "data": order,
		"message": fmt.Sprintf("Commande %s mise à jour vers: %s", order.ID, order.Status.Label())})
}

// POST /admin/orders/:id/notify
func (h *OrderController) NotifyCustomer(c *gin.Context) {
	var body struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.NotifyCustomer(c.Param("id"), body.Message); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "commande introuvable")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, fmt.Sprintf("Notification envoyée au client pour la commande %s", c.Param("id")))
}

// POST /admin/notifications — broadcast to everyone connected.
func (h *OrderController) Broadcast(c *gin.Context) {
	var body struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	h.Svc.BroadcastMessage(body.Message)
	resp.Message(c, "Notification envoyée")
}
