package controllers

import (
	"strconv"

	"github.com/ahmedxgouda/LittleLemon/pkg/resp"
	"github.com/ahmedxgouda/LittleLemon/services"
	"github.com/ahmedxgouda/LittleLemon/utils"
	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /api/cart/menu-items
func (h *CartController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	items, err := h.Svc.ListItems(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /api/cart/menu-items
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.AddCartItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.AddItem(uid, &req)
	if err != nil {
		writeDomainErr(c, err)
		return
	}
	resp.Created(c, item)
}

// DELETE /api/cart/menu-items/:id
func (h *CartController) RemoveItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.Svc.RemoveItem(uid, uint(id)); err != nil {
		writeDomainErr(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// DELETE /api/cart/menu-items
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if err := h.Svc.Clear(uid); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
