package controllers

import (
	"strconv"

	"github.com/ahmedxgouda/LittleLemon/pkg/resp"
	"github.com/ahmedxgouda/LittleLemon/services"
	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// GET /api/menu-items
func (h *MenuController) List(c *gin.Context) {
	out, err := h.Svc.ListMenuItems()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": out})
}

// GET /api/menu-items/:id
func (h *MenuController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	m, err := h.Svc.GetMenuItem(uint(id))
	if err != nil {
		writeDomainErr(c, err)
		return
	}
	resp.OK(c, m)
}

// POST /api/menu-items (manager)
func (h *MenuController) Create(c *gin.Context) {
	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := h.Svc.CreateMenuItem(&in)
	if err != nil {
		writeDomainErr(c, err)
		return
	}
	resp.Created(c, m)
}

// PUT /api/menu-items/:id (manager)
func (h *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := h.Svc.UpdateMenuItem(uint(id), &in)
	if err != nil {
		writeDomainErr(c, err)
		return
	}
	resp.OK(c, m)
}

// DELETE /api/menu-items/:id (manager); 409 while cart/order rows reference it
func (h *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.Svc.DeleteMenuItem(uint(id)); err != nil {
		writeDomainErr(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
