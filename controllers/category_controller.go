package controllers

import (
	"strconv"

	"github.com/ahmedxgouda/LittleLemon/pkg/resp"
	"github.com/ahmedxgouda/LittleLemon/services"
	"github.com/gin-gonic/gin"
)

type CategoryController struct{ Svc *services.MenuService }

func NewCategoryController(s *services.MenuService) *CategoryController {
	return &CategoryController{Svc: s}
}

// GET /api/categories
func (h *CategoryController) List(c *gin.Context) {
	out, err := h.Svc.ListCategories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": out})
}

// GET /api/categories/:id
func (h *CategoryController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	cat, err := h.Svc.GetCategory(uint(id))
	if err != nil {
		writeDomainErr(c, err)
		return
	}
	resp.OK(c, cat)
}

// POST /api/categories (manager)
func (h *CategoryController) Create(c *gin.Context) {
	var in services.CategoryIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := h.Svc.CreateCategory(&in)
	if err != nil {
		writeDomainErr(c, err)
		return
	}
	resp.Created(c, cat)
}

// PUT /api/categories/:id (manager)
func (h *CategoryController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var in services.CategoryIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := h.Svc.UpdateCategory(uint(id), &in)
	if err != nil {
		writeDomainErr(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /api/categories/:id (manager)
func (h *CategoryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.Svc.DeleteCategory(uint(id)); err != nil {
		writeDomainErr(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
