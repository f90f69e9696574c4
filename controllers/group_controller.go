package controllers

import (
	"strconv"

	"github.com/ahmedxgouda/LittleLemon/entity"
	"github.com/ahmedxgouda/LittleLemon/pkg/resp"
	"github.com/ahmedxgouda/LittleLemon/services"
	"github.com/gin-gonic/gin"
)

// GroupController serves the manager-only role assignment endpoints under
// /api/groups/{manager,delivery-crew}/users.
type GroupController struct{ Svc *services.RoleService }

func NewGroupController(s *services.RoleService) *GroupController {
	return &GroupController{Svc: s}
}

func (h *GroupController) list(groupName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := h.Svc.UsersInGroup(groupName)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		resp.OK(c, gin.H{"users": users})
	}
}

func (h *GroupController) add(groupName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Username string `json:"username" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		user, err := h.Svc.AddUserToGroup(req.Username, groupName)
		if err != nil {
			writeDomainErr(c, err)
			return
		}
		resp.Created(c, user)
	}
}

func (h *GroupController) remove(groupName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))
		if err := h.Svc.RemoveUserFromGroup(uint(id), groupName); err != nil {
			writeDomainErr(c, err)
			return
		}
		resp.OK(c, gin.H{"removed": id})
	}
}

func (h *GroupController) ListManagers() gin.HandlerFunc  { return h.list(entity.GroupManager) }
func (h *GroupController) AddManager() gin.HandlerFunc    { return h.add(entity.GroupManager) }
func (h *GroupController) RemoveManager() gin.HandlerFunc { return h.remove(entity.GroupManager) }

func (h *GroupController) ListDeliveryCrew() gin.HandlerFunc { return h.list(entity.GroupDeliveryCrew) }
func (h *GroupController) AddDeliveryCrew() gin.HandlerFunc  { return h.add(entity.GroupDeliveryCrew) }
func (h *GroupController) RemoveDeliveryCrew() gin.HandlerFunc {
	return h.remove(entity.GroupDeliveryCrew)
}
