package controllers

import (
	"math"
	"strconv"
	"time"

	"github.com/ahmedxgouda/LittleLemon/entity"
	"github.com/ahmedxgouda/LittleLemon/middlewares"
	"github.com/ahmedxgouda/LittleLemon/pkg/resp"
	"github.com/ahmedxgouda/LittleLemon/services"
	"github.com/ahmedxgouda/LittleLemon/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

type orderWriteReq struct {
	Total decimal.Decimal `json:"total"`
	Date  string          `json:"date" binding:"required"`
}

func parseDate(s string) (time.Time, bool) {
	d, err := time.Parse(time.DateOnly, s)
	return d, err == nil
}

// POST /api/orders
func (oc *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req orderWriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	date, ok := parseDate(req.Date)
	if !ok {
		resp.BadRequest(c, "date must be YYYY-MM-DD")
		return
	}

	order, err := oc.Svc.CreateFromCart(uid, req.Total, date)
	middlewares.RecordOrderOperation("create", err == nil)
	if err != nil {
		writeDomainErr(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /api/orders
func (oc *OrderController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	roles := utils.CurrentRoles(c)

	orders, err := oc.Svc.List(roles, uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// resolve the order, then run the access table; policy runs before any
// payload validation so a denied caller learns nothing about the payload
func (oc *OrderController) authorized(c *gin.Context, op services.OrderOp, fields services.FieldSet) (*entity.Order, bool) {
	id, _ := strconv.Atoi(c.Param("id"))
	order, err := oc.Svc.Get(uint(id))
	if err != nil {
		writeDomainErr(c, err)
		return nil, false
	}
	uid := utils.CurrentUserID(c)
	roles := utils.CurrentRoles(c)
	if err := services.AuthorizeOrder(roles, uid, op, order, fields); err != nil {
		writeDomainErr(c, err)
		return nil, false
	}
	return order, true
}

// GET /api/orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	order, ok := oc.authorized(c, services.OrderRead, nil)
	if !ok {
		return
	}
	resp.OK(c, order)
}

// PUT /api/orders/:id — rebuild from the caller's current cart
func (oc *OrderController) Replace(c *gin.Context) {
	order, ok := oc.authorized(c, services.OrderReplace, nil)
	if !ok {
		return
	}

	var req orderWriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	date, dok := parseDate(req.Date)
	if !dok {
		resp.BadRequest(c, "date must be YYYY-MM-DD")
		return
	}

	uid := utils.CurrentUserID(c)
	updated, err := oc.Svc.Replace(order, uid, req.Total, date)
	middlewares.RecordOrderOperation("replace", err == nil)
	if err != nil {
		writeDomainErr(c, err)
		return
	}
	resp.OK(c, updated)
}

// PATCH /api/orders/:id — status and/or delivery_crew_id, per the role table
func (oc *OrderController) Patch(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, ok := oc.authorized(c, services.OrderPatch, services.NewFieldSet(body))
	if !ok {
		return
	}

	var in services.PatchOrderIn
	if v, present := body[services.FieldStatus]; present {
		b, bok := v.(bool)
		if !bok {
			resp.BadRequest(c, "status must be a boolean")
			return
		}
		in.Status = &b
	}
	if v, present := body[services.FieldDeliveryCrew]; present {
		f, fok := v.(float64)
		if !fok || f != math.Trunc(f) || f < 1 {
			resp.BadRequest(c, "delivery_crew_id must be a positive integer")
			return
		}
		id := uint(f)
		in.DeliveryCrewID = &id
	}

	updated, err := oc.Svc.Patch(order, &in)
	middlewares.RecordOrderOperation("patch", err == nil)
	if err != nil {
		writeDomainErr(c, err)
		return
	}
	resp.OK(c, updated)
}

// DELETE /api/orders/:id (manager)
func (oc *OrderController) Delete(c *gin.Context) {
	order, ok := oc.authorized(c, services.OrderDelete, nil)
	if !ok {
		return
	}
	err := oc.Svc.Delete(order)
	middlewares.RecordOrderOperation("delete", err == nil)
	if err != nil {
		writeDomainErr(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": order.ID})
}
