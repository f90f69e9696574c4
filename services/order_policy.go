package services

import (
	"github.com/ahmedxgouda/LittleLemon/entity"
)

type OrderOp string

const (
	OrderRead    OrderOp = "read"
	OrderReplace OrderOp = "replace"
	OrderPatch   OrderOp = "patch"
	OrderDelete  OrderOp = "delete"
)

const (
	FieldStatus       = "status"
	FieldDeliveryCrew = "delivery_crew_id"
)

// FieldSet holds the keys present in a patch body. The policy judges the key
// set alone; value validation happens afterwards, so an unauthorized caller
// never learns why a payload would fail.
type FieldSet map[string]bool

func NewFieldSet(body map[string]any) FieldSet {
	fs := make(FieldSet, len(body))
	for k := range body {
		fs[k] = true
	}
	return fs
}

func (f FieldSet) Exactly(names ...string) bool {
	if len(f) != len(names) {
		return false
	}
	for _, n := range names {
		if !f[n] {
			return false
		}
	}
	return true
}

func (f FieldSet) SubsetOf(names ...string) bool {
	if len(f) == 0 {
		return false
	}
	allowed := make(map[string]bool, len(names))
	for _, n := range names {
		allowed[n] = true
	}
	for k := range f {
		if !allowed[k] {
			return false
		}
	}
	return true
}

// One rule per (role, operation); first match allows, no match denies.
type policyRule struct {
	role  func(entity.RoleSet) bool
	op    OrderOp
	allow func(o *entity.Order, callerID uint, fields FieldSet) bool
}

var (
	isManager  = func(r entity.RoleSet) bool { return r.Manager }
	isCrew     = func(r entity.RoleSet) bool { return r.DeliveryCrew }
	isCustomer = func(r entity.RoleSet) bool { return r.Customer() }

	always       = func(*entity.Order, uint, FieldSet) bool { return true }
	ownsOrder    = func(o *entity.Order, caller uint, _ FieldSet) bool { return o.UserID == caller }
	assignedCrew = func(o *entity.Order, caller uint, _ FieldSet) bool {
		return o.DeliveryCrewID != nil && *o.DeliveryCrewID == caller
	}
)

var orderRules = []policyRule{
	{isManager, OrderRead, always},
	{isManager, OrderReplace, always},
	{isManager, OrderDelete, always},
	// one field: status or delivery_crew_id; two fields: exactly both
	{isManager, OrderPatch, func(_ *entity.Order, _ uint, f FieldSet) bool {
		return f.SubsetOf(FieldStatus, FieldDeliveryCrew)
	}},
	{isCrew, OrderRead, assignedCrew},
	{isCrew, OrderPatch, func(o *entity.Order, caller uint, f FieldSet) bool {
		return assignedCrew(o, caller, f) && f.Exactly(FieldStatus)
	}},
	{isCustomer, OrderRead, ownsOrder},
	{isCustomer, OrderReplace, ownsOrder},
}

// AuthorizeOrder evaluates the access table for an existing order. It is
// state-free: the caller resolves roles and the order first.
func AuthorizeOrder(roles entity.RoleSet, callerID uint, op OrderOp, o *entity.Order, fields FieldSet) error {
	for _, r := range orderRules {
		if r.op == op && r.role(roles) && r.allow(o, callerID, fields) {
			return nil
		}
	}
	return ErrForbidden
}
