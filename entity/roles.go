package entity

const (
	GroupManager      = "Manager"
	GroupDeliveryCrew = "Delivery crew"
)

// RoleSet is the caller's role membership for one request. A user may hold
// both groups; holding neither means Customer.
type RoleSet struct {
	Manager      bool
	DeliveryCrew bool
}

func (r RoleSet) Customer() bool { return !r.Manager && !r.DeliveryCrew }

func RolesFromGroups(groups []Group) RoleSet {
	var rs RoleSet
	for _, g := range groups {
		switch g.Name {
		case GroupManager:
			rs.Manager = true
		case GroupDeliveryCrew:
			rs.DeliveryCrew = true
		}
	}
	return rs
}
