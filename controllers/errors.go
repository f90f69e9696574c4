package controllers

import (
	"errors"

	"github.com/ahmedxgouda/LittleLemon/pkg/resp"
	"github.com/ahmedxgouda/LittleLemon/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// writeDomainErr maps a service error to the HTTP status the taxonomy assigns.
func writeDomainErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrDuplicateCartItem),
		errors.Is(err, services.ErrMenuItemInUse),
		errors.Is(err, services.ErrCategoryInUse):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrNegativePrice),
		errors.Is(err, services.ErrPriceMismatch),
		errors.Is(err, services.ErrTotalMismatch),
		errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrEmptyCart):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
