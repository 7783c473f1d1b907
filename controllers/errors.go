package controllers

import (
	"errors"
	"net/http"

	"churchpro-backend/services"
	"churchpro-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps core errors onto HTTP statuses. Anything
// unrecognized is a storage failure and reported as a 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMemberNotFound),
		errors.Is(err, services.ErrMembershipNotFound):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrMembershipExists):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrPaymentMismatch):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Storage error: "+err.Error())
	}
}
