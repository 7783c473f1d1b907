package controllers

import (
	"net/http"
	"time"

	"churchpro-backend/models"
	"churchpro-backend/services"
	"churchpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RecordPaymentInput defines the expected JSON structure for recording a payment
type RecordPaymentInput struct {
	MembershipID  uuid.UUID            `json:"membershipId" binding:"required"`
	MemberID      uuid.UUID            `json:"memberId" binding:"required"`
	Amount        float64              `json:"amount" binding:"required,gt=0"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod" binding:"required,oneof=cash card bank_transfer check"`
	Notes         string               `json:"notes"`
}

// PaymentController exposes payment recording and listing over HTTP.
type PaymentController struct {
	repo      *services.Repository
	lifecycle *services.Lifecycle
}

func NewPaymentController(repo *services.Repository, lifecycle *services.Lifecycle) *PaymentController {
	return &PaymentController{repo: repo, lifecycle: lifecycle}
}

// RecordPayment stores a completed payment and renews the membership
func (pc *PaymentController) RecordPayment(c *gin.Context) {
	var input RecordPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	payment, err := pc.lifecycle.RecordPayment(input.MembershipID, input.MemberID, models.PaymentInput{
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
	}, time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// GetPayments lists payments, optionally filtered to one member
func (pc *PaymentController) GetPayments(c *gin.Context) {
	if raw := c.Query("memberId"); raw != "" {
		memberID, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid member ID format")
			return
		}
		payments, err := pc.repo.PaymentsByMemberID(memberID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, payments)
		return
	}

	payments, err := pc.repo.Payments()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}
