package controllers

import (
	"net/http"
	"time"

	"churchpro-backend/services"
	"churchpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateMembershipInput defines the expected JSON structure for starting a membership
type CreateMembershipInput struct {
	MemberID      uuid.UUID `json:"memberId" binding:"required"`
	MonthlyAmount float64   `json:"monthlyAmount" binding:"required,gt=0"`
}

// MembershipController exposes membership creation and renewal over HTTP.
type MembershipController struct {
	repo      *services.Repository
	lifecycle *services.Lifecycle
}

func NewMembershipController(repo *services.Repository, lifecycle *services.Lifecycle) *MembershipController {
	return &MembershipController{repo: repo, lifecycle: lifecycle}
}

// CreateMembership starts a one-month membership for a member
func (mc *MembershipController) CreateMembership(c *gin.Context) {
	var input CreateMembershipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	membership, err := mc.repo.CreateMembership(input.MemberID, input.MonthlyAmount)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, membership)
}

// GetMemberships lists memberships, optionally filtered to one member
func (mc *MembershipController) GetMemberships(c *gin.Context) {
	if raw := c.Query("memberId"); raw != "" {
		memberID, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid member ID format")
			return
		}
		membership, err := mc.repo.MembershipByMemberID(memberID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, membership)
		return
	}

	memberships, err := mc.repo.Memberships()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, memberships)
}

// RenewMembership extends a membership by one month from today
func (mc *MembershipController) RenewMembership(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid membership ID format")
		return
	}

	membership, err := mc.lifecycle.RenewMembership(id, time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, membership)
}
