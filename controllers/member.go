package controllers

import (
	"net/http"

	"churchpro-backend/models"
	"churchpro-backend/services"
	"churchpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MemberController exposes member CRUD over HTTP.
type MemberController struct {
	repo *services.Repository
}

func NewMemberController(repo *services.Repository) *MemberController {
	return &MemberController{repo: repo}
}

// CreateMember registers a new member
func (mc *MemberController) CreateMember(c *gin.Context) {
	var input models.MemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}
	if !utils.ValidateEmail(input.Email) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid email format")
		return
	}
	if !utils.ValidateDate(input.DateOfBirth) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date of birth, expected YYYY-MM-DD")
		return
	}

	member, err := mc.repo.AddMember(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// GetMembers lists all members
func (mc *MemberController) GetMembers(c *gin.Context) {
	members, err := mc.repo.Members()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// GetMembersOverview lists all members joined with their memberships
func (mc *MemberController) GetMembersOverview(c *gin.Context) {
	overview, err := mc.repo.MembersWithMemberships()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// GetMember retrieves a specific member by ID
func (mc *MemberController) GetMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid member ID format")
		return
	}

	member, err := mc.repo.Member(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// UpdateMember applies a partial update to an existing member
func (mc *MemberController) UpdateMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid member ID format")
		return
	}

	var update models.MemberUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if update.Phone != nil && !utils.ValidatePhone(*update.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}
	if update.Email != nil && !utils.ValidateEmail(*update.Email) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid email format")
		return
	}
	if update.DateOfBirth != nil && !utils.ValidateDate(*update.DateOfBirth) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date of birth, expected YYYY-MM-DD")
		return
	}

	member, err := mc.repo.UpdateMember(id, update)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// DeactivateMember marks a member inactive
func (mc *MemberController) DeactivateMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid member ID format")
		return
	}

	member, err := mc.repo.DeactivateMember(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// ReactivateMember marks a member active again
func (mc *MemberController) ReactivateMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid member ID format")
		return
	}

	member, err := mc.repo.ReactivateMember(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// DeleteMember removes a member and cascades to their membership and payments
func (mc *MemberController) DeleteMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid member ID format")
		return
	}

	if err := mc.repo.DeleteMember(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully"})
}
