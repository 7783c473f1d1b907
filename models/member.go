package models

import (
	"time"

	"github.com/google/uuid"
)

type MemberType string

const (
	MemberTypeFulltime MemberType = "fulltime"
	MemberTypeOnetime  MemberType = "onetime"
)

// EmergencyContact is the person to reach when a member cannot be.
type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

type Member struct {
	ID               uuid.UUID        `json:"id"`
	FirstName        string           `json:"firstName"`
	LastName         string           `json:"lastName"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	DateOfBirth      string           `json:"dateOfBirth"`
	Address          string           `json:"address"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
	JoinDate         time.Time        `json:"joinDate"`
	IsActive         bool             `json:"isActive"`
	MemberType       MemberType       `json:"memberType"`
}

// MemberInput carries the caller-supplied fields for creating a member.
// ID, JoinDate and IsActive are stamped by the repository.
type MemberInput struct {
	FirstName                    string     `json:"firstName" binding:"required"`
	LastName                     string     `json:"lastName" binding:"required"`
	Email                        string     `json:"email"`
	Phone                        string     `json:"phone" binding:"required"`
	DateOfBirth                  string     `json:"dateOfBirth" binding:"required"`
	Address                      string     `json:"address" binding:"required"`
	EmergencyContactName         string     `json:"emergencyContactName" binding:"required"`
	EmergencyContactPhone        string     `json:"emergencyContactPhone" binding:"required"`
	EmergencyContactRelationship string     `json:"emergencyContactRelationship" binding:"required"`
	MemberType                   MemberType `json:"memberType" binding:"required,oneof=fulltime onetime"`
}

// MemberUpdate holds a partial update; nil fields are left untouched.
type MemberUpdate struct {
	FirstName                    *string     `json:"firstName"`
	LastName                     *string     `json:"lastName"`
	Email                        *string     `json:"email"`
	Phone                        *string     `json:"phone"`
	DateOfBirth                  *string     `json:"dateOfBirth"`
	Address                      *string     `json:"address"`
	EmergencyContactName         *string     `json:"emergencyContactName"`
	EmergencyContactPhone        *string     `json:"emergencyContactPhone"`
	EmergencyContactRelationship *string     `json:"emergencyContactRelationship"`
	IsActive                     *bool       `json:"isActive"`
	MemberType                   *MemberType `json:"memberType" binding:"omitempty,oneof=fulltime onetime"`
}

// MemberOverview pairs a member with their membership (if any) for the
// dashboard listing.
type MemberOverview struct {
	Member
	Membership *Membership `json:"membership,omitempty"`
}
