package services

import (
	"churchpro-backend/models"

	"github.com/rs/zerolog/log"
)

// SeedSampleData loads two demo members with memberships into an empty
// store so a fresh install has something on the dashboard. A store with
// any existing member is left alone.
func SeedSampleData(repo *Repository) error {
	members, err := repo.Members()
	if err != nil {
		return err
	}
	if len(members) > 0 {
		return nil
	}

	samples := []models.MemberInput{
		{
			FirstName:                    "John",
			LastName:                     "Doe",
			Phone:                        "+1234567890",
			DateOfBirth:                  "1980-05-15",
			Address:                      "123 Church St, City, State 12345",
			EmergencyContactName:         "Jane Doe",
			EmergencyContactPhone:        "+1234567891",
			EmergencyContactRelationship: "Spouse",
			MemberType:                   models.MemberTypeFulltime,
		},
		{
			FirstName:                    "Mary",
			LastName:                     "Smith",
			Phone:                        "+1234567892",
			DateOfBirth:                  "1975-08-22",
			Address:                      "456 Faith Ave, City, State 12345",
			EmergencyContactName:         "Bob Smith",
			EmergencyContactPhone:        "+1234567893",
			EmergencyContactRelationship: "Husband",
			MemberType:                   models.MemberTypeOnetime,
		},
	}

	for _, input := range samples {
		member, err := repo.AddMember(input)
		if err != nil {
			return err
		}
		// KES 50 monthly membership
		if _, err := repo.CreateMembership(member.ID, 50); err != nil {
			return err
		}
	}

	log.Info().Int("members", len(samples)).Msg("seeded sample data")
	return nil
}
