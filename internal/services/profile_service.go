package services

import "lumakin.dev/internal/models"

// ProfileService serves the owner's details and affiliations.
type ProfileService struct {
	profile      models.PersonalInfo
	affiliations []models.Affiliation
}

// NewProfileService creates a new ProfileService
func NewProfileService(profile models.PersonalInfo, affiliations []models.Affiliation) *ProfileService {
	return &ProfileService{profile: profile, affiliations: affiliations}
}

// Profile returns the owner's personal details
func (s *ProfileService) Profile() models.PersonalInfo {
	return s.profile
}

// Affiliations returns affiliations in declared order
func (s *ProfileService) Affiliations() []models.Affiliation {
	return s.affiliations
}
