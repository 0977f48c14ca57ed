package services

import (
	"errors"
	"fmt"

	"lumakin.dev/internal/models"
)

// ErrNotFound is returned when a lookup matches nothing.
var ErrNotFound = errors.New("not found")

// ProjectService handles project-related operations
type ProjectService struct {
	projects []models.Project
}

// NewProjectService creates a new ProjectService. Projects are expected in
// display order.
func NewProjectService(projects []models.Project) *ProjectService {
	return &ProjectService{projects: projects}
}

// GetAll returns all projects
func (s *ProjectService) GetAll() []models.Project {
	return s.projects
}

// GetByIndex returns the project at a display position
func (s *ProjectService) GetByIndex(i int) (*models.Project, error) {
	if i < 0 || i >= len(s.projects) {
		return nil, fmt.Errorf("project %d: %w", i, ErrNotFound)
	}
	return &s.projects[i], nil
}
