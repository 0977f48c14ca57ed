package services

import (
	"lumakin.dev/internal/models"
)

// AccoladeService pages through accolades, newest first.
type AccoladeService struct {
	pagedList[models.Accolade]
}

// NewAccoladeService creates an AccoladeService showing perPage accolades at a time.
func NewAccoladeService(accolades []models.Accolade, perPage int) (*AccoladeService, error) {
	list, err := newPagedList(accolades, perPage)
	if err != nil {
		return nil, err
	}
	return &AccoladeService{pagedList: list}, nil
}
