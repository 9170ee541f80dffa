package services

import (
	"database/sql"
	"errors"
	"fmt"

	"ubermelon/internal/domain"
	"ubermelon/internal/repos"
)

var ErrMelonNotFound = errors.New("melon not found")

type CatalogService struct {
	Melons *repos.MelonRepo
}

func NewCatalogService(melons *repos.MelonRepo) *CatalogService {
	return &CatalogService{Melons: melons}
}

func (s *CatalogService) All() ([]domain.Melon, error) {
	return s.Melons.All()
}

func (s *CatalogService) Get(id int) (domain.Melon, error) {
	m, err := s.Melons.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Melon{}, fmt.Errorf("melon %d: %w", id, ErrMelonNotFound)
	}
	return m, err
}
