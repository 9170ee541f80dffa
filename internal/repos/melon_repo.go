package repos

import (
	"ubermelon/internal/domain"

	"github.com/jmoiron/sqlx"
)

type MelonRepo struct{ db *sqlx.DB }

func NewMelonRepo(db *sqlx.DB) *MelonRepo { return &MelonRepo{db: db} }

// All returns the full catalog in seed (id) order.
func (r *MelonRepo) All() ([]domain.Melon, error) {
	var out []domain.Melon
	err := r.db.Select(&out, `
	  SELECT id, name, price, qty, COALESCE(image_url,'') AS image_url,
	         COALESCE(description,'') AS description
	  FROM melons
	  ORDER BY id
	`)
	return out, err
}

func (r *MelonRepo) Get(id int) (domain.Melon, error) {
	var m domain.Melon
	err := r.db.Get(&m, `
	  SELECT id, name, price, qty, COALESCE(image_url,'') AS image_url,
	         COALESCE(description,'') AS description
	  FROM melons
	  WHERE id = ?
	`, id)
	return m, err
}
