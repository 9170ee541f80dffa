package repos

import (
	"database/sql"
	"errors"

	"ubermelon/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CustomerRepo struct{ db *sqlx.DB }

func NewCustomerRepo(db *sqlx.DB) *CustomerRepo { return &CustomerRepo{db: db} }

// ByEmail returns (nil, nil) when no customer matches; callers branch on presence.
func (r *CustomerRepo) ByEmail(email string) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.Get(&c, `
	  SELECT email, first_name, last_name, password_hash
	  FROM customers
	  WHERE LOWER(email) = LOWER(?)
	`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
