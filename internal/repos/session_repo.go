package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type SessionRepo struct{ db *sqlx.DB }

func NewSessionRepo(db *sqlx.DB) *SessionRepo { return &SessionRepo{db: db} }

// Ensure upserts the session row for sid and refreshes last_seen.
func (r *SessionRepo) Ensure(sid string) error {
	_, err := r.db.Exec(`
	  INSERT INTO sessions(id,last_seen) VALUES(?,CURRENT_TIMESTAMP)
	  ON CONFLICT(id) DO UPDATE SET last_seen=CURRENT_TIMESTAMP
	`, sid)
	return err
}

// BindCustomer records the logged-in customer for this session,
// overwriting any previously bound identity.
func (r *SessionRepo) BindCustomer(sid, email string) error {
	_, err := r.db.Exec(`
	  INSERT INTO sessions(id,customer_email,last_seen) VALUES(?,?,CURRENT_TIMESTAMP)
	  ON CONFLICT(id) DO UPDATE SET customer_email=excluded.customer_email,last_seen=CURRENT_TIMESTAMP
	`, sid, email)
	return err
}

// CustomerEmail returns the bound identity, or "" when the session is
// anonymous or unknown.
func (r *SessionRepo) CustomerEmail(sid string) (string, error) {
	var email sql.NullString
	err := r.db.Get(&email, `SELECT customer_email FROM sessions WHERE id=?`, sid)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return email.String, nil
}

func (r *SessionRepo) AppendCartEntry(sid string, melonID int) error {
	if err := r.Ensure(sid); err != nil {
		return err
	}
	_, err := r.db.Exec(`INSERT INTO cart_entries(session_id,melon_id) VALUES(?,?)`, sid, melonID)
	return err
}

// CartMelonIDs returns every entry for the session in add order.
// An absent cart reads as an empty slice.
func (r *SessionRepo) CartMelonIDs(sid string) ([]int, error) {
	ids := []int{}
	err := r.db.Select(&ids, `SELECT melon_id FROM cart_entries WHERE session_id=? ORDER BY id`, sid)
	return ids, err
}

func (r *SessionRepo) PushFlash(sid, message string) error {
	if err := r.Ensure(sid); err != nil {
		return err
	}
	_, err := r.db.Exec(`INSERT INTO flashes(session_id,message) VALUES(?,?)`, sid, message)
	return err
}

// DrainFlashes returns all queued messages in enqueue order and empties
// the queue in the same transaction.
func (r *SessionRepo) DrainFlashes(sid string) ([]string, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	msgs := []string{}
	if err := tx.Select(&msgs, `SELECT message FROM flashes WHERE session_id=? ORDER BY id`, sid); err != nil {
		return nil, err
	}
	if _, err := tx.Exec(`DELETE FROM flashes WHERE session_id=?`, sid); err != nil {
		return nil, err
	}
	return msgs, tx.Commit()
}
