package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed catalog if DB is empty
	if err := seedMelons(db); err != nil {
		return nil, err
	}
	// Ensure demo customers exist (idempotent; safe to run every start)
	if err := seedCustomers(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Catalog (read-only after seed)
CREATE TABLE IF NOT EXISTS melons(
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  price NUMERIC NOT NULL CHECK (price >= 0),
  qty INTEGER NOT NULL DEFAULT 0 CHECK (qty >= 0),
  image_url TEXT,
  description TEXT
);

-- Customers (read-only after seed)
CREATE TABLE IF NOT EXISTS customers(
  email TEXT PRIMARY KEY,
  first_name TEXT NOT NULL,
  last_name TEXT NOT NULL,
  password_hash TEXT NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_customers_email ON customers(LOWER(email));

-- Sessions (id is the 'sid' cookie value)
CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,
  customer_email TEXT NULL REFERENCES customers(email) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen TEXT
);

-- Cart entries: one row per add, rowid preserves add order
CREATE TABLE IF NOT EXISTS cart_entries(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
  melon_id INTEGER NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_cart_entries_session ON cart_entries(session_id);

-- One-shot flash messages, drained by the next rendered page
CREATE TABLE IF NOT EXISTS flashes(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
  message TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_flashes_session ON flashes(session_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedMelons(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM melons`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo melons")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO melons(id,name,price,qty,image_url,description) VALUES
	  (1,'Watermelon',2.50,30,'/static/img/watermelon.jpg','Classic summer watermelon. Crisp and sweet.'),
	  (2,'Cantaloupe',0.99,20,'/static/img/cantaloupe.jpg','Netted rind, orange flesh, floral aroma.'),
	  (3,'Honeydew',1.20,15,'/static/img/honeydew.jpg','Pale green flesh with a mild honey flavor.'),
	  (4,'Crenshaw',2.00,9,'/static/img/crenshaw.jpg','Salmon flesh, spicy-sweet. A connoisseur melon.'),
	  (5,'Casaba',2.50,4,'/static/img/casaba.jpg','Wrinkled golden rind; subtle cucumber notes.'),
	  (6,'Canary',1.75,12,'/static/img/canary.jpg','Bright yellow rind, tangy white flesh.'),
	  (7,'Christmas Melon',4.50,6,'/static/img/christmas.jpg','Keeps into winter; sweet near the seed cavity.'),
	  (8,'Sharlyn',6.00,2,'/static/img/sharlyn.jpg','Rare aromatic melon. Limited supply.')`)

	return tx.Commit()
}

// seedCustomers ensures the demo customers exist (idempotent).
func seedCustomers(db *sqlx.DB) error {
	type cust struct {
		Email, First, Last, Hash string
	}
	mk := func(email, first, last, raw string) cust {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return cust{Email: email, First: first, Last: last, Hash: string(h)}
	}

	customers := []cust{
		mk("sadie@ubermelon.com", "Sadie", "Agnew", "Passw0rd!"),
		mk("nuvi@ubermelon.com", "Nuvi", "Orta", "Passw0rd!"),
		mk("joel@ubermelon.com", "Joel", "Burton", "Passw0rd!"),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range customers {
		if _, err := tx.Exec(`
			INSERT INTO customers(email,first_name,last_name,password_hash)
			VALUES(?,?,?,?)
			ON CONFLICT(email) DO NOTHING
		`, x.Email, x.First, x.Last, x.Hash); err != nil {
			return err
		}
	}

	return tx.Commit()
}
