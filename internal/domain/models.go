package domain

type Melon struct {
	ID          int     `db:"id"`
	Name        string  `db:"name"`
	Price       float64 `db:"price"`
	Qty         int     `db:"qty"`
	ImageURL    string  `db:"image_url"`
	Description string  `db:"description"`
}

type Customer struct {
	Email     string `db:"email"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Hash      string `db:"password_hash"`
}
