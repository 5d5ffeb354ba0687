package domain

type User struct {
	ID             int64   `db:"id"`
	Name           string  `db:"name"`
	Email          string  `db:"email"`
	HashedPassword string  `db:"hashed_password"`
	ExternalID     string  `db:"external_id"`
	IsAdmin        bool    `db:"is_admin"`
	AddressLine    *string `db:"address_line"`
	AddressCity    *string `db:"address_city"`
	AddressZip     *string `db:"address_zip"`
	CreatedAt      int64   `db:"created_at"`
	UpdatedAt      int64   `db:"updated_at"`
	DeletedAt      *int64  `db:"deleted_at"`
}
