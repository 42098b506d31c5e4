package admin

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	getAdminByEmailQuery = `SELECT admin_id, email, password FROM admins WHERE email = $1`
	insertAdminQuery     = `INSERT INTO admins (email, password) VALUES ($1, $2) RETURNING admin_id`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByEmail(email string) (Admin, error) {
	var a Admin
	err := r.db.QueryRow(getAdminByEmailQuery, email).Scan(&a.ID, &a.Email, &a.Password)
	if err != nil {
		if err == sql.ErrNoRows {
			return Admin{}, ErrNotFound
		}
		return Admin{}, err
	}
	return a, nil
}

func (r *PostgresRepository) Create(a Admin) (Admin, error) {
	var id int
	if err := r.db.QueryRow(insertAdminQuery, a.Email, a.Password).Scan(&id); err != nil {
		return Admin{}, err
	}
	a.ID = id
	return a, nil
}
