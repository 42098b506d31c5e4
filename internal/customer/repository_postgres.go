package customer

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	upsertCustomerQuery = `
		INSERT INTO customers (phone, name, address)
		VALUES ($1, $2, $3)
		ON CONFLICT (phone) DO UPDATE SET name = EXCLUDED.name, address = EXCLUDED.address
	`
	getCustomerQuery    = `SELECT phone, name, address FROM customers WHERE phone = $1`
	listCustomersQuery  = `SELECT phone, name, address FROM customers ORDER BY name`
	countCustomersQuery = `SELECT COUNT(*) FROM customers`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(c Customer) error {
	_, err := r.db.Exec(upsertCustomerQuery, c.Phone, c.Name, c.Address)
	return err
}

func (r *PostgresRepository) GetByPhone(phone string) (Customer, error) {
	var c Customer
	err := r.db.QueryRow(getCustomerQuery, phone).Scan(&c.Phone, &c.Name, &c.Address)
	if err != nil {
		if err == sql.ErrNoRows {
			return Customer{}, ErrNotFound
		}
		return Customer{}, err
	}
	return c, nil
}

func (r *PostgresRepository) List() []Customer {
	rows, err := r.db.Query(listCustomersQuery)
	if err != nil {
		return []Customer{}
	}
	defer rows.Close()

	out := make([]Customer, 0)
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.Phone, &c.Name, &c.Address); err != nil {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (r *PostgresRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(countCustomersQuery).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
