package product

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listProductsQuery = `
		SELECT product_id, product_name, description, unit, price, actual_price, image_urls, out_of_stock
		FROM products
		ORDER BY product_name
	`
	getProductByIDQuery = `
		SELECT product_id, product_name, description, unit, price, actual_price, image_urls, out_of_stock
		FROM products
		WHERE product_id = $1
	`
	insertProductQuery = `
		INSERT INTO products (product_name, description, unit, price, actual_price, image_urls, out_of_stock)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING product_id
	`
	updateProductQuery = `
		UPDATE products
		SET product_name = $1,
			description = $2,
			unit = $3,
			price = $4,
			actual_price = $5,
			image_urls = $6,
			out_of_stock = $7
		WHERE product_id = $8
	`
	deleteProductQuery = `DELETE FROM products WHERE product_id = $1`
	countProductsQuery = `SELECT COUNT(*) FROM products`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Product {
	rows, err := r.db.Query(listProductsQuery)
	if err != nil {
		return []Product{}
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Unit, &p.Price, &p.ActualPrice, pq.Array(&p.ImageURLs), &p.OutOfStock); err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	var p Product
	err := r.db.QueryRow(getProductByIDQuery, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Unit, &p.Price, &p.ActualPrice, pq.Array(&p.ImageURLs), &p.OutOfStock,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	var id int
	err := r.db.QueryRow(insertProductQuery,
		p.Name,
		p.Description,
		p.Unit,
		p.Price,
		p.ActualPrice,
		pq.Array(p.ImageURLs),
		p.OutOfStock,
	).Scan(&id)
	if err != nil {
		return Product{}, err
	}
	p.ID = id
	return p, nil
}

func (r *PostgresRepository) Update(id int, p Product) (Product, error) {
	result, err := r.db.Exec(updateProductQuery,
		p.Name,
		p.Description,
		p.Unit,
		p.Price,
		p.ActualPrice,
		pq.Array(p.ImageURLs),
		p.OutOfStock,
		id,
	)
	if err != nil {
		return Product{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Product{}, err
	}
	if affected == 0 {
		return Product{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteProductQuery, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(countProductsQuery).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
