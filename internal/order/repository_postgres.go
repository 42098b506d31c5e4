package order

import (
	"database/sql"
	"encoding/json"
	"time"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertOrderQuery = `
		INSERT INTO orders (customer, items, subtotal, delivery_charge, total, delivery_type, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING order_id, created_at
	`
	getOrderByIDQuery = `
		SELECT order_id, customer, items, subtotal, delivery_charge, total, delivery_type, status, created_at
		FROM orders
		WHERE order_id = $1
	`
	listOrdersQuery = `
		SELECT order_id, customer, items, subtotal, delivery_charge, total, delivery_type, status, created_at
		FROM orders
		ORDER BY created_at DESC
	`
	updateOrderStatusQuery = `UPDATE orders SET status = $1 WHERE order_id = $2`
	totalsSinceQuery       = `SELECT COUNT(*), COALESCE(SUM(total), 0) FROM orders WHERE created_at >= $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create relies on the database default for created_at, so the creation
// timestamp is server-assigned and consistent across clients.
func (r *PostgresRepository) Create(ord Order) (Order, error) {
	customerJSON, err := json.Marshal(ord.Customer)
	if err != nil {
		return Order{}, err
	}
	itemsJSON, err := json.Marshal(ord.Items)
	if err != nil {
		return Order{}, err
	}

	err = r.db.QueryRow(insertOrderQuery,
		customerJSON, itemsJSON, ord.Subtotal, ord.DeliveryCharge, ord.Total, string(ord.DeliveryType), string(ord.Status),
	).Scan(&ord.ID, &ord.CreatedAt)
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) GetByID(id int) (Order, error) {
	ord, err := scanOrder(r.db.QueryRow(getOrderByIDQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) List() ([]Order, error) {
	rows, err := r.db.Query(listOrdersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, ord)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) UpdateStatus(id int, status Status) (Order, error) {
	result, err := r.db.Exec(updateOrderStatusQuery, string(status), id)
	if err != nil {
		return Order{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Order{}, err
	}
	if affected == 0 {
		return Order{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) TotalsSince(t time.Time) (int, float64, error) {
	var count int
	var earnings float64
	if err := r.db.QueryRow(totalsSinceQuery, t).Scan(&count, &earnings); err != nil {
		return 0, 0, err
	}
	return count, earnings, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (Order, error) {
	var ord Order
	var customerJSON, itemsJSON []byte
	var deliveryType, status string
	err := row.Scan(&ord.ID, &customerJSON, &itemsJSON, &ord.Subtotal, &ord.DeliveryCharge, &ord.Total, &deliveryType, &status, &ord.CreatedAt)
	if err != nil {
		return Order{}, err
	}
	if err := json.Unmarshal(customerJSON, &ord.Customer); err != nil {
		return Order{}, err
	}
	if err := json.Unmarshal(itemsJSON, &ord.Items); err != nil {
		return Order{}, err
	}
	ord.DeliveryType = DeliveryType(deliveryType)
	ord.Status = Status(status)
	return ord, nil
}
