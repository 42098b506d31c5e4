package settings

import "database/sql"

// settingKey is the fixed key of the one delivery settings row.
const settingKey = "delivery"

type PostgresRepository struct {
	db *sql.DB
}

const (
	getSettingQuery = `SELECT is_free_delivery FROM settings WHERE key = $1`
	setSettingQuery = `
		INSERT INTO settings (key, is_free_delivery)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET is_free_delivery = EXCLUDED.is_free_delivery
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get() (DeliverySetting, error) {
	var s DeliverySetting
	err := r.db.QueryRow(getSettingQuery, settingKey).Scan(&s.IsFreeDelivery)
	if err != nil {
		if err == sql.ErrNoRows {
			return DeliverySetting{}, nil
		}
		return DeliverySetting{}, err
	}
	return s, nil
}

func (r *PostgresRepository) Set(s DeliverySetting) error {
	_, err := r.db.Exec(setSettingQuery, settingKey, s.IsFreeDelivery)
	return err
}
