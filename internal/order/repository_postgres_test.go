package order

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresCreate_ServerAssignsIDAndTimestamp(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	created := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"order_id", "created_at"}).AddRow(7, created))

	ord, err := repo.Create(Order{
		Subtotal: 170, DeliveryCharge: 30, Total: 200,
		DeliveryType: DeliveryTypeDelivery, Status: StatusNew,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if ord.ID != 7 {
		t.Fatalf("expected id 7, got %d", ord.ID)
	}
	if !ord.CreatedAt.Equal(created) {
		t.Fatalf("expected server timestamp, got %v", ord.CreatedAt)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresUpdateStatus_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE orders SET status").WithArgs("Processing", 99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if _, err := repo.UpdateStatus(99, StatusProcessing); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresList_DecodesJSONColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	customerJSON := `{"phone":"9876543210","name":"Lakshmi","address":"12 Beach Road"}`
	itemsJSON := `[{"productId":1,"productName":"Mango","unit":"kg","price":100,"imageUrls":[],"quantity":500}]`
	rows := sqlmock.NewRows([]string{"order_id", "customer", "items", "subtotal", "delivery_charge", "total", "delivery_type", "status", "created_at"}).
		AddRow(1, []byte(customerJSON), []byte(itemsJSON), 50.0, 30.0, 80.0, "delivery", "New", time.Now())
	mock.ExpectQuery("SELECT order_id, customer").WillReturnRows(rows)

	orders, err := repo.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	ord := orders[0]
	if ord.Customer.Name != "Lakshmi" || len(ord.Items) != 1 || ord.Items[0].Quantity != 500 {
		t.Fatalf("json columns not decoded: %+v", ord)
	}
	if ord.Status != StatusNew || !ord.Status.IsOpen() {
		t.Fatalf("unexpected status %q", ord.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
