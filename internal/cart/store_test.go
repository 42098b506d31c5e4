package cart

import (
	"testing"

	"github.com/greenbasket/grocery-backend/internal/product"
)

func mango() product.Product {
	return product.Product{ID: 1, Name: "Mango", Unit: "kg", Price: 100}
}

func banana() product.Product {
	return product.Product{ID: 2, Name: "Banana", Unit: "dozen", Price: 60}
}

func TestAdd_MergesDuplicateProducts(t *testing.T) {
	s := NewStore()
	s.Add("t1", newLineItem(mango(), 500))
	items := s.Add("t1", newLineItem(mango(), 250))

	if len(items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(items))
	}
	if items[0].Quantity != 750 {
		t.Fatalf("expected quantity 750, got %d", items[0].Quantity)
	}
}

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	s := NewStore()
	s.Add("t1", newLineItem(banana(), 1))
	items := s.Add("t1", newLineItem(mango(), 500))

	if len(items) != 2 || items[0].ProductID != 2 || items[1].ProductID != 1 {
		t.Fatalf("insertion order broken: %+v", items)
	}
}

func TestUpdateQuantity_RemovesAtZeroOrBelow(t *testing.T) {
	s := NewStore()
	s.Add("t1", newLineItem(mango(), 500))
	s.Add("t1", newLineItem(banana(), 2))

	items := s.UpdateQuantity("t1", 1, 0)
	if len(items) != 1 {
		t.Fatalf("expected line removed at quantity 0, got %+v", items)
	}

	items = s.UpdateQuantity("t1", 2, -1)
	if len(items) != 0 {
		t.Fatalf("expected line removed at negative quantity, got %+v", items)
	}
}

func TestUpdateQuantity_SetsNewValue(t *testing.T) {
	s := NewStore()
	s.Add("t1", newLineItem(mango(), 500))
	items := s.UpdateQuantity("t1", 1, 1500)
	if items[0].Quantity != 1500 {
		t.Fatalf("expected quantity 1500, got %d", items[0].Quantity)
	}
}

func TestRemove_NoopWhenAbsent(t *testing.T) {
	s := NewStore()
	s.Add("t1", newLineItem(mango(), 500))
	items := s.Remove("t1", 99)
	if len(items) != 1 {
		t.Fatalf("remove of absent product must be a no-op, got %+v", items)
	}
}

func TestSubtotal(t *testing.T) {
	s := NewStore()
	s.Add("t1", newLineItem(mango(), 500)) // 100/kg * 500 g = 50
	items := s.Add("t1", newLineItem(banana(), 3))
	if got := Subtotal(items); got != 50+180 {
		t.Fatalf("expected subtotal 230, got %v", got)
	}
}

func TestStore_TokensAreIsolated(t *testing.T) {
	s := NewStore()
	s.Add("t1", newLineItem(mango(), 500))
	if items := s.Items("t2"); len(items) != 0 {
		t.Fatalf("unknown token should be an empty cart, got %+v", items)
	}
	s.Clear("t1")
	if items := s.Items("t1"); len(items) != 0 {
		t.Fatalf("clear should empty the cart, got %+v", items)
	}
}
