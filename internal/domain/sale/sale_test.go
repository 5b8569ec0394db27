package sale

import "testing"

func mustItem(t *testing.T, productID uint, qty int, price float64) *Item {
	t.Helper()
	item, err := NewItem(productID, qty, price)
	if err != nil {
		t.Fatalf("NewItem() error = %v", err)
	}
	return item
}

func TestNewSale(t *testing.T) {
	tests := []struct {
		name         string
		customerID   uint
		salesUserID  uint
		items        func(t *testing.T) []*Item
		tax          float64
		discount     float64
		wantErr      bool
		wantSubtotal float64
		wantTotal    float64
	}{
		{
			name:        "single item no tax",
			customerID:  1,
			salesUserID: 2,
			items: func(t *testing.T) []*Item {
				return []*Item{mustItem(t, 1, 2, 10000)}
			},
			wantSubtotal: 20000,
			wantTotal:    20000,
		},
		{
			name:        "tax and discount applied",
			customerID:  1,
			salesUserID: 2,
			items: func(t *testing.T) []*Item {
				return []*Item{
					mustItem(t, 1, 1, 100000),
					mustItem(t, 2, 3, 5000),
				}
			},
			tax:          11500,
			discount:     6500,
			wantSubtotal: 115000,
			wantTotal:    120000,
		},
		{
			name:        "no items",
			customerID:  1,
			salesUserID: 2,
			items:       func(t *testing.T) []*Item { return nil },
			wantErr:     true,
		},
		{
			name:        "missing customer",
			customerID:  0,
			salesUserID: 2,
			items: func(t *testing.T) []*Item {
				return []*Item{mustItem(t, 1, 1, 1000)}
			},
			wantErr: true,
		},
		{
			name:        "discount exceeds total",
			customerID:  1,
			salesUserID: 2,
			items: func(t *testing.T) []*Item {
				return []*Item{mustItem(t, 1, 1, 1000)}
			},
			discount: 5000,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSale(tt.customerID, tt.salesUserID, tt.items(t), tt.tax, tt.discount, "")
			if (err != nil) != tt.wantErr {
				t.Errorf("NewSale() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				return
			}
			if s.Subtotal() != tt.wantSubtotal {
				t.Errorf("Subtotal() = %v, want %v", s.Subtotal(), tt.wantSubtotal)
			}
			if s.TotalAmount() != tt.wantTotal {
				t.Errorf("TotalAmount() = %v, want %v", s.TotalAmount(), tt.wantTotal)
			}
			if s.TotalAmount() != s.Subtotal()+s.TaxAmount()-s.DiscountAmount() {
				t.Error("total must equal subtotal + tax - discount")
			}
			if !s.PaymentStatus().IsPending() {
				t.Errorf("PaymentStatus() = %s, want pending", s.PaymentStatus())
			}
		})
	}
}

func TestSale_MarkPaid(t *testing.T) {
	s, err := NewSale(1, 2, []*Item{mustItem(t, 1, 1, 1000)}, 0, 0, "")
	if err != nil {
		t.Fatalf("NewSale() error = %v", err)
	}

	if err := s.MarkPaid(); err != nil {
		t.Fatalf("MarkPaid() error = %v", err)
	}
	if !s.PaymentStatus().IsPaid() {
		t.Error("expected paid status")
	}

	if err := s.MarkCancelled(); err == nil {
		t.Error("MarkCancelled() should fail on a paid sale")
	}
}

func TestSale_MarkCancelled(t *testing.T) {
	s, err := NewSale(1, 2, []*Item{mustItem(t, 1, 1, 1000)}, 0, 0, "")
	if err != nil {
		t.Fatalf("NewSale() error = %v", err)
	}

	if err := s.MarkCancelled(); err != nil {
		t.Fatalf("MarkCancelled() error = %v", err)
	}
	if !s.PaymentStatus().IsCancelled() {
		t.Error("expected cancelled status")
	}

	if err := s.MarkPaid(); err == nil {
		t.Error("MarkPaid() should fail on a cancelled sale")
	}
}

func TestNewItem(t *testing.T) {
	item := mustItem(t, 3, 4, 2500)
	if item.TotalPrice() != 10000 {
		t.Errorf("TotalPrice() = %v, want 10000", item.TotalPrice())
	}

	if _, err := NewItem(0, 1, 100); err == nil {
		t.Error("NewItem() should reject zero product ID")
	}
	if _, err := NewItem(1, 0, 100); err == nil {
		t.Error("NewItem() should reject zero quantity")
	}
	if _, err := NewItem(1, 1, -1); err == nil {
		t.Error("NewItem() should reject negative price")
	}
}
