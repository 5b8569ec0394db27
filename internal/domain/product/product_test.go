package product

import (
	"testing"
)

func TestNewProduct(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		prodName string
		category Category
		price    float64
		cost     float64
		stock    int
		minStock int
		wantErr  bool
	}{
		{
			name:     "valid laptop part",
			code:     "RM01",
			prodName: "8GB DDR4 SODIMM",
			category: CategoryLaptopPart,
			price:    450000,
			cost:     380000,
			stock:    10,
			minStock: 3,
			wantErr:  false,
		},
		{
			name:     "empty code",
			code:     "",
			prodName: "8GB DDR4 SODIMM",
			category: CategoryLaptopPart,
			wantErr:  true,
		},
		{
			name:     "empty name",
			code:     "RM01",
			prodName: "",
			category: CategoryLaptopPart,
			wantErr:  true,
		},
		{
			name:     "invalid category",
			code:     "RM01",
			prodName: "8GB DDR4 SODIMM",
			category: Category("peripheral"),
			wantErr:  true,
		},
		{
			name:     "negative price",
			code:     "RM01",
			prodName: "8GB DDR4 SODIMM",
			category: CategoryLaptopPart,
			price:    -1,
			wantErr:  true,
		},
		{
			name:     "negative stock",
			code:     "RM01",
			prodName: "8GB DDR4 SODIMM",
			category: CategoryLaptopPart,
			stock:    -1,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProduct(tt.code, tt.prodName, "", tt.category, tt.price, tt.cost, tt.stock, tt.minStock)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Status() != StatusActive {
				t.Errorf("new product should default to active, got %s", p.Status())
			}
		})
	}
}

func TestProduct_IsLowStock(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		minStock int
		want     bool
	}{
		{"below minimum", 2, 10, true},
		{"equal to minimum is low", 10, 10, true},
		{"above minimum", 11, 10, false},
		{"zero stock zero minimum", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProduct("RM01", "8GB DDR4 SODIMM", "", CategoryLaptopPart, 450000, 380000, tt.stock, tt.minStock)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := p.IsLowStock(); got != tt.want {
				t.Errorf("IsLowStock() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProduct_DecreaseStock(t *testing.T) {
	p, err := NewProduct("SSD01", "512GB NVMe SSD", "", CategoryLaptopPart, 900000, 750000, 5, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := p.DecreaseStock(3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.StockQuantity() != 2 {
		t.Errorf("stock = %d, want 2", p.StockQuantity())
	}

	if err := p.DecreaseStock(3); err == nil {
		t.Error("expected insufficient stock error")
	}
	if err := p.DecreaseStock(0); err == nil {
		t.Error("expected quantity validation error")
	}
}

func TestProduct_IncreaseStock(t *testing.T) {
	p, err := NewProduct("SSD01", "512GB NVMe SSD", "", CategoryLaptopPart, 900000, 750000, 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := p.IncreaseStock(10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.StockQuantity() != 11 {
		t.Errorf("stock = %d, want 11", p.StockQuantity())
	}

	if err := p.IncreaseStock(0); err == nil {
		t.Error("expected quantity validation error")
	}
}

func TestProduct_UpdateStockLevels(t *testing.T) {
	p, err := NewProduct("KB01", "Laptop keyboard", "", CategoryLaptopPart, 250000, 180000, 4, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := p.UpdateStockLevels(0, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.IsLowStock() {
		t.Error("product at zero stock should be low")
	}

	if err := p.UpdateStockLevels(-1, 5); err == nil {
		t.Error("expected negative stock error")
	}
}
