package models

// SaleModel is the persistence model for over-the-counter sales. Deleting a
// sale cascades to its line items.
type SaleModel struct {
	ID             uint    `gorm:"primaryKey"`
	InvoiceNumber  string  `gorm:"uniqueIndex;size:50;not null"`
	CustomerID     uint    `gorm:"not null;index"`
	SalesUserID    uint    `gorm:"not null;index"`
	Subtotal       float64 `gorm:"type:decimal(12,2);not null"`
	TaxAmount      float64 `gorm:"type:decimal(12,2);not null;default:0"`
	DiscountAmount float64 `gorm:"type:decimal(12,2);not null;default:0"`
	TotalAmount    float64 `gorm:"type:decimal(12,2);not null"`
	PaymentStatus  string  `gorm:"size:20;not null;index"`
	SaleDate       int64   `gorm:"not null;index"`
	Notes          string  `gorm:"type:text"`
	CreatedAt      int64   `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt      int64   `gorm:"autoUpdateTime:milli;not null"`

	Items []SaleItemModel `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
}

func (SaleModel) TableName() string {
	return "sales"
}

// SaleItemModel records one product line on an invoice. UnitPrice is the
// product price snapshotted when the sale was recorded.
type SaleItemModel struct {
	ID         uint    `gorm:"primaryKey"`
	SaleID     uint    `gorm:"not null;index"`
	ProductID  uint    `gorm:"not null;index"`
	Quantity   int     `gorm:"not null"`
	UnitPrice  float64 `gorm:"type:decimal(12,2);not null"`
	TotalPrice float64 `gorm:"type:decimal(12,2);not null"`
	CreatedAt  int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (SaleItemModel) TableName() string {
	return "sale_items"
}
