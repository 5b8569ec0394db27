package models

// PurchaseModel is the persistence model for supplier stock orders. Deleting
// a purchase cascades to its line items.
type PurchaseModel struct {
	ID             uint    `gorm:"primaryKey"`
	PurchaseNumber string  `gorm:"uniqueIndex;size:50;not null"`
	SupplierName   string  `gorm:"size:100;not null;index"`
	UserID         uint    `gorm:"not null;index"`
	TotalAmount    float64 `gorm:"type:decimal(12,2);not null"`
	Status         string  `gorm:"size:20;not null;index"`
	PurchaseDate   int64   `gorm:"not null;index"`
	ReceivedAt     *int64
	Notes          string `gorm:"type:text"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`

	Items []PurchaseItemModel `gorm:"foreignKey:PurchaseID;constraint:OnDelete:CASCADE"`
}

func (PurchaseModel) TableName() string {
	return "purchases"
}

// PurchaseItemModel records one ordered product line. UnitPrice is the
// supplier's price, entered by the purchasing user.
type PurchaseItemModel struct {
	ID         uint    `gorm:"primaryKey"`
	PurchaseID uint    `gorm:"not null;index"`
	ProductID  uint    `gorm:"not null;index"`
	Quantity   int     `gorm:"not null"`
	UnitPrice  float64 `gorm:"type:decimal(12,2);not null"`
	TotalPrice float64 `gorm:"type:decimal(12,2);not null"`
	CreatedAt  int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (PurchaseItemModel) TableName() string {
	return "purchase_items"
}
