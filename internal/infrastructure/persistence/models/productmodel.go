package models

// ProductModel is the persistence model for catalog items. Deleting a product
// cascades to every line item that references it: service parts, sale items,
// and purchase items.
type ProductModel struct {
	ID            uint    `gorm:"primaryKey"`
	Code          string  `gorm:"uniqueIndex;size:50;not null"`
	Name          string  `gorm:"size:100;not null;index"`
	Description   string  `gorm:"type:text"`
	Category      string  `gorm:"size:20;not null;index"`
	Price         float64 `gorm:"type:decimal(12,2);not null"`
	Cost          float64 `gorm:"type:decimal(12,2);not null"`
	StockQuantity int     `gorm:"not null;default:0"`
	MinStockLevel int     `gorm:"not null;default:0"`
	Status        string  `gorm:"size:20;not null;index"`
	CreatedAt     int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64   `gorm:"autoUpdateTime:milli;not null"`

	ServiceParts  []ServicePartModel  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	SaleItems     []SaleItemModel     `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	PurchaseItems []PurchaseItemModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (ProductModel) TableName() string {
	return "products"
}
