package models

// CustomerModel is the persistence model for workshop customers. Deleting a
// customer cascades to their service tickets and sales.
type CustomerModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null;index"`
	Email     string `gorm:"size:100"`
	Phone     string `gorm:"size:20;not null;index"`
	Address   string `gorm:"type:text"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`

	Services []ServiceModel `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Sales    []SaleModel    `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

func (CustomerModel) TableName() string {
	return "customers"
}
