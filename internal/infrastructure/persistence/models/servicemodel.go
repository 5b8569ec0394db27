package models

// ServiceModel is the persistence model for repair tickets. Deleting a ticket
// cascades to its part line items.
type ServiceModel struct {
	ID               uint    `gorm:"primaryKey"`
	ServiceNumber    string  `gorm:"uniqueIndex;size:50;not null"`
	CustomerID       uint    `gorm:"not null;index"`
	TechnicianID     *uint   `gorm:"index"`
	LaptopBrand      string  `gorm:"size:100;not null"`
	LaptopModel      string  `gorm:"size:100;not null"`
	LaptopSerial     string  `gorm:"size:100"`
	InitialComplaint string  `gorm:"type:text;not null"`
	Diagnosis        string  `gorm:"type:text"`
	RepairNotes      string  `gorm:"type:text"`
	Status           string  `gorm:"size:30;not null;index"`
	ServiceCost      float64 `gorm:"type:decimal(12,2);not null;default:0"`
	PartsCost        float64 `gorm:"type:decimal(12,2);not null;default:0"`
	TotalCost        float64 `gorm:"type:decimal(12,2);not null;default:0"`
	CustomerApproved bool    `gorm:"not null;default:false"`
	ReceivedAt       int64   `gorm:"not null;index"`
	CompletedAt      *int64
	CreatedAt        int64 `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt        int64 `gorm:"autoUpdateTime:milli;not null"`

	Parts []ServicePartModel `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}

func (ServiceModel) TableName() string {
	return "services"
}

// ServicePartModel records a catalog part consumed by a repair. UnitPrice is
// the product price snapshotted at the time the part was added.
type ServicePartModel struct {
	ID         uint    `gorm:"primaryKey"`
	ServiceID  uint    `gorm:"not null;index"`
	ProductID  uint    `gorm:"not null;index"`
	Quantity   int     `gorm:"not null"`
	UnitPrice  float64 `gorm:"type:decimal(12,2);not null"`
	TotalPrice float64 `gorm:"type:decimal(12,2);not null"`
	CreatedAt  int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (ServicePartModel) TableName() string {
	return "service_parts"
}
