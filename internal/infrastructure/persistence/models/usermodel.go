package models

// UserModel is the persistence model for workshop staff accounts. Deleting a
// user detaches them from their assigned tickets instead of removing the
// tickets, so the repair history stays intact.
type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:100;not null"`
	Email        string `gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:20;not null;index"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`

	AssignedServices []ServiceModel `gorm:"foreignKey:TechnicianID;constraint:OnDelete:SET NULL"`
}

func (UserModel) TableName() string {
	return "users"
}
