// Package seeds populates a fresh database with the records a workshop needs
// on day one.
package seeds

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/bengkellab/bengkel/internal/infrastructure/persistence/models"
	"github.com/bengkellab/bengkel/internal/shared/authorization"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

// SeedAdminUser creates the initial administrator account if no user with the
// given email exists. The password should be changed after first login.
func SeedAdminUser(db *gorm.DB, email, password string, bcryptCost int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.UserModel{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hash),
		Role:         string(authorization.RoleAdministrator),
		IsActive:     true,
	}

	if err := db.FirstOrCreate(&admin, models.UserModel{Email: email}).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	logger.NewLogger().Infow("admin user seeded", "email", email)
	return nil
}

// SeedDemoStaff creates one technician and one sales account for trying the
// application out. They share the administrator's initial password.
func SeedDemoStaff(db *gorm.DB, password string, bcryptCost int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash staff password: %w", err)
	}

	staff := []models.UserModel{
		{
			Name:         "Demo Technician",
			Email:        "technician@bengkel.local",
			PasswordHash: string(hash),
			Role:         string(authorization.RoleTechnician),
			IsActive:     true,
		},
		{
			Name:         "Demo Sales",
			Email:        "sales@bengkel.local",
			PasswordHash: string(hash),
			Role:         string(authorization.RoleSales),
			IsActive:     true,
		},
	}

	for _, member := range staff {
		if err := db.FirstOrCreate(&member, models.UserModel{Email: member.Email}).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", member.Email, err)
		}
	}

	return nil
}

// SeedSampleProducts creates a starter catalog of common laptop repair stock.
// Existing codes are left untouched.
func SeedSampleProducts(db *gorm.DB) error {
	products := []models.ProductModel{
		{
			Code:          "RAM-DDR4-8G",
			Name:          "DDR4 SODIMM 8GB",
			Description:   "8GB DDR4-3200 laptop memory module",
			Category:      "laptop_part",
			Price:         450000,
			Cost:          350000,
			StockQuantity: 10,
			MinStockLevel: 3,
			Status:        "active",
		},
		{
			Code:          "SSD-NVME-512",
			Name:          "NVMe SSD 512GB",
			Description:   "M.2 NVMe solid state drive, 512GB",
			Category:      "laptop_part",
			Price:         850000,
			Cost:          680000,
			StockQuantity: 8,
			MinStockLevel: 2,
			Status:        "active",
		},
		{
			Code:          "KB-UNIV-ID",
			Name:          "Universal Laptop Keyboard",
			Description:   "Replacement keyboard, Indonesian layout",
			Category:      "laptop_part",
			Price:         250000,
			Cost:          175000,
			StockQuantity: 5,
			MinStockLevel: 2,
			Status:        "active",
		},
		{
			Code:          "TP-SYR-4G",
			Name:          "Thermal Paste 4g",
			Description:   "Syringe of thermal compound for CPU and GPU repaste",
			Category:      "consumable",
			Price:         35000,
			Cost:          20000,
			StockQuantity: 20,
			MinStockLevel: 5,
			Status:        "active",
		},
		{
			Code:          "MOUSE-WL-01",
			Name:          "Wireless Mouse",
			Description:   "2.4GHz wireless optical mouse",
			Category:      "accessory",
			Price:         120000,
			Cost:          80000,
			StockQuantity: 15,
			MinStockLevel: 5,
			Status:        "active",
		},
	}

	for _, product := range products {
		if err := db.FirstOrCreate(&product, models.ProductModel{Code: product.Code}).Error; err != nil {
			return fmt.Errorf("failed to seed product %s: %w", product.Code, err)
		}
	}

	return nil
}
