package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bengkellab/bengkel/internal/shared/logger"
)

// Generator handles creation of new migration file pairs.
type Generator struct {
	scriptsPath string
	logger      logger.Interface
}

// NewGenerator creates a new migration generator.
func NewGenerator(scriptsPath string) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      logger.NewLogger().With("component", "migration.generator"),
	}
}

// CreateMigration creates a new migration file pair (up and down).
func (g *Generator) CreateMigration(name string) error {
	g.logger.Infow("creating new migration", "name", name)

	timestamp := time.Now().Format("20060102150405")

	upFileName := fmt.Sprintf("%s_%s.up.sql", timestamp, name)
	downFileName := fmt.Sprintf("%s_%s.down.sql", timestamp, name)

	upFilePath := filepath.Join(g.scriptsPath, upFileName)
	downFilePath := filepath.Join(g.scriptsPath, downFileName)

	if err := os.MkdirAll(g.scriptsPath, 0755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}

	if err := g.writeFile(upFilePath, g.upTemplate(name)); err != nil {
		return fmt.Errorf("failed to create up migration file: %w", err)
	}

	if err := g.writeFile(downFilePath, g.downTemplate(name)); err != nil {
		return fmt.Errorf("failed to create down migration file: %w", err)
	}

	g.logger.Infow("migration files created successfully",
		"up_file", upFilePath,
		"down_file", downFilePath)

	return nil
}

func (g *Generator) writeFile(filePath, content string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(content)
	return err
}

func (g *Generator) upTemplate(name string) string {
	return fmt.Sprintf(`-- Migration: %s
-- Created: %s

-- Add your SQL statements here
-- Example:
-- ALTER TABLE services ADD COLUMN warranty_until BIGINT NULL;

`, name, time.Now().Format("2006-01-02 15:04:05"))
}

func (g *Generator) downTemplate(name string) string {
	return fmt.Sprintf(`-- Rollback Migration: %s
-- Created: %s

-- Add your rollback SQL statements here
-- Example:
-- ALTER TABLE services DROP COLUMN warranty_until;

`, name, time.Now().Format("2006-01-02 15:04:05"))
}
