package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pageza/calorie-counter/backend/internal/models"
	"gorm.io/gorm"
)

const rollbackSuffix = "_rollback.sql"

// MigrationFiles lists the forward migrations in dir in apply order
func MigrationFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".sql") || strings.HasSuffix(name, rollbackSuffix) {
			continue
		}
		files = append(files, name)
	}
	sort.Strings(files)
	return files, nil
}

// RollbackFile returns the rollback script name for a forward migration
func RollbackFile(name string) string {
	return strings.TrimSuffix(name, ".sql") + rollbackSuffix
}

// MigrationVersion is the numeric prefix of a migration file name
func MigrationVersion(name string) string {
	return strings.SplitN(name, "_", 2)[0]
}

// RunMigrations executes all SQL migration files in the migrations directory
func RunMigrations(db *gorm.DB, migrationsDir string) error {
	if db.Dialector.Name() == "sqlite" {
		log.Printf("Using GORM auto-migration for SQLite")
		return db.AutoMigrate(&models.User{}, &models.Meal{})
	}

	files, err := MigrationFiles(migrationsDir)
	if err != nil {
		return err
	}

	if err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(32) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`).Error; err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	for _, file := range files {
		version := MigrationVersion(file)

		var count int64
		if err := db.Table("schema_migrations").Where("version = ?", version).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		if count > 0 {
			log.Printf("Skipping migration %s (already applied)", file)
			continue
		}

		content, err := os.ReadFile(filepath.Join(migrationsDir, file))
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(string(content)).Error; err != nil {
				return fmt.Errorf("failed to execute migration %s: %w", file, err)
			}
			if err := tx.Exec("INSERT INTO schema_migrations (version, name) VALUES (?, ?)", version, file).Error; err != nil {
				return fmt.Errorf("failed to record migration %s: %w", file, err)
			}
			return nil
		})
		if err != nil {
			return err
		}

		log.Printf("Applied migration %s", file)
	}

	return nil
}
