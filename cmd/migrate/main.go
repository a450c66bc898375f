package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	"github.com/pageza/calorie-counter/backend/internal/database"
)

const createMigrationsTable = `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(32) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

func main() {
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	migrationsDir := flag.String("dir", "migrations", "Directory holding the SQL migrations")
	flag.Parse()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(createMigrationsTable); err != nil {
		log.Fatalf("failed to create migrations table: %v", err)
	}

	if *rollback {
		name, err := rollbackLast(db, *migrationsDir)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Successfully rolled back migration: %s\n", name)
		return
	}

	files, err := database.MigrationFiles(*migrationsDir)
	if err != nil {
		log.Fatal(err)
	}

	for _, file := range files {
		version := database.MigrationVersion(file)

		var applied bool
		if err := db.QueryRow("SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)", version).Scan(&applied); err != nil {
			log.Fatalf("failed to check migration status: %v", err)
		}
		if applied {
			fmt.Printf("Migration already applied: %s\n", file)
			continue
		}

		path := filepath.Join(*migrationsDir, file)
		fmt.Printf("Applying migration: %s\n", path)

		content, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("failed to read migration %s: %v", file, err)
		}

		err = inTx(db, func(tx *sql.Tx) error {
			if _, err := tx.Exec(string(content)); err != nil {
				return fmt.Errorf("failed to apply migration %s: %w", file, err)
			}
			if _, err := tx.Exec("INSERT INTO schema_migrations (version, name) VALUES ($1, $2)", version, file); err != nil {
				return fmt.Errorf("failed to record migration: %w", err)
			}
			return nil
		})
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Successfully applied migration: %s\n", file)
	}

	fmt.Println("All migrations applied successfully.")
}

func rollbackLast(db *sql.DB, dir string) (string, error) {
	var version, name string
	err := db.QueryRow(`
		SELECT version, name
		FROM schema_migrations
		ORDER BY version DESC
		LIMIT 1
	`).Scan(&version, &name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", errors.New("no migrations to rollback")
	}
	if err != nil {
		return "", fmt.Errorf("failed to get last migration: %w", err)
	}

	rollbackPath := filepath.Join(dir, database.RollbackFile(name))
	content, err := os.ReadFile(rollbackPath)
	if err != nil {
		return "", fmt.Errorf("failed to read rollback file %s: %w", rollbackPath, err)
	}

	err = inTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(string(content)); err != nil {
			return fmt.Errorf("failed to execute rollback: %w", err)
		}
		if _, err := tx.Exec("DELETE FROM schema_migrations WHERE version = $1", version); err != nil {
			return fmt.Errorf("failed to remove migration record: %w", err)
		}
		return nil
	})
	return name, err
}

func inTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
