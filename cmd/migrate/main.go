package main

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"uniformshop-be/internal/config"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var errNoDatabaseURL = errors.New("DATABASE_URL not set in environment")

// Swapped in tests.
var openDBFunc = func(url string) (*sql.DB, error) {
	return sql.Open("postgres", url)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dir string

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Apply or roll back the storefront schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dir, "dir", "./migrations", "directory holding *.sql migrations")

	withDB := func(fn func(db *sql.DB, out io.Writer, files []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			if cfg.DatabaseURL == "" {
				return errNoDatabaseURL
			}

			db, err := openDBFunc(cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("failed to connect db: %w", err)
			}
			defer db.Close()

			files, err := prepare(db, dir)
			if err != nil {
				return err
			}
			return fn(db, cmd.OutOrStdout(), files)
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply every pending migration",
			RunE:  withDB(runMigrationsUp),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the latest applied migration",
			RunE:  withDB(runMigrationsDown),
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied",
			RunE:  withDB(runStatus),
		},
	)
	return root
}

// prepare ensures the bookkeeping table exists and returns the migration
// files in apply order.
func prepare(db *sql.DB, migrationsDir string) ([]string, error) {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL DEFAULT NOW()
		);
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure schema_migrations table: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(migrationsDir, "*.sql"))
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

func isApplied(db *sql.DB, version string) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

func runMigrationsUp(db *sql.DB, out io.Writer, files []string) error {
	for _, file := range files {
		version := filepath.Base(file)

		applied, err := isApplied(db, version)
		if err != nil {
			return err
		}
		if applied {
			fmt.Fprintf(out, "⏭ Skipping already applied migration: %s\n", version)
			continue
		}

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		fmt.Fprintf(out, "🚀 Applying migration: %s\n", version)

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin migration %s: %w", version, err)
		}
		if _, err := tx.Exec(extractMigrationPart(string(content), "Up")); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("❌ Migration failed (%s): %w", version, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations (version) VALUES ($1)`, version); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration version: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %s: %w", version, err)
		}
	}
	fmt.Fprintln(out, "✅ All new migrations applied successfully.")
	return nil
}

func runMigrationsDown(db *sql.DB, out io.Writer, files []string) error {
	var lastVersion string
	err := db.QueryRow(`SELECT version FROM schema_migrations ORDER BY applied_at DESC, version DESC LIMIT 1`).Scan(&lastVersion)
	if errors.Is(err, sql.ErrNoRows) {
		fmt.Fprintln(out, "⚠️  No migrations to roll back.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get last applied migration: %w", err)
	}

	filePath := ""
	for _, f := range files {
		if filepath.Base(f) == lastVersion {
			filePath = f
			break
		}
	}
	if filePath == "" {
		return fmt.Errorf("migration file not found for version: %s", lastVersion)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	fmt.Fprintf(out, "🧹 Rolling back migration: %s\n", lastVersion)

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin rollback: %w", err)
	}
	if _, err := tx.Exec(extractMigrationPart(string(content), "Down")); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("❌ Rollback failed (%s): %w", filePath, err)
	}
	if _, err := tx.Exec(`DELETE FROM schema_migrations WHERE version = $1`, lastVersion); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to remove migration record: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit rollback: %w", err)
	}

	fmt.Fprintln(out, "✅ Rollback successful.")
	return nil
}

func runStatus(db *sql.DB, out io.Writer, files []string) error {
	for _, file := range files {
		version := filepath.Base(file)
		applied, err := isApplied(db, version)
		if err != nil {
			return err
		}
		state := "pending"
		if applied {
			state = "applied"
		}
		fmt.Fprintf(out, "%-8s %s\n", state, version)
	}
	return nil
}

func extractMigrationPart(content string, section string) string {
	lines := strings.Split(content, "\n")
	var part strings.Builder
	var inPart bool

	for _, line := range lines {
		if strings.Contains(line, "-- +migrate "+section) {
			inPart = true
			continue
		}
		if inPart && strings.HasPrefix(line, "-- +migrate") {
			break
		}
		if inPart {
			part.WriteString(line + "\n")
		}
	}
	return part.String()
}
