package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"mtr/domain"
)

// History records run summaries for later inspection (trend tracking across
// runs, e.g. on a shared CI database).
type History interface {
	Record(meta domain.RunMeta) error
}

// MySQLHistory appends one row per run to a MySQL table.
type MySQLHistory struct {
	dsn string
}

// NewMySQLHistory returns a History writing to the database named by dsn.
func NewMySQLHistory(dsn string) *MySQLHistory {
	return &MySQLHistory{dsn: dsn}
}

// Record inserts the run summary, creating the table on first use.
func (h *MySQLHistory) Record(meta domain.RunMeta) error {
	db, err := sql.Open("mysql", h.dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to history database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping history database: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS test_runs (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		total_tests INT NOT NULL,
		passed_tests INT NOT NULL,
		failed_tests INT NOT NULL,
		duration_seconds DOUBLE NOT NULL,
		run_at VARCHAR(64) NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to create history table: %w", err)
	}

	_, err = db.Exec(
		"INSERT INTO test_runs (total_tests, passed_tests, failed_tests, duration_seconds, run_at) VALUES (?, ?, ?, ?, ?)",
		meta.TotalTests, meta.PassedTests, meta.FailedTests, meta.DurationSeconds, meta.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}
