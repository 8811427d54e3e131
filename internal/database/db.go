package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the database connection
type DB struct {
	conn *sql.DB
}

// NewDB creates a new database connection and runs migrations
func NewDB(dbPath string) (*DB, error) {
	// busy_timeout makes concurrent dual-inserts queue instead of
	// failing with SQLITE_BUSY.
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", dbPath)
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// GetConn returns the underlying database connection
func (db *DB) GetConn() *sql.DB {
	return db.conn
}

// migrate creates the necessary tables if they don't exist. Both streams
// are append-only; id is the only ordering key (the sensor-reported time
// columns are opaque payload and carry no monotonicity guarantee).
func (db *DB) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS data (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		year INTEGER,
		month INTEGER,
		day INTEGER,
		hour INTEGER,
		minute INTEGER,
		second INTEGER,
		tick INTEGER,
		duration INTEGER,
		timestamp TEXT
	);

	CREATE TABLE IF NOT EXISTS status (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		year INTEGER,
		month INTEGER,
		day INTEGER,
		hour INTEGER,
		minute INTEGER,
		second INTEGER,
		solar_panel_voltage FLOAT,
		solar_panel_boosted_voltage FLOAT,
		battery_voltage FLOAT,
		timestamp TEXT
	);
	`

	_, err := db.conn.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	return nil
}
