package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/rarango1992/GPAC/internal/platform/config"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
)

var DB *sql.DB

func Connect() {
	var err error
	DB, err = sql.Open("pgx", config.AppConfig.DBConnStr)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(25)
	DB.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	if err = DB.Ping(); err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	fmt.Println("Successfully connected to PostgreSQL database!")
}

// schema holds the table definitions and the seeded reference data. The
// unique index on users.name backs the registration uniqueness guarantee;
// tasks.user_id deliberately carries no foreign key, ownership is checked
// at write time.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		password VARCHAR(255) NOT NULL,
		admin_privileges BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_name_key ON users (name)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		status INT NOT NULL DEFAULT 1,
		priority INT NOT NULL DEFAULT 2,
		end_date VARCHAR(10) NOT NULL,
		update_date VARCHAR(10) NOT NULL,
		notes JSONB NOT NULL DEFAULT '[]',
		tags JSONB NOT NULL DEFAULT '[]'
	)`,
	`CREATE INDEX IF NOT EXISTS tasks_user_id_idx ON tasks (user_id)`,
	`CREATE TABLE IF NOT EXISTS statuses (
		code INT PRIMARY KEY,
		title VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS priorities (
		level INT PRIMARY KEY,
		title VARCHAR(255) NOT NULL
	)`,
	`INSERT INTO statuses (code, title) VALUES
		(1, 'Pending'), (2, 'In Progress'), (3, 'Completed')
		ON CONFLICT (code) DO NOTHING`,
	`INSERT INTO priorities (level, title) VALUES
		(0, 'Low'), (1, 'High'), (2, 'Medium')
		ON CONFLICT (level) DO NOTHING`,
}

func EnsureSchema(ctx context.Context) {
	for _, stmt := range schema {
		if _, err := DB.ExecContext(ctx, stmt); err != nil {
			log.Fatalf("Error applying schema: %v", err)
		}
	}
	fmt.Println("Database schema ensured.")
}

func Close() {
	if DB != nil {
		DB.Close()
		fmt.Println("Database connection closed.")
	}
}
