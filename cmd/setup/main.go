package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/Elite747/ValhallaLootList-sub000/internal/database"
)

const setupTimeout = 2 * time.Minute

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	sslMode := os.Getenv("DB_SSLMODE")

	if err := ensureDatabase(ctx, database.ConnString(user, password, host, port, "postgres", sslMode), dbname); err != nil {
		log.Fatalf("Failed to prepare database: %v", err)
	}

	version, err := database.Migrate(ctx, database.ConnString(user, password, host, port, dbname, sslMode))
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	fmt.Printf("Migrations complete, schema version %d.\n", version)
}

// ensureDatabase creates dbname through the maintenance database when it does not exist yet
func ensureDatabase(ctx context.Context, serverConnString, dbname string) error {
	conn, err := pgx.Connect(ctx, serverConnString)
	if err != nil {
		return fmt.Errorf("unable to connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	if err := conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbname).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		fmt.Printf("Database %s already exists.\n", dbname)
		return nil
	}

	fmt.Printf("Creating database %s...\n", dbname)
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{dbname}.Sanitize()); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	fmt.Println("Database created successfully.")
	return nil
}
