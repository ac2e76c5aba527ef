package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// @title Event Operations API
// @version 1.0
// @description Back office for event registrations, sponsor portfolios, and donation fulfillment tracking.
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	dbHost := getEnvOrDefault("DB_HOST", "localhost")
	dbPort := getEnvOrDefault("DB_PORT", "5432")
	dbUser := getEnvOrDefault("DB_USER", "postgres")
	dbPassword := getEnvOrDefault("DB_PASSWORD", "password")
	dbName := getEnvOrDefault("DB_NAME", "eventops")

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName)

	// Connect to database with retry logic
	var pool *pgxpool.Pool
	var err error
	maxRetries := 30
	retryInterval := time.Second * 2

	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.New(context.Background(), connStr)
		if err == nil {
			err = pool.Ping(context.Background())
		}
		if err != nil {
			log.Printf("Attempt %d: Error connecting to database: %v", i+1, err)
			if pool != nil {
				pool.Close()
			}
			time.Sleep(retryInterval)
			continue
		}
		log.Println("Successfully connected to database")
		break
	}

	if err != nil {
		log.Fatal("Failed to connect to database after retries: ", err)
	}
	defer pool.Close()

	// Run database migrations over a database/sql connection
	migrationsPath := filepath.Join(".", "db", "migrations")
	if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
		log.Printf("Migrations directory not found at %s, skipping migrations", migrationsPath)
	} else {
		migrationDB, err := sql.Open("postgres", connStr)
		if err != nil {
			log.Fatal("Error opening migration connection: ", err)
		}

		log.Println("Running database migrations...")
		if err := runMigrations(migrationDB, migrationsPath); err != nil {
			log.Fatal("Error running migrations: ", err)
		}

		if version, dirty, err := getMigrationVersion(migrationDB, migrationsPath); err == nil {
			if dirty {
				log.Printf("Current migration version: %d (DIRTY - migration failed)", version)
			} else {
				log.Printf("Current migration version: %d", version)
			}
		}
		migrationDB.Close()
		log.Println("Database migrations completed successfully")
	}

	server := NewServer(NewPostgresStore(pool))
	if err := server.Load(context.Background()); err != nil {
		log.Fatal("Failed to load collections from record store: ", err)
	}

	r := server.Router(getEnvOrDefault("CORS_ORIGIN", "http://localhost:3001"))

	port := getEnvOrDefault("PORT", "8080")
	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}
