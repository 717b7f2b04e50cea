// Command initdb destructively resets the parking database: drop,
// recreate, apply the schema and load the seed data. One-shot
// operational tool, never part of runtime.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"

	"campus_parking/internal/config"
)

func main() {
	schemaPath := flag.String("schema", "db/schema.sql", "path to the table definitions")
	seedPath := flag.String("seed", "db/seed.sql", "path to the seed data")
	flag.Parse()

	cfg := config.Load()

	// Connect to the maintenance database first; the target may not exist yet
	admin, err := sql.Open("postgres", dsnFor(cfg, "postgres"))
	if err != nil {
		log.Fatalf("could not open admin connection: %v", err)
	}
	if err := admin.Ping(); err != nil {
		log.Fatalf("could not reach Postgres: %v", err)
	}

	log.Printf("Resetting database %q...", cfg.DBName)
	if _, err := admin.Exec(fmt.Sprintf(`DROP DATABASE IF EXISTS %q`, cfg.DBName)); err != nil {
		log.Fatalf("drop database failed: %v", err)
	}
	if _, err := admin.Exec(fmt.Sprintf(`CREATE DATABASE %q`, cfg.DBName)); err != nil {
		log.Fatalf("create database failed: %v", err)
	}
	if err := admin.Close(); err != nil {
		log.Printf("closing admin connection: %v", err)
	}

	db, err := sql.Open("postgres", dsnFor(cfg, cfg.DBName))
	if err != nil {
		log.Fatalf("could not open %q: %v", cfg.DBName, err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("closing connection: %v", err)
		}
	}()

	for _, path := range []string{*schemaPath, *seedPath} {
		script, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("could not read %s: %v", path, err)
		}
		log.Printf("Executing %s...", path)
		if _, err := db.Exec(string(script)); err != nil {
			log.Fatalf("executing %s failed: %v", path, err)
		}
	}

	log.Println("Done.")
}

func dsnFor(cfg *config.Config, dbname string) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, dbname, cfg.DBSSLMode,
	)
}
