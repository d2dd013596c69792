package main

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/cosmelog/cosme-review-api/config"
	"github.com/cosmelog/cosme-review-api/internal/infrastructure/sqlite"
	"github.com/cosmelog/cosme-review-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sqlite.NewDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	if err := sqlite.RunMigrations(db, cfg.MigrationsDir, logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	email := "demo@example.com"
	password := "password123"
	name := "demoUser"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	now := time.Now().UTC().Format("2006-01-02 15:04:05")
	res, err := db.Exec(`
		INSERT INTO users (name, email, password_hash, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (email) DO UPDATE SET name=excluded.name
	`, name, email, hash, now)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	id, _ := res.LastInsertId()
	fmt.Printf("seeded user: id=%d email=%s name=%s password=%s\n", id, email, name, password)

	products := []struct {
		name         string
		manufacturer string
		category     string
		ingredients  string
	}{
		{"Hydra Cream", "Acme", "skin_care", "water,glycerin"},
		{"Velvet Lipstick", "Lumi Cosmetics", "makeup", "beeswax,shea butter,pigment"},
		{"Citrus Mist", "Aroma Lab", "fragrance", "alcohol,citrus oil"},
	}
	for _, p := range products {
		if _, err := db.Exec(`
			INSERT INTO products (name, manufacturer, category, ingredients, image_url, created_at)
			VALUES (?, ?, ?, ?, '', ?)
		`, p.name, p.manufacturer, p.category, p.ingredients, now); err != nil {
			log.Fatalf("failed to seed product %s: %v", p.name, err)
		}
	}
	fmt.Printf("seeded %d products\n", len(products))
}
