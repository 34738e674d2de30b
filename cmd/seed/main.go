package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

type seedUser struct {
	username string
	password string
	isAdmin  bool
}

type seedCandidate struct {
	name        string
	party       string
	description string
}

var users = []seedUser{
	{"admin", "admin123", true},
	{"john_doe", "password123", false},
	{"jane_smith", "password123", false},
	{"mike_wilson", "password123", false},
	{"sarah_jones", "password123", false},
	{"demo_voter", "demo123", false},
}

var candidates = []seedCandidate{
	{"Alice Johnson", "Progressive Party", "Education & healthcare."},
	{"Bob Smith", "Conservative Alliance", "Economic growth."},
	{"Carol Davis", "Green Movement", "Sustainability."},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
		_, err = db.ExecContext(ctx, `
			INSERT INTO users (username, password_hash, is_admin)
			VALUES ($1, $2, $3)
			ON CONFLICT (username) DO NOTHING
		`, u.username, string(hash), u.isAdmin)
		if err != nil {
			log.Fatalf("Failed to seed user %s: %v", u.username, err)
		}
	}

	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM candidates`).Scan(&count); err != nil {
		log.Fatal(err)
	}
	if count == 0 {
		for _, c := range candidates {
			_, err := db.ExecContext(ctx, `
				INSERT INTO candidates (name, party, description)
				VALUES ($1, $2, $3)
			`, c.name, c.party, c.description)
			if err != nil {
				log.Fatalf("Failed to seed candidate %s: %v", c.name, err)
			}
		}
	}

	log.Println("Seed completed successfully.")
}
