package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/ballotcast/ballot/internal/adapters/repository/postgres"
	"github.com/ballotcast/ballot/internal/core/services"
)

// Audits the denormalized votes_count counters against the vote ledger.
func main() {
	repair := flag.Bool("repair", false, "rewrite drifted counters from the ledger")
	flag.Parse()

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

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	candidateRepo := postgres.NewCandidateRepository(db)
	voteRepo := postgres.NewVoteRepository(db)
	auditSvc := services.NewTallyAuditService(candidateRepo, voteRepo)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	log.Println("Starting tally audit...")

	drifts, err := auditSvc.Audit(ctx, *repair)
	if err != nil {
		log.Fatalf("Error auditing tallies: %v", err)
	}

	if len(drifts) == 0 {
		log.Println("All tallies consistent with the vote ledger.")
		return
	}

	for _, d := range drifts {
		log.Printf("Drift: candidate %s (%s) counter=%d ledger=%d", d.Name, d.CandidateID, d.Counter, d.Ledger)
	}
	if *repair {
		log.Printf("Repaired %d counters.", len(drifts))
	} else {
		log.Printf("Found %d drifted counters. Re-run with -repair to fix.", len(drifts))
		os.Exit(1)
	}
}
