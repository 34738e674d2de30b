package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	handler "github.com/ballotcast/ballot/internal/adapters/handler/http"
	"github.com/ballotcast/ballot/internal/adapters/repository/postgres"
	"github.com/ballotcast/ballot/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Println("Warning: SESSION_SECRET not set, using an insecure development default")
		secret = "dev-change-me"
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = "0.0.0.0:8080"
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	userRepo := postgres.NewUserRepository(db)
	candidateRepo := postgres.NewCandidateRepository(db)
	voteRepo := postgres.NewVoteRepository(db)

	identitySvc := services.NewIdentityService(userRepo)
	votingSvc := services.NewVotingService(userRepo, candidateRepo, voteRepo)
	resultsSvc := services.NewResultsService(candidateRepo)
	adminSvc := services.NewAdminService(userRepo, candidateRepo)

	sessions := handler.NewSessionManager(secret)
	identityHandler := handler.NewIdentityHandler(identitySvc, sessions)
	pageHandler := handler.NewPageHandler(identitySvc, resultsSvc, sessions)
	voteHandler := handler.NewVoteHandler(votingSvc, sessions)
	resultsHandler := handler.NewResultsHandler(resultsSvc)
	adminHandler := handler.NewAdminHandler(adminSvc)

	router := handler.NewHandler(sessions, identityHandler, pageHandler, voteHandler, resultsHandler, adminHandler)
	server := &stdhttp.Server{Addr: addr, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}
