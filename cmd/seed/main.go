package main

import (
	"context"
	"log"
	"os"

	"github.com/Domenick1991/flightbooking/config"
	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seeds the flights table with the sample schedule. Flights are created by
// this process only; the API never writes them.
func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	flights := []domain.Flight{
		{Source: "Mumbai", Destination: "Delhi", Date: "2025-12-05", Price: 3000},
		{Source: "Bangalore", Destination: "Chennai", Date: "2025-12-06", Price: 2500},
		{Source: "Hyderabad", Destination: "Kolkata", Date: "2025-12-07", Price: 3500},
	}
	for _, f := range flights {
		if _, err := pool.Exec(ctx, `INSERT INTO flights (source, destination, date, price) VALUES ($1, $2, $3, $4)`,
			f.Source, f.Destination, f.Date, f.Price); err != nil {
			log.Fatalf("insert flight %s-%s: %v", f.Source, f.Destination, err)
		}
	}
	log.Printf("seeded %d flights", len(flights))
}
