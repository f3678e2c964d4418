package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/SupremeBender/ajac-website/internal/config"
	"github.com/SupremeBender/ajac-website/internal/db"
	"github.com/SupremeBender/ajac-website/internal/db/repositories"
)

func main() {
	label := flag.String("label", "", "what the key is for, e.g. dcs-bridge")
	flag.Parse()

	if *label == "" {
		fmt.Fprintln(os.Stderr, "usage: api_key_gen -label <name>")
		os.Exit(2)
	}

	config.Load()

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		config.Get("PG_USER", "ajac"),
		config.Get("PG_PASSWORD", "ajac"),
		config.Get("PG_HOST", "localhost"),
		config.Get("PG_PORT", "5432"),
		config.Get("PG_DB", "ajac"),
	)

	conn, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer conn.Close()

	if err := db.EnsureSchema(conn); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	key, err := repositories.NewApiKeysRepo(conn).Create(context.Background(), *label)
	if err != nil {
		log.Fatalf("create api key: %v", err)
	}

	// The plaintext key is printed once; only its digest is stored.
	fmt.Println("New API Key:", key)
}
