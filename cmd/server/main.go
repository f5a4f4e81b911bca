package main

import (
	"fmt"
	"log"

	"github.com/SergioReyes42/SistemaContable/internal/config"
	"github.com/SergioReyes42/SistemaContable/internal/database"
	"github.com/SergioReyes42/SistemaContable/internal/server"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	r := server.NewRouter(cfg)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
