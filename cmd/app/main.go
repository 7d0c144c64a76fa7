package main

import (
	"log"

	"booking-refund-service/config"
	"booking-refund-service/internal/app"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}
	app.Run(cfg)
}
