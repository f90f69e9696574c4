package main

import (
	"fmt"
	"log"

	"github.com/ahmedxgouda/LittleLemon/configs"
	"github.com/ahmedxgouda/LittleLemon/events"
	"github.com/ahmedxgouda/LittleLemon/middlewares"
	"github.com/ahmedxgouda/LittleLemon/routes"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	if err := configs.SeedGroups(); err != nil {
		log.Fatalf("seed groups failed: %v", err)
	}
	if err := configs.SeedAdmin(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// Order events are optional; without a broker the service still runs.
	var pub events.Publisher = events.NopPublisher{}
	if cfg.RabbitMQURL != "" {
		p, err := events.NewAMQPPublisher(cfg.RabbitMQURL, cfg.OrderExchange)
		if err != nil {
			log.Printf("rabbitmq unavailable, order events disabled: %v", err)
		} else {
			pub = p
			defer p.Close()
		}
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.PrometheusMiddleware())

	routes.RegisterRoutes(r, cfg, pub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
