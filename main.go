package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"lg/macro-calc/calc"
)

func main() {
	log.SetPrefix("lg/macro-calc: ")
	log.SetFlags(0)

	// A missing .env is fine; the environment alone is enough.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded (%v), using environment variables", err)
	}
	cfg := loadServerConfig()

	if cfg.GinMode == "" {
		cfg.GinMode = gin.ReleaseMode
	}
	gin.SetMode(cfg.GinMode)
	router := gin.Default()
	router.SetTrustedProxies(nil)

	h := Handler{cfg: calc.DefaultConfig()}
	h.registerRoutes(router)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	})

	addr := ":" + cfg.Port
	fmt.Printf("Starting macro calculator API on %s...\n", addr)
	if err := http.ListenAndServe(addr, c.Handler(router)); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
