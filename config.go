package main

import (
	"os"
	"strings"
)

// serverConfig is read from the environment (optionally seeded by .env).
type serverConfig struct {
	Port           string
	AllowedOrigins []string
	GinMode        string
}

// loadServerConfig reads PORT, CORS_ALLOWED_ORIGINS (comma separated) and
// GIN_MODE, falling back to defaults for anything unset. An empty GinMode is
// left for main to resolve.
func loadServerConfig() serverConfig {
	return serverConfigFrom(os.Getenv)
}

func serverConfigFrom(getenv func(string) string) serverConfig {
	cfg := serverConfig{
		Port:           getenv("PORT"),
		AllowedOrigins: []string{"*"},
		GinMode:        getenv("GIN_MODE"),
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if origins := getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}
	return cfg
}
