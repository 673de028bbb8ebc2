package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Environment struct {
	IsDevelopment  bool
	Port           string
	AllowedOrigins []string
}

var Env Environment

func init() {
	isDev := os.Getenv("APP_ENV") != "production"

	// Load .env file if not in production environment. This runs before any
	// other config is read.
	if isDev {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // fallback port for local development
	}

	origins := []string{"http://localhost:3000"}
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		origins = nil
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	Env = Environment{
		IsDevelopment:  isDev,
		Port:           port,
		AllowedOrigins: origins,
	}
}
