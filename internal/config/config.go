package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server struct {
		Port string
	}
	DB struct {
		ConnString string
	}
	JWT struct {
		Secret     string
		Algorithm  string
		TTLMinutes int
	}
	// DefaultOwnerID, when set, lets unauthenticated requests act as this
	// user. Only meaningful for a single-tenant deployment.
	DefaultOwnerID string
	AllowOrigins   string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := Config{}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		log.Printf("PORT not set, using default %s", port)
	}
	cfg.Server.Port = port

	conn := os.Getenv("DATABASE_URL")
	if conn == "" {
		log.Fatalf("DATABASE_URL env var required")
	}
	cfg.DB.ConnString = conn

	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		log.Fatalf("SECRET_KEY env var required")
	}
	cfg.JWT.Secret = secret

	alg := os.Getenv("ALGORITHM")
	if alg == "" {
		log.Fatalf("ALGORITHM env var required")
	}
	cfg.JWT.Algorithm = alg

	ttlStr := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES")
	if ttlStr == "" {
		log.Fatalf("ACCESS_TOKEN_EXPIRE_MINUTES env var required")
	}
	ttl, err := strconv.Atoi(ttlStr)
	if err != nil || ttl <= 0 {
		log.Fatalf("ACCESS_TOKEN_EXPIRE_MINUTES must be a positive integer, got %q", ttlStr)
	}
	cfg.JWT.TTLMinutes = ttl

	cfg.DefaultOwnerID = os.Getenv("USER_ID")

	origins := os.Getenv("CORS_ALLOW_ORIGINS")
	if origins == "" {
		origins = "*"
	}
	cfg.AllowOrigins = origins

	return cfg
}
