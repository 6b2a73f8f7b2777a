package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI      string
	MongoDB       string
	RedisAddr     string
	RedisPass     string
	JWTSecret     string
	SessionSecret string
	HTTPPort      string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "movie_recommendation"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:     getEnv("REDIS_PASSWORD", ""),
		JWTSecret:     getEnv("JWT_SECRET", "super-secret"),
		SessionSecret: getEnv("SESSION_SECRET", "session-secret"),
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Printf("[config] %s not set, using default\n", key)
		return def
	}
	return v
}
