package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"MONGO_URI", "MONGO_DB", "REDIS_ADDR", "REDIS_PASSWORD",
		"JWT_SECRET", "SESSION_SECRET", "HTTP_PORT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.MongoDB != "movie_recommendation" {
		t.Errorf("MongoDB: got %q", cfg.MongoDB)
	}
	if cfg.HTTPPort != "8080" {
		t.Errorf("HTTPPort: got %q", cfg.HTTPPort)
	}
	if cfg.MongoURI == "" || cfg.JWTSecret == "" || cfg.SessionSecret == "" {
		t.Error("expected defaults for unset values")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MONGO_DB", "other_db")
	t.Setenv("HTTP_PORT", "9090")

	cfg := Load()
	if cfg.MongoDB != "other_db" {
		t.Errorf("MongoDB: got %q, want other_db", cfg.MongoDB)
	}
	if cfg.HTTPPort != "9090" {
		t.Errorf("HTTPPort: got %q, want 9090", cfg.HTTPPort)
	}
}
