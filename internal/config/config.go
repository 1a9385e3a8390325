package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	JWTSecret   string
	CORSOrigins string

	// Horas que se restan del instante actual antes de truncar a fecha, para
	// que un turno que termina pasada la medianoche cuente al día anterior.
	// Bolivia es UTC-4, por eso el default es 4.
	BusinessDayOffsetHours int
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:            getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=heha port=5432 sslmode=disable"),
		JWTSecret:              getEnv("JWT_SECRET", ""),
		CORSOrigins:            getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		BusinessDayOffsetHours: getEnvInt("BUSINESS_DAY_OFFSET_HOURS", 4),
	}

	// Controles de seguridad para producción
	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] La variable de entorno JWT_SECRET no está definida. Es obligatoria.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET debe tener al menos 32 caracteres.")
	}
	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=heha port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN usa el valor por defecto, define tu propia conexión Postgres para producción.")
	}
	if cfg.BusinessDayOffsetHours < 0 || cfg.BusinessDayOffsetHours > 23 {
		log.Fatal("[FATAL] BUSINESS_DAY_OFFSET_HOURS debe estar entre 0 y 23.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("[FATAL] %s debe ser numérico: %v", key, err)
	}
	return n
}
