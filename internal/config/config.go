package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr     string
	MongoURI string
	MongoDB  string
}

func Load() Config {
	// .env is optional; deployments normally set the environment directly.
	_ = godotenv.Load()

	return Config{
		Addr:     getenv("ADDR", ":"+getenv("PORT", "5000")),
		MongoURI: getenv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:  getenv("MONGODB_DB", "rci-maria"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
