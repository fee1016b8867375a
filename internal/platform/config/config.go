package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port string
}

type StoreConfig struct {
	// Path of the SQLite file backing the blob store. Ignored when
	// Ephemeral is set.
	DBPath    string
	Ephemeral bool
}

type ShopConfig struct {
	OwnerPassword     string
	LowStockThreshold int
	// Cron spec for the low-stock monitor. Empty disables the job.
	LowStockSchedule string
	LogLevel         string
}

func Load() (ServerConfig, StoreConfig, ShopConfig) {
	// .env is optional; real deployments use the environment directly.
	_ = godotenv.Load()

	server := ServerConfig{
		Port: ":" + GetEnv("SERVER_PORT", "8080"),
	}
	store := StoreConfig{
		DBPath:    GetEnv("SHOP_DB_PATH", "data/shop.db"),
		Ephemeral: GetEnv("SHOP_STORE_EPHEMERAL", "") == "true",
	}
	shop := ShopConfig{
		OwnerPassword:     GetEnv("OWNER_PASSWORD", "123"),
		LowStockThreshold: GetEnvAsInt("LOW_STOCK_THRESHOLD", 5),
		LowStockSchedule:  GetEnv("LOW_STOCK_SCHEDULE", "@every 15m"),
		LogLevel:          GetEnv("LOG_LEVEL", "info"),
	}
	return server, store, shop
}

func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func GetEnvAsInt(key string, fallback int) int {
	strValue := GetEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
