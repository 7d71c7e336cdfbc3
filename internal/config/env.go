package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	RedisAddr string

	JWTSecret string

	NotifyBaseURL string

	GatewayMerchantID string
	GatewayPublicKey  string
	GatewayReturnURL  string
	GatewayCancelURL  string
}

func LoadEnv() Env {
	// .env is optional; deployments may set variables directly.
	_ = godotenv.Load()

	return Env{
		AppAddr: getenv("APP_ADDR", ":8080"),
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBUser: getenv("DB_USER", "root"),
		DBPass: strings.TrimSpace(os.Getenv("DB_PASS")),
		DBHost: getenv("DB_HOST", "127.0.0.1:3306"),
		DBName: getenv("DB_NAME", "tukrent"),

		RedisAddr: getenv("REDIS_ADDR", "127.0.0.1:6379"),

		JWTSecret: getenv("JWT_SECRET", "super-secret-key-change-me"),

		NotifyBaseURL: strings.TrimSpace(os.Getenv("NOTIFY_BASE_URL")),

		GatewayMerchantID: strings.TrimSpace(os.Getenv("GATEWAY_MERCHANT_ID")),
		GatewayPublicKey:  strings.TrimSpace(os.Getenv("GATEWAY_PUBLIC_KEY")),
		GatewayReturnURL:  getenv("GATEWAY_RETURN_URL", "https://tukrent.lk/payment/return"),
		GatewayCancelURL:  getenv("GATEWAY_CANCEL_URL", "https://tukrent.lk/payment/cancel"),
	}
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
