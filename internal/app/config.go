package app

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"my_trip/internal/infrastructure/payments"
	"my_trip/internal/usecase"
)

const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendDynamoDB = "dynamodb"
	BackendRedis    = "redis"
)

// Config is read from the environment. See .env.example for every key.
type Config struct {
	KVBackend         string
	OrdersStorageKey  string
	FavorStorageKey   string
	StrictTransitions bool
	RefreshLatency    time.Duration
	PaymentMockDelay  time.Duration
	PaymentMockRate   float64
	Port              int
}

func LoadConfig() Config {
	return Config{
		KVBackend:         strings.ToLower(getenvDefault("KV_BACKEND", BackendSQLite)),
		OrdersStorageKey:  getenvDefault("ORDERS_STORAGE_KEY", usecase.DefaultOrdersStorageKey),
		FavorStorageKey:   getenvDefault("FAVOR_STORAGE_KEY", usecase.DefaultFavorStorageKey),
		StrictTransitions: getenvBool("ORDER_STRICT_TRANSITIONS", false),
		RefreshLatency:    getenvDuration("ORDER_REFRESH_LATENCY", usecase.DefaultRefreshLatency),
		PaymentMockDelay:  getenvDuration("PAYMENT_MOCK_DELAY", payments.DefaultMockDelay),
		PaymentMockRate:   getenvFloat("PAYMENT_MOCK_SUCCESS_RATE", payments.DefaultMockSuccessRate),
		Port:              getenvInt("PORT", 8080),
	}
}

func (c Config) TransitionPolicy() usecase.TransitionPolicy {
	if c.StrictTransitions {
		return usecase.TransitionStrict
	}
	return usecase.TransitionPermissive
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		log.Printf("[app][config] invalid %s=%q, using %s", key, v, def)
		return def
	}
	return d
}

func getenvFloat(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 || f > 1 {
		log.Printf("[app][config] invalid %s=%q, using %.2f", key, v, def)
		return def
	}
	return f
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[app][config] invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}
