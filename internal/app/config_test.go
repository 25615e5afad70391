package app

import (
	"context"
	"testing"
	"time"

	"my_trip/internal/infrastructure/payments"
	"my_trip/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"KV_BACKEND", "ORDERS_STORAGE_KEY", "FAVOR_STORAGE_KEY", "ORDER_STRICT_TRANSITIONS",
		"ORDER_REFRESH_LATENCY", "PAYMENT_MOCK_DELAY", "PAYMENT_MOCK_SUCCESS_RATE", "PORT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg := LoadConfig()
	assert.Equal(t, BackendSQLite, cfg.KVBackend)
	assert.Equal(t, usecase.DefaultOrdersStorageKey, cfg.OrdersStorageKey)
	assert.Equal(t, usecase.DefaultFavorStorageKey, cfg.FavorStorageKey)
	assert.False(t, cfg.StrictTransitions)
	assert.Equal(t, usecase.DefaultRefreshLatency, cfg.RefreshLatency)
	assert.Equal(t, payments.DefaultMockDelay, cfg.PaymentMockDelay)
	assert.Equal(t, payments.DefaultMockSuccessRate, cfg.PaymentMockRate)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, usecase.TransitionPermissive, cfg.TransitionPolicy())
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("KV_BACKEND", "Redis")
	t.Setenv("ORDERS_STORAGE_KEY", "orders-v2")
	t.Setenv("ORDER_STRICT_TRANSITIONS", "yes")
	t.Setenv("ORDER_REFRESH_LATENCY", "0s")
	t.Setenv("PAYMENT_MOCK_DELAY", "150ms")
	t.Setenv("PAYMENT_MOCK_SUCCESS_RATE", "1")
	t.Setenv("PORT", "9090")

	cfg := LoadConfig()
	assert.Equal(t, BackendRedis, cfg.KVBackend)
	assert.Equal(t, "orders-v2", cfg.OrdersStorageKey)
	assert.True(t, cfg.StrictTransitions)
	assert.Equal(t, time.Duration(0), cfg.RefreshLatency)
	assert.Equal(t, 150*time.Millisecond, cfg.PaymentMockDelay)
	assert.Equal(t, 1.0, cfg.PaymentMockRate)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, usecase.TransitionStrict, cfg.TransitionPolicy())
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("ORDER_STRICT_TRANSITIONS", "maybe")
	t.Setenv("ORDER_REFRESH_LATENCY", "-1s")
	t.Setenv("PAYMENT_MOCK_DELAY", "later")
	t.Setenv("PAYMENT_MOCK_SUCCESS_RATE", "1.5")
	t.Setenv("PORT", "http")

	cfg := LoadConfig()
	assert.False(t, cfg.StrictTransitions)
	assert.Equal(t, usecase.DefaultRefreshLatency, cfg.RefreshLatency)
	assert.Equal(t, payments.DefaultMockDelay, cfg.PaymentMockDelay)
	assert.Equal(t, payments.DefaultMockSuccessRate, cfg.PaymentMockRate)
	assert.Equal(t, 8080, cfg.Port)
}

func TestNew(t *testing.T) {
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "")

	t.Run("memory backend", func(t *testing.T) {
		a, err := New(context.Background(), Config{KVBackend: BackendMemory, PaymentMockRate: 1})
		require.NoError(t, err)
		defer a.Close()

		assert.NotNil(t, a.Store)
		assert.NotNil(t, a.Payments)
		assert.NotNil(t, a.Refresh)
		assert.Equal(t, 0, a.Orders.Count())
		assert.Equal(t, 0, a.Favors.Count())
	})

	t.Run("sqlite backend persists across apps", func(t *testing.T) {
		t.Setenv("SQLITE_PATH", t.TempDir()+"/trip.db")
		cfg := Config{KVBackend: BackendSQLite, PaymentMockRate: 1}

		a, err := New(context.Background(), cfg)
		require.NoError(t, err)
		a.Orders.EnsureSeeded(context.Background())
		seeded := a.Orders.Count()
		require.NoError(t, a.Close())
		require.Positive(t, seeded)

		b, err := New(context.Background(), cfg)
		require.NoError(t, err)
		defer b.Close()
		assert.Equal(t, seeded, b.Orders.Count())
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := New(context.Background(), Config{KVBackend: "etcd"})
		assert.ErrorContains(t, err, `unknown KV_BACKEND "etcd"`)
	})
}
