package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"my_trip/internal/adapter/persistence/repository"
	"my_trip/internal/infrastructure/database"
	"my_trip/internal/infrastructure/payments"
	"my_trip/internal/infrastructure/remote"
	"my_trip/internal/usecase"
	"my_trip/internal/usecase/interfaces"
)

// App holds the wired stores shared by the HTTP server and the CLI.
type App struct {
	Config   Config
	Store    interfaces.IKeyValueStore
	Orders   *usecase.OrderUseCase
	Payments *usecase.OrderPaymentUseCase
	Favors   *usecase.FavorUseCase
	Home     *usecase.HomeUseCase
	City     *usecase.CityUseCase
	Refresh  *usecase.RefreshController

	closers []func() error
}

// New opens the configured key-value backend, builds every store and loads the
// persisted orders and favorites.
func New(ctx context.Context, cfg Config) (*App, error) {
	a := &App{Config: cfg}

	store, err := a.openStore(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Store = store

	client := remote.NewClientFromEnv()
	homeAPI := remote.NewHomeClient(client)
	a.Home = usecase.NewHomeUseCase(homeAPI)
	a.City = usecase.NewCityUseCase(homeAPI)

	a.Orders = usecase.NewOrderUseCase(store, a.Home,
		usecase.WithOrdersStorageKey(cfg.OrdersStorageKey),
		usecase.WithTransitionPolicy(cfg.TransitionPolicy()),
	)
	a.Favors = usecase.NewFavorUseCase(store, cfg.FavorStorageKey, nil)
	a.Refresh = usecase.NewRefreshController(a.Orders, cfg.RefreshLatency)
	a.Payments = usecase.NewOrderPaymentUseCase(a.Orders, payments.NewGatewayFromEnv(cfg.PaymentMockDelay, cfg.PaymentMockRate))

	if err := a.Orders.Load(ctx); err != nil {
		log.Printf("[app] initial order load failed err=%v", err)
	}
	if err := a.Favors.Load(ctx); err != nil {
		log.Printf("[app] initial favorites load failed err=%v", err)
	}
	return a, nil
}

func (a *App) openStore(ctx context.Context) (interfaces.IKeyValueStore, error) {
	log.Printf("[app] opening key-value backend=%s", a.Config.KVBackend)
	switch a.Config.KVBackend {
	case BackendMemory:
		return repository.NewKVMemoryRepository(), nil
	case BackendSQLite:
		db, err := database.OpenSQLite(database.SQLitePath())
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		return repository.NewKVSQLiteRepository(db), nil
	case BackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, err
		}
		if err := database.EnsureKVTable(ctx, ddb, repository.KVTableName()); err != nil {
			return nil, err
		}
		return repository.NewKVDynamoRepository(ddb), nil
	case BackendRedis:
		rdb, err := database.ConnectRedis(ctx)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, rdb.Close)
		return repository.NewKVRedisRepository(rdb), nil
	}
	return nil, fmt.Errorf("unknown KV_BACKEND %q", a.Config.KVBackend)
}

func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}
