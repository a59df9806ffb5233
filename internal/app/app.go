package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ranjan7481/Ecommerce/internal/auth"
	config "github.com/Ranjan7481/Ecommerce/internal/cfg"
	v1Http "github.com/Ranjan7481/Ecommerce/internal/delivery/v1/http"
	"github.com/Ranjan7481/Ecommerce/internal/infrastructure/kafka"
	"github.com/Ranjan7481/Ecommerce/internal/repository/pgdb"
	pgdbConv "github.com/Ranjan7481/Ecommerce/internal/repository/pgdb/converter"
	"github.com/Ranjan7481/Ecommerce/internal/repository/redis"
	redisConv "github.com/Ranjan7481/Ecommerce/internal/repository/redis/converter"
	"github.com/Ranjan7481/Ecommerce/internal/usecase"
	"github.com/Ranjan7481/Ecommerce/pkg/clients"
	"github.com/Ranjan7481/Ecommerce/pkg/closer"
	"github.com/Ranjan7481/Ecommerce/pkg/e"
	"github.com/Ranjan7481/Ecommerce/pkg/logger"
	"github.com/Ranjan7481/Ecommerce/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const shutdownTimeout = 10 * time.Second

// App держит собранное приложение и ресурсы, требующие закрытия.
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	httpSrv *v1Http.Server
	worker  *kafka.OutboxWorker
	closer  *closer.Closer
}

// NewApp собирает все зависимости: БД с миграциями, Redis, Kafka,
// репозитории, usecase'ы и HTTP-сервер.
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser(0)

	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add("postgres", func(ctx context.Context) error {
		db.Close()
		return nil
	})

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add("redis", func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		log.Warnf("kafka topic check failed, producer will retry on write: %v", err)
	}
	cl.Add("kafka producer", func(ctx context.Context) error {
		return producer.Close()
	})

	userConv := pgdbConv.NewUserConverterImpl()
	prConv := pgdbConv.NewProductConverterImpl()
	orConv := pgdbConv.NewOrderConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	cacheConv := redisConv.NewProductConverterImpl()

	userRepo := pgdb.NewUserRepo(db.Pool, userConv)
	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	orderRepo := pgdb.NewOrderRepo(db.Pool, orConv, prConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)
	cacheRepo := redis.NewCacheRepo(redisClient, cacheConv, cfg.Redis, log)

	hasher := auth.NewBcryptHasher()
	tokens := auth.NewTokenManager(cfg.Auth)

	userUC := usecase.NewUserUC(userRepo, hasher, tokens, log)
	productUC := usecase.NewProductUC(productRepo, cacheRepo, log)
	orderUC := usecase.NewOrderUC(orderRepo, productRepo, outboxRepo, db.Pool, cacheRepo, log)

	worker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(userUC, productUC, orderUC, cfg.Auth.SessionTTL)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	return &App{
		cfg:     cfg,
		logger:  log,
		httpSrv: httpSrv,
		worker:  worker,
		closer:  cl,
	}, nil
}

// Run запускает outbox-воркер и HTTP-сервер и блокируется
// до сигнала завершения или фатальной ошибки сервера.
func (a *App) Run() error {
	workerCtx, workerCancel := context.WithCancel(context.Background())
	a.worker.Start(workerCtx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	workerCancel()
	a.worker.Stop()
	a.logger.Infof("Outbox worker stopped")

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("resource shutdown finished with errors: %v", err)
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(log logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		log.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(log); err != nil {
		log.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		log.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
