package app

import (
	"context"
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/dhruvsolvzz/SHOPING-CART/configs"
	"github.com/dhruvsolvzz/SHOPING-CART/internal/adapter/cache"
	apihttp "github.com/dhruvsolvzz/SHOPING-CART/internal/adapter/http"
	"github.com/dhruvsolvzz/SHOPING-CART/internal/adapter/http/middleware"
	"github.com/dhruvsolvzz/SHOPING-CART/internal/adapter/kafka"
	"github.com/dhruvsolvzz/SHOPING-CART/internal/adapter/queue"
	"github.com/dhruvsolvzz/SHOPING-CART/internal/adapter/repo"
	"github.com/dhruvsolvzz/SHOPING-CART/internal/logging"
	"github.com/dhruvsolvzz/SHOPING-CART/internal/security"
	"github.com/dhruvsolvzz/SHOPING-CART/internal/usecase"
)

type App struct {
	Router *gin.Engine
}

// InitWithConfig wires the whole service: storage, caches, brokers, use cases
// and the HTTP router. The returned cleanup stops background consumers and
// closes connections.
func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	logging.Init(cfg.App.Name, cfg.App.LogFile, cfg.App.LogLevel)
	log := logging.New("bootstrap")
	log.Info("starting up", "addr", cfg.App.HTTPAddr)

	// mysql
	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		return nil, nil, err
	}
	db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)
	db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = db.PingContext(pingCtx)
	cancel()
	if err != nil {
		return nil, nil, err
	}

	// redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, nil, err
	}

	// rabbitmq
	conn, err := amqp091.Dial(cfg.Rabbit.URL)
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		return nil, nil, err
	}
	producer, err := queue.NewRabbitProducer(ch, cfg.Rabbit.Exchange)
	if err != nil {
		return nil, nil, err
	}

	// repositories + caches
	itemRepo := repo.NewMySQLItemRepo(db)
	userRepo := repo.NewMySQLUserRepo(db)
	cartRepo := repo.NewMySQLCartRepo(db)
	orderRepo := repo.NewMySQLOrderRepo(db)
	outboxRepo := repo.NewMySQLOutboxRepo(db)
	idem := cache.NewRedisIdempotencyStore(rdb, cfg.Idempotency.TTL)
	statusCache := cache.NewRedisStatusCache(rdb, cfg.Idempotency.TTL)

	// use cases
	catalogUC := usecase.NewCatalog(itemRepo, cfg.Catalog.Currency)
	cartsUC := usecase.NewCarts(cartRepo, itemRepo)
	checkoutUC := usecase.NewCheckout(cartRepo, itemRepo, orderRepo, idem)
	ordersUC := usecase.NewOrders(orderRepo, itemRepo)
	usersUC := usecase.NewUsers(userRepo, cartRepo, security.NewBcryptHasher(),
		security.NewTokenIssuer(cfg.Security.JWTSecret, cfg.Security.Issuer, cfg.Security.Audience, cfg.Security.TTL))

	// handlers + router
	auth := middleware.NewAuth(cfg)
	router := apihttp.NewRouter(
		apihttp.NewUserHandler(usersUC),
		apihttp.NewItemHandler(catalogUC),
		apihttp.NewCartHandler(cartsUC),
		apihttp.NewOrderHandler(checkoutUC, ordersUC),
		auth,
	)

	// background workers
	bgCtx, stop := context.WithCancel(context.Background())

	drainer := queue.NewOutboxDrainer(outboxRepo, producer, logging.New("outbox"),
		cfg.Outbox.PollInterval, cfg.Outbox.BatchSize)
	go drainer.Run(bgCtx)

	if err := startPaymentConsumer(bgCtx, cfg, orderRepo, statusCache); err != nil {
		stop()
		return nil, nil, err
	}

	cleanup := func() {
		stop()
		_ = ch.Close()
		_ = conn.Close()
		_ = rdb.Close()
		_ = db.Close()
	}
	return &App{Router: router}, cleanup, nil
}

func startPaymentConsumer(ctx context.Context, cfg configs.Config, orders *repo.MySQLOrderRepo, statusCache *cache.RedisStatusCache) error {
	grp, err := kafka.NewGroup(cfg.Kafka.Brokers, cfg.Kafka.GroupID)
	if err != nil {
		return err
	}

	log := logging.New("kafka")
	h := kafka.NewPaymentResultHandler(orders, statusCache, log)
	consumer := kafka.NewConsumer(grp, []string{cfg.Kafka.PaymentTopic}, h.Handle, log)

	go func() {
		if err := consumer.Start(ctx); err != nil && ctx.Err() == nil {
			log.Error("payment consumer stopped", "err", err)
		}
	}()
	return nil
}
