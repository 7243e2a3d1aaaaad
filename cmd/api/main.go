package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadp "lodge-portal/internal/adapter/http"
	"lodge-portal/internal/adapter/middleware"
	"lodge-portal/internal/adapter/repository/mysql"
	"lodge-portal/internal/config"
	"lodge-portal/internal/infrastructure/auth"
	"lodge-portal/internal/infrastructure/cache"
	"lodge-portal/internal/infrastructure/db"
	"lodge-portal/internal/infrastructure/logging"
	"lodge-portal/internal/usecase/account"
	"lodge-portal/internal/usecase/catalog"
	"lodge-portal/internal/usecase/document"
	"lodge-portal/internal/usecase/handoff"
	"lodge-portal/internal/usecase/recruitment"
	"lodge-portal/internal/usecase/servicereq"
	"lodge-portal/internal/usecase/voucher"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	log := logging.Setup(cfg.Env, cfg.LogLevel, os.Stdout)
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid config")
	}
	proxies, err := cfg.TrustedProxyRanges()
	if err != nil {
		log.WithError(err).Fatal("invalid config")
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), db.ParseLogLevel(cfg.LogLevel))
	if err != nil {
		log.WithError(err).Fatal("open mysql")
	}
	if cfg.AutoMigrate {
		if err := mysql.AutoMigrate(gdb); err != nil {
			log.WithError(err).Fatal("auto-migrate")
		}
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.WithError(err).Fatal("open redis")
	}
	defer rdb.Close()

	// repositories
	users := mysql.NewUserRepository(gdb)
	recruitments := mysql.NewRecruitmentRepository(gdb)
	tx := mysql.NewGormUoW(gdb)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)

	// usecases
	vouchers := voucher.NewUsecase(mysql.NewVoucherRepository(gdb))
	links := handoff.NewUsecase(mysql.NewHandoffRepository(gdb), cfg.WhatsAppNumber)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	stop := make(chan struct{})
	limiter.StartCleanup(time.Minute, stop)

	e := httpadp.NewRouter(httpadp.Deps{
		Accounts:        account.NewUsecase(users, mysql.NewActivityRepository(gdb), tokens, auth.NewBcryptHasher()),
		Vouchers:        vouchers,
		Recruitments:    recruitment.NewUsecase(vouchers, recruitments, tx),
		Catalog:         catalog.NewUsecase(mysql.NewProductRepository(gdb), mysql.NewOrderRepository(gdb), links),
		Documents:       document.NewUsecase(mysql.NewDocumentRepository(gdb), mysql.NewFileRepository(gdb), users, tx),
		ServiceRequests: servicereq.NewUsecase(mysql.NewServiceRequestRepository(gdb)),
		Handoff:         links,
		Tokens:          tokens,
		Redis:           rdb,
		IdempTTL:        cfg.IdempotencyTTL(),
		Limiter:         limiter,
		Logger:          log,
		TrustedProxies:  proxies,
		Checks: map[string]httpadp.HealthCheck{
			"db": func(ctx context.Context) error {
				sqlDB, err := gdb.DB()
				if err != nil {
					return err
				}
				return sqlDB.PingContext(ctx)
			},
			"redis": func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		},
		CookieSecure: cfg.CookieSecure || cfg.IsProduction(),
		MaxUpload:    cfg.MaxUploadBytes(),
	})

	addr := ":" + cfg.AppPort
	go func() {
		log.WithField("addr", addr).Info("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	close(stop)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.WithError(err).Error("graceful shutdown")
	}
	log.Info("bye")
}
