package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/careervault/careervault-server/internal/api/http/httpcontext"
	"github.com/careervault/careervault-server/internal/api/http/router"
	"github.com/careervault/careervault-server/internal/config"
	"github.com/careervault/careervault-server/internal/encrypt"
	memoryledger "github.com/careervault/careervault-server/internal/ledger/memory"
	minioledger "github.com/careervault/careervault-server/internal/ledger/minio"
	postgresledger "github.com/careervault/careervault-server/internal/ledger/postgres"
	redisledger "github.com/careervault/careervault-server/internal/ledger/redis"
	"github.com/careervault/careervault-server/internal/logger"
	"github.com/careervault/careervault-server/internal/metrics"
	"github.com/careervault/careervault-server/internal/model"
	"github.com/careervault/careervault-server/internal/recommend"
	"github.com/careervault/careervault-server/internal/repository/ledgerkv"
	"github.com/careervault/careervault-server/internal/server"
	"github.com/careervault/careervault-server/internal/service"
	"github.com/careervault/careervault-server/internal/wallet"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	ledger, cleanup, err := newLedger(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize ledger", "error", err, "backend", cfg.Ledger.Backend)
	}
	defer cleanup()

	index := ledgerkv.NewIndex(ledger, logger)
	records := ledgerkv.NewRecordRepository(ledger, logger)

	engine := recommend.NewEngine(time.Duration(cfg.Recommend.LatencyMs) * time.Millisecond)
	registry := service.NewRegistry(index, records, engine, metrics.New(), logger)

	ctxMgr := httpcontext.NewManager()
	w := wallet.New(cfg.Wallet.Address)

	r := router.New(registry, encrypt.NewFHE(), ctxMgr, w.CurrentActor(), logger)
	httpServer := server.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

// newLedger builds the key-value backend named by the config. The returned
// cleanup func is always safe to call.
func newLedger(ctx context.Context, cfg *config.Config, logger *logger.Logger) (model.Ledger, func(), error) {
	noop := func() {}

	switch cfg.Ledger.Backend {
	case "memory":
		return memoryledger.New(), noop, nil

	case "redis":
		l, err := redisledger.New(ctx, cfg.Redis.URL, cfg.Redis.KeyPrefix)
		if err != nil {
			return nil, noop, err
		}
		return l, func() {
			if err := l.Close(); err != nil {
				logger.Error("failed to close redis client", "error", err)
			}
		}, nil

	case "postgres":
		db, err := postgresledger.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, noop, err
		}
		return postgresledger.NewLedger(db), func() {
			if err := db.Close(); err != nil {
				logger.Error("failed to close postgres pool", "error", err)
			}
		}, nil

	case "minio":
		client, err := minio.New(cfg.Minio.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Minio.AccessKey, cfg.Minio.SecretKey, ""),
			Secure: cfg.Minio.UseSSL,
		})
		if err != nil {
			return nil, noop, err
		}
		l, err := minioledger.NewLedger(ctx, client, cfg.Minio.Bucket)
		if err != nil {
			return nil, noop, err
		}
		return l, noop, nil

	default:
		return nil, noop, fmt.Errorf("unknown ledger backend: %q", cfg.Ledger.Backend)
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
