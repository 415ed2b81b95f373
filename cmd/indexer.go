package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/WeShipHQ/panda-monopoly-sub001/internal/config"
	"github.com/WeShipHQ/panda-monopoly-sub001/internal/core"
	"github.com/WeShipHQ/panda-monopoly-sub001/internal/db"
	"github.com/WeShipHQ/panda-monopoly-sub001/internal/http/handler"
	"github.com/WeShipHQ/panda-monopoly-sub001/internal/http/handler/middleware"
	"github.com/WeShipHQ/panda-monopoly-sub001/internal/http/payload"
	"github.com/WeShipHQ/panda-monopoly-sub001/internal/http/server"
	"github.com/WeShipHQ/panda-monopoly-sub001/internal/repository"
	solanasvc "github.com/WeShipHQ/panda-monopoly-sub001/internal/solana"
	"github.com/WeShipHQ/panda-monopoly-sub001/pkg/jwt"
	"github.com/WeShipHQ/panda-monopoly-sub001/pkg/log"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/go-co-op/gocron"
)

func Start() error {
	cfg, err := config.NewApp()
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}

	logger := log.NewZapLogger("monopoly-indexer", cfg.LogLevel)
	defer logger.Sync() //nolint:errcheck

	dbConn, err := db.NewPostgresDB(cfg.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	repo := repository.NewIndexerRepository(dbConn)
	if err = repo.MigrateAndSeed(context.Background()); err != nil {
		logger.Errorw("failed to migrate and seed database", "error", err)
		return err
	}

	client := rpc.New(cfg.RPCURL)
	accountService := solanasvc.NewAccountService(logger, client, cfg.ProgramID, solanasvc.DefaultRetryPolicy)

	jwtService := jwt.NewJWTService([]byte(cfg.JWTSecret))

	syncer := core.NewSyncer(
		logger,
		repo,
		accountService,
		jwtService,
		cfg.ProgramID.String())

	// The initial pass always runs; a fatal store failure here terminates
	// the invocation with a non-zero exit.
	if _, err := syncer.RunPass(context.Background()); err != nil {
		logger.Errorw("sync pass failed", "error", err)
		return err
	}

	if cfg.SyncInterval == 0 && cfg.APIPort == "" {
		return nil
	}

	var scheduler *gocron.Scheduler
	if cfg.SyncInterval > 0 {
		scheduler = gocron.NewScheduler(time.UTC)
		_, err = scheduler.Every(cfg.SyncInterval).SingletonMode().Do(func() {
			if _, err := syncer.RunPass(context.Background()); err != nil {
				logger.Errorw("scheduled sync pass failed", "error", err)
			}
		})
		if err != nil {
			logger.Errorw("failed to schedule sync passes", "error", err)
			return err
		}
		scheduler.StartAsync()
		defer scheduler.Stop()
	}

	if cfg.APIPort == "" {
		return waitForSignal()
	}

	monopolyHlr := handler.NewMonopolyHandler(
		logger,
		payload.DecodeValidator{},
		syncer)

	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	mux.HandleFunc(handler.Authenticate, monopolyHlr.HandleAuthenticate)
	mux.HandleFunc(handler.ListGames, monopolyHlr.HandleListGames)
	mux.HandleFunc(handler.GetGame, monopolyHlr.HandleGetGame)
	mux.HandleFunc(handler.GetGamePlayers, monopolyHlr.HandleGetGamePlayers)
	mux.HandleFunc(handler.GetGameProperties, monopolyHlr.HandleGetGameProperties)
	mux.HandleFunc(handler.SyncStatus, monopolyHlr.HandleSyncStatus)
	mux.HandleFunc(handler.TriggerSync, monopolyHlr.HandleTriggerSync)

	srv := server.NewHTTP(logger, hdlr, cfg.APIPort)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}

func waitForSignal() error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	<-sig
	return nil
}
