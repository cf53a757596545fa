package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap/zapcore"

	"circletracker/internal/chains"
	"circletracker/internal/config"
	"circletracker/internal/core"
	"circletracker/internal/db"
	"circletracker/internal/ethereum"
	"circletracker/internal/http/handler"
	"circletracker/internal/http/handler/middleware"
	"circletracker/internal/http/payload"
	"circletracker/internal/http/server"
	"circletracker/internal/repository"
	"circletracker/pkg/jwt"
	"circletracker/pkg/log"
)

func Start() error {
	logger := log.NewZapLogger("circletracker", zapcore.InfoLevel)

	appConfig, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	registry, err := chains.NewRegistry(appConfig.RPCOverrides)
	if err != nil {
		logger.Errorw("failed to build chain registry", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(appConfig.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(appConfig.JWTSecret))

	// repository
	repo := repository.NewTrackerRepository(dbConn)

	err = repo.MigrateAndSeed(context.Background())
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// one scanner per supported chain; a chain whose endpoint cannot be
	// dialed is skipped, the others keep running
	scannerCfg := ethereum.ScannerConfig{
		MaxBlockSpan: appConfig.MaxBlockSpan,
		CallTimeout:  appConfig.RPCTimeout,
	}
	scanners := make(map[int64]core.ChainScanner)
	for _, chain := range registry.List() {
		client, err := ethclient.Dial(chain.RPCEndpoint)
		if err != nil {
			logger.Errorw("rpc connection failed, chain disabled",
				"chain_id", chain.ID,
				"chain", chain.Name,
				"error", err)
			continue
		}
		scanners[chain.ID] = ethereum.NewScanner(logger, client, chain, scannerCfg)
	}

	// tracker
	tracker := core.NewTracker(
		logger,
		repo,
		registry,
		scanners,
		jwtService,
		core.Config{
			PollInterval:    appConfig.PollInterval,
			DefaultPageSize: appConfig.DefaultPageSize,
			MaxPageSize:     appConfig.MaxPageSize,
		})
	defer tracker.Shutdown()

	// handler
	trackerHlr := handler.NewTrackerHandler(
		logger,
		payload.Decoder{},
		tracker)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Authenticate, trackerHlr.HandleAuthenticate)
	mux.HandleFunc(handler.GetTransactions, trackerHlr.HandleGetTransactions)
	mux.HandleFunc(handler.GetTransaction, trackerHlr.HandleGetTransaction)
	mux.HandleFunc(handler.GetSummary, trackerHlr.HandleGetSummary)
	mux.HandleFunc(handler.GetChains, trackerHlr.HandleGetChains)
	mux.HandleFunc(handler.GetChainHead, trackerHlr.HandleGetChainHead)
	mux.HandleFunc(handler.GetStatistics, trackerHlr.HandleGetStatistics)
	mux.HandleFunc(handler.RunBackfill, trackerHlr.HandleRunBackfill)
	mux.HandleFunc(handler.StartListener, trackerHlr.HandleStartListener)
	mux.HandleFunc(handler.StopListener, trackerHlr.HandleStopListener)
	mux.HandleFunc(handler.RecomputeStatistics, trackerHlr.HandleRecomputeStatistics)

	srv := server.NewHTTP(logger, hdlr, appConfig.Port)
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
