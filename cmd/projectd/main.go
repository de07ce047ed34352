package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	connect "connectrpc.com/connect"
	"github.com/gorilla/mux"
	"github.com/peterbourgon/ff/v3"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/AnaRamirez60/SistemasDistribuidos2025/pkg/db/mongo"
	"github.com/AnaRamirez60/SistemasDistribuidos2025/pkg/log"
	"github.com/AnaRamirez60/SistemasDistribuidos2025/pkg/proj"
	"github.com/AnaRamirez60/SistemasDistribuidos2025/pkg/proj/projconnect"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "projectd: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("projectd", flag.ExitOnError)

	var (
		addr        = fs.String("addr", ":50051", "TCP address for the RPC server to listen on")
		mongoURI    = fs.String("mongodb-uri", "mongodb://127.0.0.1:27017", "MongoDB connection URI")
		mongoDBName = fs.String("mongodb-name", "projectdb", "MongoDB database name")
		verbose     = fs.Bool("verbose", false, "Enable debug logging")
		jsonLogs    = fs.Bool("json-logs", false, "Encode logs as JSON")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("PROJECTD"),
	); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	logger, err := log.NewZapLogger(*verbose, *jsonLogs)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	openCtx, cancelOpen := context.WithTimeout(ctx, 10*time.Second)
	defer cancelOpen()

	db, err := mongo.OpenDatabase(openCtx, *mongoURI, *mongoDBName)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	defer func() {
		closeCtx, cancelClose := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelClose()

		if err := db.Close(closeCtx); err != nil {
			logger.Errorw("Failed to close database connection.", "error", err)
		}
	}()

	logger.Infow("Connected to MongoDB.", "db", *mongoDBName)

	projSvc := proj.NewService(proj.Config{
		Repository: db,
		Logger:     logger.With("svc", "proj"),
	})

	router := mux.NewRouter().SkipClean(true)

	path, handler := projconnect.NewProjectServiceHandler(projSvc,
		connect.WithInterceptors(loggingInterceptor{logger: logger}),
	)
	router.PathPrefix(path).Handler(handler)

	server := &http.Server{
		Addr: *addr,
		// h2c lets gRPC clients reach the service without TLS.
		Handler:           h2c.NewHandler(router, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)

	go func() {
		logger.Infow("RPC server listening.", "addr", *addr)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Infow("Shutting down.")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}
