package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"codenix/app/config"
	"codenix/app/controllers"
	"codenix/app/logging"
	"codenix/app/repositories"
	"codenix/app/routes"
	"codenix/app/seed"
	"codenix/app/services"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("codenix version %s\n", cliVersion)
	case "serve":
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "seed":
		if err := runSeed(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: codenix <command>
Commands:
  help       Display this help message.
  version    Show version information.
  serve      Run the blog API server.
  seed       Load the sample posts into the store.
Configuration is read from configs/base.yaml and APP_* environment
variables (e.g. APP_SERVER_PORT, APP_DB_PATH).
`
	fmt.Println(helpText)
}

// serve loads configuration, opens the store and runs the HTTP server
// until SIGINT/SIGTERM, then shuts down gracefully.
func serve() error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}

	db, err := repositories.Open(cfg.DB.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repositories.NewBadgerBlogRepository(db)
	service := services.NewBlogService(repo)
	service.SetFeaturedLimit(cfg.Featured.DefaultLimit)
	controller := controllers.NewBlogController(service)
	router := routes.Setup(controller, cfg)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting blog API server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// runSeed loads the sample posts into the configured store.
func runSeed() error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}

	db, err := repositories.Open(cfg.DB.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	return seed.Run(repositories.NewBadgerBlogRepository(db), logger)
}

// bootstrap loads and validates configuration and sets up logging.
func bootstrap() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger := logging.New(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "codenix-blog-api",
	})
	slog.SetDefault(logger)
	return cfg, logger, nil
}
