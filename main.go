package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"recipebook/api"
	"recipebook/repository"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func NewRootCommand() *cobra.Command {
	var args Args
	var logCloser interface{ Close() error }

	cmd := &cobra.Command{
		Use:           "recipebook",
		Short:         "Recipe book API server",
		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// .env 不存在時直接使用環境變數
			if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("fail to load .env, err=%w", err)
			}
			parsed, err := ParseArgs(cmd.Flags())
			if err != nil {
				return err
			}
			args = parsed
			logCloser = SetupLogger(args.Log)
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if logCloser != nil {
				logCloser.Close()
			}
		},
	}
	BindFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API and the weekly image cleanup",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return serve(cmd.Context(), args)
			},
		},
		&cobra.Command{
			Use:   "cleanup",
			Short: "Remove images that no recipe references, once",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return cleanup(cmd.Context(), args)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database tables",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return migrate(args)
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Create the demo account if it does not exist",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return seed(cmd.Context(), args)
			},
		},
	)
	return cmd
}

func newServer(ctx context.Context, args Args) (*api.ServerImpl, func(), error) {
	if err := args.Validate(true); err != nil {
		return nil, nil, fmt.Errorf("missing arguments, err=%w", err)
	}
	deps, closeDeps, err := BuildDependencies(ctx, args.ServerConfig)
	if err != nil {
		return nil, nil, err
	}
	server, err := api.NewServer(args.ServerConfig, deps)
	if err != nil {
		closeDeps()
		return nil, nil, err
	}
	return server, func() {
		server.Close()
		closeDeps()
	}, nil
}

func serve(ctx context.Context, args Args) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, closeServer, err := newServer(ctx, args)
	if err != nil {
		return err
	}
	defer closeServer()

	if args.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	httpServer := &http.Server{
		Addr:    args.ServerURL,
		Handler: server.Handler(),
	}

	server.Start()
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("addr", args.ServerURL))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

func cleanup(ctx context.Context, args Args) error {
	server, closeServer, err := newServer(ctx, args)
	if err != nil {
		return err
	}
	defer closeServer()

	if !server.Sweep(ctx) {
		return errors.New("image cleanup failed")
	}
	return nil
}

// openDB 開啟只需要資料庫的子命令所用的連線
func openDB(args Args) (*gorm.DB, func(), error) {
	if err := args.Validate(false); err != nil {
		return nil, nil, fmt.Errorf("missing arguments, err=%w", err)
	}
	db, err := OpenDB(args.ServerConfig.DB)
	if err != nil {
		return nil, nil, err
	}
	return db, func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}, nil
}

func migrate(args Args) error {
	db, closeDB, err := openDB(args)
	if err != nil {
		return err
	}
	defer closeDB()

	if err := repository.Migrate(db); err != nil {
		return err
	}
	slog.Info("database migrated")
	return nil
}

func seed(ctx context.Context, args Args) error {
	db, closeDB, err := openDB(args)
	if err != nil {
		return err
	}
	defer closeDB()

	created, err := repository.Seed(ctx, db, repository.DemoUsers)
	if err != nil {
		return err
	}
	slog.Info("database seeded", slog.Int64("created", created))
	return nil
}
