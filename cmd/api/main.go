package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"pagomovil-system/application"
	"pagomovil-system/presenters"
	"pagomovil-system/utils/configs"
	"pagomovil-system/utils/gen_ids"
	"pagomovil-system/utils/gpooling"
	logger2 "pagomovil-system/utils/logger"
)

func main() {
	config, err := configs.LoadConfig()
	if err != nil {
		panic(err)
	}

	lg, _ := logger2.NewLogger(config.ENV)

	pool, err := gpooling.NewPooling(config.MaxPoolSize, lg)
	if err != nil {
		panic(err)
	}

	gen_ids.InitGenIDservice()

	app := application.NewVerificationApplication(config, lg, pool)

	srv := &http.Server{
		Addr:    ":" + config.Port,
		Handler: presenters.NewVerificationHTTP(app).Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		lg.With(zap.Field{
			Key:    "port",
			Type:   zapcore.StringType,
			String: config.Port,
		}).Info("starting verification http server...")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	if config.Job {
		pool.Submit(func() {
			ticker := time.NewTicker(time.Hour)
			defer ticker.Stop()

			for {
				select {
				case <-gctx.Done():
					return
				case <-ticker.C:
					app.JobPurgeExpiredAttempts()
				}
			}
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		lg.Warn("shutting down http server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		pool.Release()
		return err
	})

	if err := g.Wait(); err != nil {
		panic(err)
	}
}
