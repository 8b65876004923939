package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/queenkoba/queenkoba/config"
	"github.com/queenkoba/queenkoba/internal/adminapi"
	"github.com/queenkoba/queenkoba/internal/app"
	"github.com/queenkoba/queenkoba/internal/mailer"
	"github.com/queenkoba/queenkoba/internal/storeapi"
	"github.com/queenkoba/queenkoba/internal/webserver"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	h        = flag.Bool("h", false, "help usage")
	x        = flag.Bool("x", false, "debug mode")
	initdb   = flag.Bool("initdb", false, "drop and recreate the database schema, then exit")
	conffile = flag.String("c", "", "config yaml file")
)

func main() {
	flag.Parse()
	if *h {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		flag.PrintDefaults()
		return
	}

	cfg, err := config.LoadConfig(*conffile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	if *x {
		cfg.System.Debug = true
	}

	appx := app.Initialize(cfg)
	defer appx.Release()

	if *initdb {
		appx.InitDb()
		zap.S().Info("database initialized")
		return
	}

	mailSvc, err := mailer.New(appx)
	if err != nil {
		zap.S().Errorf("mailer init failed: %v", err)
	} else {
		defer mailSvc.Stop()
	}

	srv := webserver.Init(appx)
	storeapi.InitRouters()
	adminapi.InitRouters()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Listen()
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		zap.S().Errorf("server exited with error: %v", err)
		os.Exit(1)
	}
	zap.S().Info("server stopped")
}
