package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"minisnake/game"
	"minisnake/logging"
	"minisnake/server"
)

// MiniSnake 入口：启动 HTTP + WebSocket 服务，浏览器打开即可游戏
func main() {
	var (
		addr    string
		webDir  string
		logPath string
		level   string
		debug   bool
	)
	flag.StringVar(&addr, "addr", ":8080", "server listen address, e.g. :8080")
	flag.StringVar(&webDir, "web", "web", "directory with the static web client")
	flag.StringVar(&logPath, "log", "app.log", "log file path")
	flag.StringVar(&level, "level", "info", "log level: debug, info, warn, error")
	flag.BoolVar(&debug, "debug", false, "draw the debug line in every room")
	flag.Parse()

	// 使用第三方 zap 日志库写入 app.log（带滚动），同时输出到终端
	if err := logging.Init(logPath, logging.Options{Level: level, Stderr: true}); err != nil {
		panic(err)
	}
	defer logging.Sync()
	log := logging.Named("server")

	cfg := game.DefaultConfig()
	cfg.Debug = debug
	srv, err := server.New(cfg, log)
	if err != nil {
		log.Fatalw("create server", "err", err)
	}

	httpSrv := &http.Server{Addr: addr, Handler: srv.Handler(webDir)}

	// 优雅退出（Ctrl+C）
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("MiniSnake listening on %s; open http://localhost%v/", addr, addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := httpSrv.Shutdown(shutdownCtx)
		srv.Close()
		return err
	})

	if err := g.Wait(); err != nil {
		log.Errorw("server stopped", "err", err)
		logging.Sync()
		os.Exit(1)
	}
}
