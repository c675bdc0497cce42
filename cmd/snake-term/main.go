package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"minisnake/game"
	"minisnake/logging"
	"minisnake/sound"
	"minisnake/term"
)

// 终端版：tcell 绘制，日志只写文件（写到终端会破坏画面）
func main() {
	var (
		logPath string
		level   string
		cols    int
		rows    int
		tps     int
		mute    bool
		debug   bool
	)
	flag.StringVar(&logPath, "log", "snake-term.log", "log file path")
	flag.StringVar(&level, "level", "info", "log level: debug, info, warn, error")
	flag.IntVar(&cols, "cols", 40, "horizontal cells")
	flag.IntVar(&rows, "rows", 20, "vertical cells")
	flag.IntVar(&tps, "tps", 100, "ticks per second")
	flag.BoolVar(&mute, "mute", false, "disable sound")
	flag.BoolVar(&debug, "debug", false, "draw the debug line")
	flag.Parse()

	if err := run(logPath, level, cols, rows, tps, mute, debug); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(logPath, level string, cols, rows, tps int, mute, debug bool) error {
	if err := logging.Init(logPath, logging.Options{Level: level}); err != nil {
		return err
	}
	defer logging.Sync()
	log := logging.Named("term")

	// 每格 14px，保证格子中心落在整数列上
	cfg := game.Config{
		GameWidth:       float64(cols) * 14,
		HorizontalCells: cols,
		VerticalCells:   rows,
		TicksPerSecond:  tps,
		Debug:           debug,
	}

	opts := []game.Option{game.WithLogger(logging.Named("session"))}
	if !mute {
		player := sound.NewPlayer(logging.Named("sound"))
		defer player.Close()
		opts = append(opts, game.WithObserver(player))
	}
	session, err := game.NewSession(cfg, opts...)
	if err != nil {
		return err
	}
	session.Initialise(term.CanvasSize(cfg))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	w, h := screen.Size()
	needW, needH := term.TerminalSize(cfg)
	if w < needW || h < needH {
		log.Warnw("terminal smaller than the board", "have", fmt.Sprintf("%dx%d", w, h),
			"need", fmt.Sprintf("%dx%d", needW, needH))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Infow("terminal snake started", "cells", fmt.Sprintf("%dx%d", cols, rows), "tps", tps)
	return term.NewHost(screen, session, log).Run(ctx)
}
