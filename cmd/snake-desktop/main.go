package main

import (
	"flag"
	"fmt"
	"os"

	"minisnake/desktop"
	"minisnake/game"
	"minisnake/logging"
)

// 桌面版：ebiten 窗口，TPS 与配置一致
func main() {
	var (
		logPath string
		level   string
		width   int
		height  int
		debug   bool
	)
	flag.StringVar(&logPath, "log", "snake-desktop.log", "log file path")
	flag.StringVar(&level, "level", "info", "log level: debug, info, warn, error")
	flag.IntVar(&width, "width", 800, "window width")
	flag.IntVar(&height, "height", 600, "window height")
	flag.BoolVar(&debug, "debug", false, "draw the debug line")
	flag.Parse()

	if err := logging.Init(logPath, logging.Options{Level: level, Stderr: true}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logging.Sync()
	log := logging.Named("desktop")

	cfg := game.DefaultConfig()
	cfg.Debug = debug
	session, err := game.NewSession(cfg, game.WithLogger(logging.Named("session")))
	if err != nil {
		log.Fatalw("create session", "err", err)
	}
	session.Initialise(float64(width), float64(height))

	if err := desktop.NewGame(session, width, height, log).Run("Snake"); err != nil {
		log.Errorw("desktop game stopped", "err", err)
		logging.Sync()
		os.Exit(1)
	}
}
