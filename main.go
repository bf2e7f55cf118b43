package main

import (
	"context"
	"learnbot/app/client/console"
	"learnbot/app/config"
	"learnbot/app/service/memory"
	"learnbot/app/service/responder"
	"learnbot/app/service/session"
	"learnbot/app/util/mylog"
	"log/slog"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
	"github.com/samber/do"
)

func main() {
	di := do.New()
	defer di.Shutdown()

	mylog.Preinit()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	cfg, err := config.Load(config.Path())
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	do.ProvideValue(di, cfg)

	if err = mylog.Init(cfg); err != nil {
		log.Fatalf("logging init failed: %v", err)
	}

	do.Provide(di, console.NewClient)
	do.Provide(di, memory.New)
	do.Provide(di, responder.New)
	do.Provide(di, session.New)

	slog.Debug("Service started", "memory_path", cfg.Memory.Path)

	if err = do.MustInvoke[*session.Service](di).Run(appCtx); err != nil {
		log.Fatalf("session failed: %v", err)
	}
}
