package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"mediacompress/internal/app"
	"mediacompress/internal/interface/controllers"
)

var version = "dev"

func main() {
	// Прерывание отменяет текущий вызов внешней утилиты
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cmd := controllers.NewVideoController(app.Factory(app.KindVideo), version).Command()
	code := controllers.Execute(ctx, cmd, os.Stderr)

	stop()
	os.Exit(code)
}
