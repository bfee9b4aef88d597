package app

import (
	"context"
	"retroBoard/configs"
	"retroBoard/internal/handlers"
	"retroBoard/internal/servers/http"
	"retroBoard/internal/services"
	"sync"
)

var (
	app  *App
	once sync.Once
)

type App struct {
	ctx     context.Context
	configs *configs.Config
}

func GetApp() *App {
	once.Do(func() {
		app = &App{}
	})
	return app
}

func (app *App) LetsGo() {
	app.ctx = context.Background()
	app.initializeConfigs()

	boardService := services.NewBoardService()
	presenceService := services.NewPresenceService()

	socketBoardHandler := handlers.NewSocketBoardHandler(
		app.ctx,
		app.configs,
		boardService,
		presenceService,
	)
	restHandler := handlers.NewRestHandler(boardService, socketBoardHandler)

	http.NewHttpServer(
		app.ctx,
		app.configs,
		restHandler,
		socketBoardHandler,
	).Run()
}

func (app *App) initializeConfigs() {
	app.configs = configs.GetConfig()
}
