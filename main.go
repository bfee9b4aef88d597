package main

import (
	"retroBoard/cmd/app"

	_ "retroBoard/docs"
)

// @title           RetroBoard API
// @version         1.0
// @description     Realtime collaborative whiteboard server.

// @host      localhost:3000
// @BasePath  /api
func main() {
	app.GetApp().LetsGo()
}
