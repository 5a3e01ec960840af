package main

import (
	"royalpalace/config"
	"royalpalace/di"
	"royalpalace/shared/logger"

	_ "royalpalace/docs"
)

//	@title			Royal Palace Hotel API
//	@version		1.0
//	@description	Hotel booking API: room catalog, bookings, payments and contact messages.

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
