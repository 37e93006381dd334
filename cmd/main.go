// Package main is the entry point for the translation proxy.
//
// @title           TMS Proxy API
// @version         1.0.0
// @description     Server-side proxy between a CMS editor plugin and a translation-management API.
//
//	Credentials and project scope are resolved per request from headers, body, or query;
//	the upstream token never reaches the browser.
//
// @contact.name   API Support
// @contact.url    https://github.com/castlemill/tms-proxy
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiTokenAuth
// @in                          header
// @name                        X-Api-Token
// @description                 Upstream API token, forwarded per request.
//
// @tag.name        Projects
// @tag.description Project listing, detail assembly, and languages
//
// @tag.name        Keys
// @tag.description Translation key operations
//
// @tag.name        Translations
// @tag.description Translation records and locale aggregation
//
// @tag.name        Files
// @tag.description Translation file upload and download
//
// @tag.name        Tasks
// @tag.description Translation task operations
//
// @tag.name        Contributors
// @tag.description Project contributor operations
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"time"

	_ "github.com/castlemill/tms-proxy/docs" // swagger docs

	"github.com/castlemill/tms-proxy/config"
	"github.com/castlemill/tms-proxy/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Initialization error")
	}

	server := app.NewServer(application.Router, cfg.Server.Port)
	runErr := server.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	application.Shutdown(ctx)

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("Server error")
	}
}
