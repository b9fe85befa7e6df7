package handler

import (
	"net/http"
	"staybook/config"
	"staybook/di"
	"staybook/shared/logger"
	"sync"

	_ "staybook/docs"
)

var (
	once sync.Once
	app  http.Handler
)

// Handler is the serverless entrypoint; the service graph is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		app = di.InitializeService()
	})

	app.ServeHTTP(w, r)
}
