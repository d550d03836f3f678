package handler

import (
	"net/http"
	"os"

	"hoteladmin/config"
	"hoteladmin/di"
	"hoteladmin/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)
	logger.SetOutput(cfg, os.Stdout)

	handler := di.InitializeService()
	handler.ServeHTTP(w, r)
}
