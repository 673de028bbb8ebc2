package main

import (
	"net/http"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/studyflash/flashcards-api/config"
	"github.com/studyflash/flashcards-api/handlers"
	"github.com/studyflash/flashcards-api/middleware"
)

func main() {
	var logger *zap.Logger
	var err error
	if config.Env.IsDevelopment {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := config.Connect()
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}

	api := handlers.New(db, logger)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Env.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(api.Routes())

	handler := middleware.RequestLogger(logger)(corsHandler)

	addr := "0.0.0.0:" + config.Env.Port
	logger.Info("listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
