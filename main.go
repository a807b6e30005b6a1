package main

import (
	"errors"
	"log"
	"net/http"

	"backoffice/src/api"
	"backoffice/src/config"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("./settings")
	if err != nil {
		log.Println(err, "Error while loading config")
		return
	}
	errC, err := run(cfg)
	if err != nil {
		log.Println(err, "Couldn't run")
		return
	}

	if err := <-errC; err != nil {
		log.Println(err, "Error while running")
	}
}

func run(cfg *config.Config) (<-chan error, error) {
	errC := make(chan error, 1)

	server, err := api.NewServer(cfg)
	if err != nil {
		return nil, err
	}
	httpServer := api.NewHTTPServer(cfg, server)

	go func() {
		log.Println("Starting server on port", cfg.Service.Port)

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()
	return errC, nil
}
