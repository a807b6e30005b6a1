package api

import (
	"net/http"
	"time"

	"backoffice/src/api/controllers"
	"backoffice/src/api/handlers"
	"backoffice/src/clients/yahoo"
	"backoffice/src/config"
	"backoffice/src/database"
	"backoffice/src/middlewares"
	"backoffice/src/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router     *chi.Mux
	Handler    *handlers.Handler
	Controller *controllers.Controller
	Logger     *logrus.Logger
	TokenAuth  *jwtauth.JWTAuth
}

func NewServer(cfg *config.Config) (*Server, error) {
	logLevel, err := logrus.ParseLevel(cfg.Service.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger := utils.NewLogger(logLevel, false, "")

	db, err := database.SetupDB(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(cfg); err != nil {
		return nil, err
	}

	marketClient := yahoo.NewClient(cfg)
	tokenAuth := jwtauth.New("HS256", []byte(cfg.Auth.Secret), nil)
	tokenTTL := time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute

	controller := controllers.NewController(db, marketClient, tokenAuth, tokenTTL)
	server := &Server{
		Router:     chi.NewRouter(),
		Handler:    handlers.NewHandler(controller, logger),
		Controller: controller,
		Logger:     logger,
		TokenAuth:  tokenAuth,
	}
	server.InitRoutes()
	return server, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	s.Router.Use(corsMiddleware.Handler)

	s.Router.Get("/alive", handlers.Healthcheck)
	s.Router.Post("/api/token", s.Handler.PostToken)
	s.Router.Post("/api/users", s.Handler.CreateUser)

	s.Router.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(s.TokenAuth))
		r.Use(jwtauth.Authenticator)
		r.Use(middlewares.ActiveUser(s.Controller.Users))

		r.Route("/api/clients", func(r chi.Router) {
			r.Get("/", s.Handler.GetAllClients)
			r.Get("/search", s.Handler.SearchClients)
			r.Get("/count", s.Handler.CountClients)
			r.Get("/{id}", s.Handler.GetClientByID)
			r.Post("/", s.Handler.CreateClient)
			r.Put("/{id}", s.Handler.UpdateClient)
			r.Delete("/{id}", s.Handler.DeleteClient)
		})

		r.Route("/api/assets", func(r chi.Router) {
			r.Get("/", s.Handler.GetAllAssets)
			r.Get("/search", s.Handler.SearchAssetsByTicker)
			r.Get("/ticker/{ticker}", s.Handler.GetAssetByTicker)
			r.Get("/{id}", s.Handler.GetAssetByID)
			r.Post("/", s.Handler.CreateAsset)
			r.Post("/from-ticker/{ticker}", s.Handler.CreateAssetFromTicker)
			r.Put("/{id}", s.Handler.UpdateAsset)
			r.Delete("/{id}", s.Handler.DeleteAsset)
		})

		r.Route("/api/allocations", func(r chi.Router) {
			r.Get("/", s.Handler.GetAllAllocations)
			r.Get("/client/{clientID}", s.Handler.GetClientAllocations)
			r.Get("/client/{clientID}/asset/{assetID}", s.Handler.GetClientAllocationByAsset)
			r.Get("/{id}", s.Handler.GetAllocationByID)
			r.Post("/", s.Handler.CreateAllocation)
			r.Put("/{id}", s.Handler.UpdateAllocation)
			r.Delete("/{id}", s.Handler.DeleteAllocation)
		})

		r.Route("/api/movements", func(r chi.Router) {
			r.Get("/", s.Handler.GetAllMovements)
			r.Get("/period", s.Handler.GetMovementsByPeriod)
			r.Get("/summary", s.Handler.GetMovementSummary)
			r.Get("/office/summary", s.Handler.GetOfficeSummary)
			r.Get("/client/{clientID}", s.Handler.GetClientMovements)
			r.Get("/client/{clientID}/balance", s.Handler.GetClientBalance)
			r.Get("/client/{clientID}/export-csv", s.Handler.ExportClientMovementsCSV)
			r.Get("/client/{clientID}/export-xlsx", s.Handler.ExportClientMovementsXLSX)
			r.Get("/{id}", s.Handler.GetMovementByID)
			r.Post("/", s.Handler.CreateMovement)
			r.Put("/{id}", s.Handler.UpdateMovement)
			r.Delete("/{id}", s.Handler.DeleteMovement)
		})

		// User creation stays open above; the rest of the user surface is
		// registered per method so it shares the /api/users path.
		r.Get("/api/users", s.Handler.GetAllUsers)
		r.Get("/api/users/{id}", s.Handler.GetUserByID)
		r.Put("/api/users/{id}", s.Handler.UpdateUser)
		r.Delete("/api/users/{id}", s.Handler.DeleteUser)
	})
}

func NewHTTPServer(cfg *config.Config, server *Server) *http.Server {
	return &http.Server{
		Addr:         ":" + cfg.Service.Port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Handler:      server,
	}
}
