package main

import (
	"database/sql"
	"net/http"

	"pet-haven/internal/adapters/auth/gotrue"
	"pet-haven/internal/adapters/auth/jwtlocal"
	pg "pet-haven/internal/adapters/storage/postgres"
	"pet-haven/internal/config"
	"pet-haven/internal/platform/logger"
	"pet-haven/internal/ports/auth"
	"pet-haven/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	// .env es opcional; en deploy las vars vienen del entorno
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Logger.Level),
		Format: logger.ParseFormat(cfg.Logger.Format),
		App:    cfg.App.Name,
	})

	var (
		verifier      auth.AuthVerifier
		authenticator auth.Authenticator
	)
	if cfg.AuthConfigured() {
		client, err := gotrue.NewClient(gotrue.Config{
			BaseURL: cfg.Auth.BaseURL,
			APIKey:  cfg.Auth.APIKey,
		})
		if err != nil {
			log.Error("auth client init failed", map[string]any{"error": err.Error()})
			return
		}
		authenticator = client

		// Con el signing secret verificamos tokens offline; si no, cada
		// request autenticado consulta al proveedor.
		if cfg.Auth.JWTSecret != "" {
			local, err := jwtlocal.NewVerifier(cfg.Auth.JWTSecret)
			if err != nil {
				log.Error("jwt verifier init failed", map[string]any{"error": err.Error()})
				return
			}
			verifier = local
			log.Info("auth: remote provider + local jwt verification", nil)
		} else {
			verifier = gotrue.NewVerifier(client)
			log.Info("auth: remote provider + remote verification", nil)
		}
	} else {
		log.Warn("auth not configured, dev mode (X-Debug-User-* headers)", nil)
	}

	var db *sql.DB
	if cfg.DB.DSN != "" {
		opened, err := pg.Open(cfg.DB.DSN)
		if err != nil {
			log.Error("db open failed", map[string]any{"error": err.Error()})
			return
		}
		defer opened.Close()
		db = opened
	}

	r := router.NewRouter(router.Options{
		AuthVerifier:  verifier,
		Authenticator: authenticator,
		DB:            db,
		Logger:        log,
	})

	addr := ":" + cfg.Server.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Info("starting server", map[string]any{"addr": addr, "app": cfg.App.Name})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
	}
}
