package router

import (
	"database/sql"
	"net/http"
	"os"

	mem "pet-haven/internal/adapters/storage/memory"
	pg "pet-haven/internal/adapters/storage/postgres"
	"pet-haven/internal/domain/accounts"
	"pet-haven/internal/domain/applications"
	"pet-haven/internal/domain/favorites"
	"pet-haven/internal/domain/pets"
	"pet-haven/internal/domain/posts"
	"pet-haven/internal/middleware"
	"pet-haven/internal/platform/logger"
	"pet-haven/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Options struct {
	// AuthVerifier puede ser nil (modo dev: headers X-Debug-User-*).
	AuthVerifier auth.AuthVerifier

	// Authenticator puede ser nil (signup/signin responden 503 "not configured").
	Authenticator auth.Authenticator

	// Opcional: si viene, usa Postgres. Si no, in-memory con catálogo seed.
	DB *sql.DB

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	// El consumidor principal es un front-end en browser/terminal
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Api-Key"},
		MaxAge:         300,
	}))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("db open failed, falling back to in-memory", map[string]any{"error": err.Error()})
			}
		}
	}

	var (
		petRepo  pets.Repository
		favRepo  favorites.Repository
		appRepo  applications.Repository
		postRepo posts.Repository
	)

	if db != nil {
		petRepo = pg.NewPetsRepo(db)
		favRepo = pg.NewFavoritesRepo(db)
		appRepo = pg.NewApplicationsRepo(db)
		postRepo = pg.NewPostsRepo(db)
		log.Info("storage: postgres", nil)
	} else {
		petRepo = mem.NewPetRepo(pets.Seed()...)
		favRepo = mem.NewFavoriteRepo()
		appRepo = mem.NewApplicationRepo()
		postRepo = mem.NewPostRepo()
		log.Info("storage: in-memory (seed catalog)", nil)
	}

	// Services por módulo
	petsSvc := pets.NewService(petRepo)
	favSvc := favorites.NewService(favRepo)
	appSvc := applications.NewService(appRepo, petsSvc)
	postSvc := posts.NewService(postRepo)

	// Rutas por módulo
	accounts.RegisterRoutes(r, opts.Authenticator)
	pets.RegisterRoutes(r, petsSvc)
	favorites.RegisterRoutes(r, favSvc)
	applications.RegisterRoutes(r, appSvc)
	posts.RegisterRoutes(r, postSvc)

	return r
}
