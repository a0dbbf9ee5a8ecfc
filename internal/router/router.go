package router

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "petpal-lite/docs"
	"petpal-lite/internal/adapters/assistant/fake"
	"petpal-lite/internal/adapters/storage/file"
	"petpal-lite/internal/adapters/storage/kvrepo"
	mem "petpal-lite/internal/adapters/storage/memory"
	pg "petpal-lite/internal/adapters/storage/postgres"
	"petpal-lite/internal/domain/chat"
	"petpal-lite/internal/domain/community"
	"petpal-lite/internal/domain/health"
	"petpal-lite/internal/domain/pets"
	"petpal-lite/internal/domain/reminders"
	"petpal-lite/internal/domain/routines"
	"petpal-lite/internal/domain/view"
	"petpal-lite/internal/middleware"
	"petpal-lite/internal/ports/assistant"
	"petpal-lite/internal/ports/kv"
)

type Options struct {
	// Opcional: store explícito (tests). Si no viene, se resuelve así:
	// DSN (o DB_DSN por env) => Postgres, DataDir => archivos, si no in-memory.
	Store   kv.Store
	DSN     string
	DataDir string

	Assistant assistant.Assistant // puede ser nil (modo dev, respuestas canned)

	Logger             *zap.Logger
	CORSAllowedOrigins []string
}

// App agrupa el handler y los services que el proceso usa fuera del ciclo
// request/response (el worker de recordatorios).
type App struct {
	Handler   http.Handler
	Pets      *pets.Service
	Reminders *reminders.Service
}

// New arma el árbol completo: store, repos, services y rutas por módulo.
func New(opts Options) (*App, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	store, err := openStore(opts, log)
	if err != nil {
		return nil, err
	}

	ai := opts.Assistant
	if ai == nil {
		ai = fake.New()
	}

	// Repos sobre el kv store
	petsRepo := kvrepo.NewPetsRepo(store)
	routinesRepo := kvrepo.NewRoutinesRepo(store)
	remindersRepo := kvrepo.NewRemindersRepo(store)
	healthRepo := kvrepo.NewHealthRepo(store)

	// Services por módulo
	petsSvc := pets.NewService(petsRepo)
	routinesSvc := routines.NewService(routinesRepo, ai, petsSvc, petsSvc)
	remindersSvc := reminders.NewService(remindersRepo)
	healthSvc := health.NewService(healthRepo, ai, petsSvc, petsSvc)
	chatSvc := chat.NewService(ai, petsSvc, petsSvc)
	communitySvc := community.NewService(ai)
	viewCtrl := view.NewController(petsSvc)
	draft := pets.NewDraftFlow()

	// Cascade al borrar una mascota: rutinas, salud y recordatorios.
	// Se cablea acá y no en los constructores porque los services de los
	// otros ledgers ya apuntan al de mascotas.
	petsSvc.RegisterPurgers(routinesSvc, healthSvc, remindersSvc)

	// El chat no sobrevive a un cambio de selección
	petsSvc.OnSelectionChange(chatSvc.OnSelectionChange)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	if len(opts.CORSAllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.CORSAllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc, draft)
	routines.RegisterRoutes(r, routinesSvc)
	reminders.RegisterRoutes(r, remindersSvc)
	health.RegisterRoutes(r, healthSvc)
	chat.RegisterRoutes(r, chatSvc)
	community.RegisterRoutes(r, communitySvc)
	view.RegisterRoutes(r, viewCtrl)

	return &App{
		Handler:   r,
		Pets:      petsSvc,
		Reminders: remindersSvc,
	}, nil
}

// NewRouter es el atajo para tests: mismo wiring, solo el handler.
func NewRouter(opts Options) http.Handler {
	app, err := New(opts)
	if err != nil {
		panic(err)
	}
	return app.Handler
}

func openStore(opts Options, log *zap.Logger) (kv.Store, error) {
	if opts.Store != nil {
		return opts.Store, nil
	}

	// Si no te pasan store explícito, intenta por env (para dev/handoff)
	dsn := opts.DSN
	if dsn == "" {
		dsn = os.Getenv("DB_DSN")
	}
	if dsn != "" {
		db, err := pg.Open(dsn)
		if err != nil {
			return nil, fmt.Errorf("router: open postgres: %w", err)
		}
		store := pg.NewStore(db)
		if err := store.EnsureSchema(context.Background()); err != nil {
			return nil, err
		}
		log.Info("storage backend: postgres")
		return store, nil
	}

	if opts.DataDir != "" {
		store, err := file.NewStore(opts.DataDir)
		if err != nil {
			return nil, err
		}
		log.Info("storage backend: files", zap.String("dir", opts.DataDir))
		return store, nil
	}

	log.Info("storage backend: in-memory")
	return mem.NewStore(), nil
}
