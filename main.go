package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type api struct {
	cfg      Config
	users    UserStore
	sessions SessionStore
}

func main() {
	mustLoadEnv()
	cfg := loadConfig()

	var users UserStore
	var sessions SessionStore
	if cfg.DatabaseURL != "" {
		db, err := openDB(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("[DB] connect failed: %v", err)
		}
		users = gormUserStore{db: db}
		sessions = gormSessionStore{db: db}
	} else {
		log.Println("[DB] running on the in-memory store; data is lost on restart")
		mem := newMemoryStore()
		users = mem
		sessions = mem
	}

	a := &api{cfg: cfg, users: users, sessions: sessions}

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           a.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Println("[api] listening on", addr, "CORS_ORIGIN:", cfg.CORSOrigin)
	log.Fatal(srv.ListenAndServe())
}

func (a *api) routes() http.Handler {
	r := chi.NewRouter()

	// allow comma-separated list of origins
	var origins []string
	for _, p := range strings.Split(a.cfg.CORSOrigin, ",") {
		if o := strings.TrimRight(strings.TrimSpace(p), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"Set-Cookie"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	// Finish bare OPTIONS quickly
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if req.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, req)
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/users/register", a.handleRegister)
		r.Post("/users/login", a.handleLogin)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(a.requireAuth)
			r.Post("/users/logout", a.handleLogout)
			r.Get("/users/me", a.handleMe)

			r.Get("/my-sessions", a.handleMySessions)
			r.Get("/my-sessions/{id}", a.handleMySessionByID)
			r.Post("/my-sessions/save-draft", a.handleSaveDraft)
			r.Post("/my-sessions/publish", a.handlePublish)
		})

		// Published listing: public content, but guarded unless opted out.
		if a.cfg.PublicSessions {
			r.Get("/sessions", a.handleAllSessions)
		} else {
			r.Group(func(r chi.Router) {
				r.Use(a.requireAuth)
				r.Get("/sessions", a.handleAllSessions)
			})
		}
	})

	// Health
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	return r
}
