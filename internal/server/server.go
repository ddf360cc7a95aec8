package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	g "maragu.dev/gomponents"

	"github.com/tinywasm/userpanel"
	"github.com/tinywasm/userpanel/internal/config"
)

const (
	wasmPath     = "/static/webclient.wasm"
	wasmExecPath = "/static/wasm_exec.js"
)

// Server serves the profile and auth pages and the placeholder profile API.
type Server struct {
	cfg        *config.Config
	router     chi.Router
	httpServer *http.Server
}

func New(cfg *config.Config) *Server {
	s := &Server{cfg: cfg}
	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAllOrigins {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/", s.handleProfilePage)
	r.Get("/auth", s.handleAuthPage)
	r.Get("/contacts", s.plainPage("Contacts", "Contacts", "Your contacts will appear here."))
	r.Get("/search", s.plainPage("Search", "Search", "Search for people by nickname."))

	r.Post("/profile", s.handleProfileUpdate)
	r.Post("/profile/delete", s.handleProfileDelete)

	if s.cfg.StaticDir != "" {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(s.cfg.StaticDir))))
	}
	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

func (s *Server) pageOptions(title string) userpanel.PageOptions {
	opt := userpanel.PageOptions{Title: title}
	if s.cfg.StaticDir != "" {
		opt.WasmURL = wasmPath
		opt.WasmExecURL = wasmExecPath
	}
	return opt
}

func (s *Server) handleProfilePage(w http.ResponseWriter, r *http.Request) {
	p := s.cfg.Profile
	s.writePage(w, userpanel.ProfilePage(s.pageOptions("Profile"), userpanel.ProfileView{
		Name:     p.Name,
		Email:    p.Email,
		Nickname: p.Nickname,
	}))
}

func (s *Server) handleAuthPage(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, userpanel.AuthPage(s.pageOptions("Sign in"), userpanel.ParseBackPolicy(s.cfg.BackPolicy)))
}

func (s *Server) plainPage(title, heading, text string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.writePage(w, userpanel.PlainPage(s.pageOptions(title), heading, text))
	}
}

func (s *Server) writePage(w http.ResponseWriter, n g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := userpanel.WritePage(w, n); err != nil {
		log.Printf("userpanel: render: %v", err)
	}
}

// handleProfileUpdate runs the same confirmation check as the browser,
// then the format rules, then acknowledges.
func (s *Server) handleProfileUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form", nil)
		return
	}
	edit := userpanel.ProfileEdit{
		Email:           r.PostForm.Get(userpanel.FieldEmail),
		ConfirmEmail:    r.PostForm.Get(userpanel.FieldConfirmEmail),
		Nickname:        r.PostForm.Get(userpanel.FieldNickname),
		ConfirmNickname: r.PostForm.Get(userpanel.FieldConfirmNickname),
	}

	if err := userpanel.CheckProfileEdit(edit); err != nil {
		var fm *userpanel.FieldMismatch
		if errors.As(err, &fm) {
			writeError(w, http.StatusBadRequest, fm.Error(), map[string]any{"field": fm.Field})
			return
		}
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if fields := userpanel.FieldErrors(edit); fields != nil {
		writeError(w, http.StatusBadRequest, "validation failed", map[string]any{"fields": fields})
		return
	}

	ack, err := userpanel.ProfileModule.Update(middleware.GetReqID(r.Context()), &edit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"data": ack})
}

func (s *Server) handleProfileDelete(w http.ResponseWriter, r *http.Request) {
	ack, err := userpanel.ProfileModule.Delete(middleware.GetReqID(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"data": ack})
}

// Start begins listening on the configured address. It may run on its own
// goroutine while Shutdown is called from another.
func (s *Server) Start() error {
	log.Printf("userpanel server listening on %s", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server. Once it returns, Start
// reports http.ErrServerClosed.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

type envelope map[string]any

type apiError struct {
	Message string         `json:"message"`
	Detail  map[string]any `json:"detail,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("userpanel: encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string, detail map[string]any) {
	writeJSON(w, status, envelope{"error": apiError{Message: msg, Detail: detail}})
}
