// Package httpserver exposes the non-interactive topic operations over a JSON
// API and pushes tree-refresh events to connected clients over WebSocket.
package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/topiclens/topiclens/internal/application"
	"github.com/topiclens/topiclens/internal/utils"
)

// Server provides the HTTP API endpoints for topiclens.
type Server struct {
	clusterService *application.ClusterService
	topicService   *application.TopicService
	hub            *Hub
}

// New creates a new HTTP server instance.
func New(clusterService *application.ClusterService, topicService *application.TopicService, hub *Hub) *Server {
	return &Server{
		clusterService: clusterService,
		topicService:   topicService,
		hub:            hub,
	}
}

// Router builds the chi router with all API routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, req)
			utils.Logger.Info("http request",
				"method", req.Method,
				"path", req.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start).String(),
			)
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/api/clusters", s.apiListClusters)
	r.Put("/api/clusters/current", s.apiSelectCluster)
	r.Get("/api/clusters/{name}/topics", s.apiListTopics)
	r.Post("/api/clusters/{name}/topics", s.apiCreateTopic)
	r.Get("/api/clusters/{name}/topics/{topic}", s.apiGetTopic)
	r.Delete("/api/clusters/{name}/topics/{topic}", s.apiDeleteTopic)

	r.Get("/ws", s.hub.Serve)

	return r
}

// Run starts the HTTP server on the given address.
func (s *Server) Run(addr string) error {
	utils.Logger.Info("http server listening", "addr", addr)
	return http.ListenAndServe(addr, s.Router())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		utils.Logger.Error("encode response failed", "err", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
