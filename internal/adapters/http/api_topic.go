package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/topiclens/topiclens/internal/application"
	"github.com/topiclens/topiclens/internal/domain"
	"github.com/topiclens/topiclens/internal/utils"
)

func (s *Server) apiListTopics(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	topics, err := s.topicService.ListTopics(r.Context(), name)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, topics)
}

func (s *Server) apiGetTopic(w http.ResponseWriter, r *http.Request) {
	clusterName := chi.URLParam(r, "name")
	topicName := chi.URLParam(r, "topic")

	topic, err := s.topicService.GetTopic(r.Context(), clusterName, topicName)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, topic)
}

func (s *Server) apiCreateTopic(w http.ResponseWriter, r *http.Request) {
	clusterName := chi.URLParam(r, "name")

	var req domain.CreateTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Logger.Warn("api create topic bad request", "cluster", clusterName, "err", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.topicService.CreateTopic(r.Context(), clusterName, req); err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	s.hub.Refresh()
	writeJSON(w, http.StatusCreated, map[string]string{"topic": req.Name})
}

func (s *Server) apiDeleteTopic(w http.ResponseWriter, r *http.Request) {
	clusterName := chi.URLParam(r, "name")
	topicName := chi.URLParam(r, "topic")

	if err := s.topicService.DeleteTopic(r.Context(), clusterName, topicName); err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	s.hub.Refresh()
	w.WriteHeader(http.StatusNoContent)
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, application.ErrClusterNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrInvalidTopicName),
		errors.Is(err, application.ErrInvalidPartitionCount),
		errors.Is(err, application.ErrInvalidReplicationFactor),
		errors.Is(err, application.ErrInvalidClusterConfig):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
