package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/topiclens/topiclens/internal/utils"
)

func (s *Server) apiListClusters(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.clusterService.ListClusters())
}

func (s *Server) apiSelectCluster(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Logger.Warn("api select cluster bad request", "err", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.clusterService.SelectCluster(req.Name); err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	s.hub.Refresh()
	w.WriteHeader(http.StatusNoContent)
}
