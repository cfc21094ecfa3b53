// Package server exposes a Chooser over HTTP so a game driver can ask
// a remote process for its decisions.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"raiders/communication"
)

// New builds the HTTP handler around a chooser. Routes:
//
//	GET  /healthz    liveness probe
//	POST /v1/choose  pick one of the offered actions by index
func New(chooser communication.Chooser) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/v1/choose", func(w http.ResponseWriter, r *http.Request) {
		var req communication.ChooseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
			return
		}
		if len(req.Actions) == 0 {
			http.Error(w, "no actions offered", http.StatusBadRequest)
			return
		}

		choice, err := chooser.Choose(req.View, req.Actions, req.Descriptions)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if choice < 0 || choice >= len(req.Actions) {
			http.Error(w, "choice out of range", http.StatusInternalServerError)
			return
		}

		log.Debug().Msgf("player %d round %d: chose %s", req.View.Current, req.View.Round, req.Actions[choice].Type)
		writeJSON(w, http.StatusOK, communication.ChooseResponse{Choice: choice})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug().Msgf("%s %s served in %s", r.Method, r.URL.Path, time.Since(start))
	})
}
